package game

import "fmt"

const msgMarkerNeeded = "Point the camera at the marker."

var createFieldHints = []string{
	"Keep the camera pointed at the marker.",
	"Now build a board by tapping the screen or ...",
	"... by slowly dragging one finger across the screen.",
	"Tap a single space to turn it into a special space.",
	"A player who stops on a special space ...",
	"... may move ahead a few spaces or has to go back a few.",
}

func rolledText(name string, pips int) string {
	return fmt.Sprintf("%s rolls a %d", name, pips)
}

func occupiedText(name string) string {
	return fmt.Sprintf("Target space is occupied. %s moves to the space before it (seen from the start).", name)
}

func specialText(name string, offset int) string {
	n := offset
	if n < 0 {
		n = -n
	}
	unit := "spaces"
	if n == 1 {
		unit = "space"
	}
	if offset >= 0 {
		return fmt.Sprintf("%s landed on a special space and may move ahead %d %s", name, n, unit)
	}
	return fmt.Sprintf("%s landed on a special space and has to go back %d %s", name, n, unit)
}

func winText(name string) string {
	return fmt.Sprintf("%s is the first to reach the target and wins", name)
}
