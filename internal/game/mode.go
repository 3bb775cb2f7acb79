// Package game runs a board game session: setup, board building, turns and the winner.
package game

// Mode represents the current phase of the game.
type Mode int

const (
	// ModeNotInited - the session has not been initialised yet
	ModeNotInited Mode = iota
	// ModeShowHintMarkerNeeded - tell the user to point the camera at the marker
	ModeShowHintMarkerNeeded
	// ModeWaitingForMarker - waiting until tracking reports the marker
	ModeWaitingForMarker
	// ModeShowHintCreateSpaces - explain how to build the board
	ModeShowHintCreateSpaces
	// ModeCreatingField - taps and drags build the board until the next control is used
	ModeCreatingField
	// ModeDrawingBeginningPlayer - place the pawns and pick who starts
	ModeDrawingBeginningPlayer
	// ModeRunning - players take turns
	ModeRunning
	// ModeGameOver - a player reached the target space
	ModeGameOver
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeNotInited:
		return "not_inited"
	case ModeShowHintMarkerNeeded:
		return "show_hint_marker_needed"
	case ModeWaitingForMarker:
		return "waiting_for_marker"
	case ModeShowHintCreateSpaces:
		return "show_hint_create_spaces"
	case ModeCreatingField:
		return "creating_field"
	case ModeDrawingBeginningPlayer:
		return "drawing_beginning_player"
	case ModeRunning:
		return "running"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
