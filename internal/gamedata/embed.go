// Package gamedata holds the embedded seat roster and helpers for reading it.
package gamedata

import "embed"

//go:embed *.json
var dataFS embed.FS
