package gamedata

import (
	"errors"

	"github.com/abertram/Invisiboga/internal/entity"
)

// SeatDef defines a seat at the board loaded from JSON.
type SeatDef struct {
	Name  string `json:"name"`  // Display name (e.g., "Player 1")
	Kind  string `json:"kind"`  // "human" or "computer"
	Color string `json:"color"` // Hex colour of the pawn (e.g., "#FF0000")
}

// NewPlayer creates the player sitting in this seat.
func (s *SeatDef) NewPlayer() (*entity.Player, error) {
	kind, err := entity.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	return entity.NewPlayer(s.Name, kind, s.Color), nil
}

// SeatsFile represents the structure of players.json.
type SeatsFile struct {
	Seats []SeatDef `json:"seats"`
}

// LoadSeats loads seat definitions from the embedded players.json file.
func LoadSeats() ([]SeatDef, error) {
	file, err := Load[SeatsFile]("players.json")
	if err != nil {
		return nil, err
	}
	if len(file.Seats) == 0 {
		return nil, errors.New("no seats loaded from players.json")
	}
	return file.Seats, nil
}

// MustLoadSeats loads seat definitions, panicking on error.
func MustLoadSeats() []SeatDef {
	seats, err := LoadSeats()
	if err != nil {
		panic(err)
	}
	return seats
}
