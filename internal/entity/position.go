package entity

import "fmt"

// Position is the occupancy of a single cell.
type Position uint8

const (
	Unmarked Position = iota
	PlayerX
	PlayerO
)

const (
	MarkX     = "X"
	MarkO     = "O"
	EmptyMark = ""
)

// IsPlayer reports whether the position belongs to one of the two players.
func (that Position) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player. Unmarked has no opponent and is returned as is.
func (that Position) Opponent() Position {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Unmarked
	}
}

// Glyph is the single character used when rendering a board.
func (that Position) Glyph() byte {
	switch that {
	case PlayerX:
		return 'X'
	case PlayerO:
		return 'O'
	default:
		return ' '
	}
}

func (that Position) String() string {
	switch that {
	case PlayerX:
		return MarkX
	case PlayerO:
		return MarkO
	default:
		return EmptyMark
	}
}

// ParseMark converts "X" or "O" into a player position.
func ParseMark(mark string) (Position, error) {
	switch mark {
	case MarkX:
		return PlayerX, nil
	case MarkO:
		return PlayerO, nil
	default:
		return Unmarked, fmt.Errorf("unknown mark %q", mark)
	}
}

func (that Position) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Position) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*that = Unmarked
		return nil
	}

	position, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = position

	return nil
}
