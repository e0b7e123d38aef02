package entity

// Outcome classifies a board. It is derived on demand, never stored.
type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

const (
	StatusOngoing = "ongoing"
	StatusXWins   = "x-wins"
	StatusOWins   = "o-wins"
	StatusDraw    = "draw"
)

func (that Outcome) IsTerminal() bool {
	return that != InProgress
}

// Winner returns the winning player, or Unmarked for a draw or unfinished game.
func (that Outcome) Winner() Position {
	switch that {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	default:
		return Unmarked
	}
}

func (that Outcome) String() string {
	switch that {
	case XWins:
		return StatusXWins
	case OWins:
		return StatusOWins
	case Draw:
		return StatusDraw
	default:
		return StatusOngoing
	}
}
