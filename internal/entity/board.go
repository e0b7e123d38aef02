package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const (
	notationX     = 'X'
	notationO     = 'O'
	notationEmpty = '.'

	separatorLine = "+-+-+-+\n"
)

// Board holds one Position per Coordinate, indexed by declaration index.
// It is a value type: Set returns a modified copy.
type Board [CoordinateCount]Position

// BoardFromPositions builds a board from exactly nine positions in declaration order.
func BoardFromPositions(positions ...Position) (Board, error) {
	var board Board

	if len(positions) != CoordinateCount {
		return board, fmt.Errorf("%w: got %d positions, want %d", apperror.ErrMalformedBoard, len(positions), CoordinateCount)
	}

	copy(board[:], positions)

	return board, nil
}

// ParseBoard reads the nine-character notation produced by Notation, e.g. "XO..X...O".
func ParseBoard(notation string) (Board, error) {
	var board Board

	if len(notation) != CoordinateCount {
		return board, fmt.Errorf("%w: notation %q must have %d cells", apperror.ErrMalformedBoard, notation, CoordinateCount)
	}

	for i := range len(notation) {
		switch notation[i] {
		case notationX:
			board[i] = PlayerX
		case notationO:
			board[i] = PlayerO
		case notationEmpty:
			board[i] = Unmarked
		default:
			return Board{}, fmt.Errorf("%w: unexpected cell %q in %q", apperror.ErrMalformedBoard, notation[i], notation)
		}
	}

	return board, nil
}

func (that Board) Get(coordinate Coordinate) Position {
	return that[coordinate]
}

func (that Board) Set(coordinate Coordinate, position Position) Board {
	that[coordinate] = position
	return that
}

// Count returns the number of X marks, O marks and empty cells.
func (that Board) Count() (int, int, int) {
	var xCount, oCount, emptyCount int

	for _, position := range that {
		switch position {
		case PlayerX:
			xCount++
		case PlayerO:
			oCount++
		default:
			emptyCount++
		}
	}

	return xCount, oCount, emptyCount
}

// IsValid is a necessary condition for the board to be reachable by legal play:
// X moves first, so X leads O by at most one mark, and the winner must have made
// the last move. Boards showing complete lines for both players are not rejected.
func (that Board) IsValid() bool {
	xCount, oCount, _ := that.Count()

	if xCount != oCount && xCount != oCount+1 {
		return false
	}

	switch that.Outcome() {
	case XWins:
		return xCount == oCount+1
	case OWins:
		return xCount == oCount
	default:
		return true
	}
}

// Outcome returns the player owning the first complete line in Lines order,
// Draw for a full board without one, or InProgress.
func (that Board) Outcome() Outcome {
	for _, line := range Lines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != Unmarked && a == b && b == c {
			if a == PlayerX {
				return XWins
			}
			return OWins
		}
	}

	// the game will continue until all the squares are full
	for _, position := range that {
		if position == Unmarked {
			return InProgress
		}
	}

	return Draw
}

// CurrentMover returns the player to move. The result is only meaningful for valid boards.
func (that Board) CurrentMover() Position {
	xCount, oCount, _ := that.Count()
	if xCount == oCount {
		return PlayerX
	}

	return PlayerO
}

// EmptyCoordinates lists the unmarked coordinates in declaration order.
func (that Board) EmptyCoordinates() []Coordinate {
	empty := make([]Coordinate, 0, CoordinateCount)
	for _, coordinate := range AllCoordinates {
		if that[coordinate] == Unmarked {
			empty = append(empty, coordinate)
		}
	}

	return empty
}

// Notation is a compact single-line form: X, O, or '.' per cell in declaration order.
func (that Board) Notation() string {
	var sb strings.Builder
	sb.Grow(CoordinateCount)

	for _, position := range that {
		switch position {
		case PlayerX:
			sb.WriteByte(notationX)
		case PlayerO:
			sb.WriteByte(notationO)
		default:
			sb.WriteByte(notationEmpty)
		}
	}

	return sb.String()
}

// String renders the board as a framed grid followed by a blank line:
//
//	+-+-+-+
//	|X|O| |
//	+-+-+-+
//	...
func (that Board) String() string {
	var sb strings.Builder

	sb.WriteString(separatorLine)
	for row := range RowCount {
		sb.WriteByte('|')
		for column := range ColumnCount {
			sb.WriteByte(that[row*ColumnCount+column].Glyph())
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		sb.WriteString(separatorLine)
	}
	sb.WriteByte('\n')

	return sb.String()
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.Notation()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	board, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*that = board

	return nil
}
