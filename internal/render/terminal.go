// Package render draws boards for a terminal, colouring each player's marks.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	colorX = "#E06C75"
	colorO = "#61AFEF"

	separatorLine = "+-+-+-+\n"
)

type Terminal struct {
	output *termenv.Output
}

// NewTerminal writes to w. The colour profile is detected from w unless overridden by opts.
func NewTerminal(w io.Writer, opts ...termenv.OutputOption) *Terminal {
	return &Terminal{
		output: termenv.NewOutput(w, opts...),
	}
}

// Board returns the same frame as entity.Board.String with coloured marks.
func (that *Terminal) Board(board entity.Board) string {
	var sb strings.Builder

	sb.WriteString(separatorLine)
	for row := range entity.RowCount {
		sb.WriteByte('|')
		for column := range entity.ColumnCount {
			coordinate, _ := entity.CoordinateFromRowColumn(row, column)
			sb.WriteString(that.glyph(board.Get(coordinate)))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		sb.WriteString(separatorLine)
	}
	sb.WriteByte('\n')

	return sb.String()
}

// Game writes every position of a game starting from board with mover to play,
// one move at a time, and finishes with the outcome.
func (that *Terminal) Game(board entity.Board, mover entity.Position, line []entity.Coordinate) error {
	if _, err := fmt.Fprint(that.output, that.Board(board)); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	for i, coordinate := range line {
		board = board.Set(coordinate, mover)

		header := that.output.String(fmt.Sprintf("%d. %s %s", i+1, mover, coordinate)).Bold()
		if _, err := fmt.Fprintf(that.output, "%s\n%s", header, that.Board(board)); err != nil {
			return fmt.Errorf("failed to write move %d: %w", i+1, err)
		}

		mover = mover.Opponent()
	}

	result := that.output.String("result: " + board.Outcome().String()).Bold().Underline()
	if _, err := fmt.Fprintf(that.output, "%s\n", result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

func (that *Terminal) glyph(position entity.Position) string {
	glyph := string(position.Glyph())

	switch position {
	case entity.PlayerX:
		return that.output.String(glyph).Foreground(that.output.Color(colorX)).Bold().String()
	case entity.PlayerO:
		return that.output.String(glyph).Foreground(that.output.Color(colorO)).Bold().String()
	default:
		return glyph
	}
}
