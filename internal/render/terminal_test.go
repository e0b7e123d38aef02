package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Board(t *testing.T) {
	t.Run("Plain profile matches the file rendering", func(t *testing.T) {
		// Given: a terminal without colour support
		terminal := NewTerminal(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
		board := entity.Board{}.Set(entity.TopLeft, entity.PlayerX).Set(entity.Center, entity.PlayerO)

		// When: rendering a board
		rendered := terminal.Board(board)

		// Then: it is identical to Board.String
		assert.Equal(t, board.String(), rendered)
	})

	t.Run("Colour profile wraps marks in escape sequences", func(t *testing.T) {
		terminal := NewTerminal(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor))
		board := entity.Board{}.Set(entity.TopLeft, entity.PlayerX)

		rendered := terminal.Board(board)

		assert.Contains(t, rendered, "\x1b[")
		assert.Contains(t, rendered, "X")
	})
}

func TestTerminal_Game(t *testing.T) {
	// Given: a short game where X wins along the top row
	var buf bytes.Buffer
	terminal := NewTerminal(&buf, termenv.WithProfile(termenv.Ascii))
	line := []entity.Coordinate{
		entity.TopLeft, entity.MiddleLeft,
		entity.TopCenter, entity.Center,
		entity.TopRight,
	}

	// When: writing the game
	err := terminal.Game(entity.Board{}, entity.PlayerX, line)
	require.NoError(t, err)

	// Then: every move is listed and the result closes the output
	out := buf.String()
	assert.Contains(t, out, "1. X top-left\n")
	assert.Contains(t, out, "4. O center\n")
	assert.Contains(t, out, "5. X top-right\n")
	assert.True(t, strings.HasSuffix(out, "result: x-wins\n"))
	assert.Equal(t, len(line)+1, strings.Count(out, "|\n+-+-+-+\n\n"))
}
