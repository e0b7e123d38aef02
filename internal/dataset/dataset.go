// Package dataset encodes boards and moves as numeric vectors for learning consumers.
package dataset

import (
	"github.com/patrikeh/go-deep/training"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	PlaneCount = 2

	// InputSize is the length of an example input: two flattened planes followed
	// by a one-hot of the mover.
	InputSize    = PlaneCount*entity.CoordinateCount + PlaneCount
	ResponseSize = entity.CoordinateCount
)

// Planes returns plane 0 marking X cells and plane 1 marking O cells, indexed [plane][row][column].
func Planes(board entity.Board) [PlaneCount][entity.RowCount][entity.ColumnCount]float64 {
	var planes [PlaneCount][entity.RowCount][entity.ColumnCount]float64

	for _, coordinate := range entity.AllCoordinates {
		row, column := coordinate.RowColumn()
		switch board.Get(coordinate) {
		case entity.PlayerX:
			planes[0][row][column] = 1
		case entity.PlayerO:
			planes[1][row][column] = 1
		case entity.Unmarked:
		}
	}

	return planes
}

// SignedPlane returns +1 for the perspective player's cells, -1 for the opponent's and 0 for empty cells.
func SignedPlane(board entity.Board, perspective entity.Position) [entity.RowCount][entity.ColumnCount]float64 {
	var plane [entity.RowCount][entity.ColumnCount]float64

	for _, coordinate := range entity.AllCoordinates {
		row, column := coordinate.RowColumn()
		switch position := board.Get(coordinate); {
		case position == entity.Unmarked:
		case position == perspective:
			plane[row][column] = 1
		default:
			plane[row][column] = -1
		}
	}

	return plane
}

// OneHot returns a length-9 vector with 1 at the coordinate's declaration index.
func OneHot(coordinate entity.Coordinate) []float64 {
	vector := make([]float64, entity.CoordinateCount)
	vector[coordinate.Index()] = 1

	return vector
}

// Input flattens the planes of board in [plane][row][column] order and appends the mover.
func Input(board entity.Board, mover entity.Position) []float64 {
	input := make([]float64, 0, InputSize)

	planes := Planes(board)
	for _, plane := range planes {
		for _, row := range plane {
			input = append(input, row[:]...)
		}
	}

	switch mover {
	case entity.PlayerX:
		input = append(input, 1, 0)
	case entity.PlayerO:
		input = append(input, 0, 1)
	default:
		input = append(input, 0, 0)
	}

	return input
}

// Examples converts solver labels to (state, best move) pairs in label order.
func Examples(labels []entity.Label) training.Examples {
	examples := make(training.Examples, 0, len(labels))
	for _, label := range labels {
		examples = append(examples, training.Example{
			Input:    Input(label.Board, label.Mover),
			Response: OneHot(label.Move),
		})
	}

	return examples
}
