package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// Coordinate is one of the nine board locations. Its numeric value is the
// declaration index, row-major from the top-left corner.
type Coordinate uint8

const (
	TopLeft Coordinate = iota
	TopCenter
	TopRight
	MiddleLeft
	Center
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

const (
	RowCount        = 3
	ColumnCount     = 3
	CoordinateCount = RowCount * ColumnCount
)

// AllCoordinates lists every coordinate in declaration order.
var AllCoordinates = [CoordinateCount]Coordinate{
	TopLeft, TopCenter, TopRight,
	MiddleLeft, Center, MiddleRight,
	BottomLeft, BottomCenter, BottomRight,
}

// Lines are the winning triples: rows, then columns, then diagonals.
// Outcome resolution scans them in this order.
var Lines = [8][3]Coordinate{
	{TopLeft, TopCenter, TopRight},
	{MiddleLeft, Center, MiddleRight},
	{BottomLeft, BottomCenter, BottomRight},
	{TopLeft, MiddleLeft, BottomLeft},
	{TopCenter, Center, BottomCenter},
	{TopRight, MiddleRight, BottomRight},
	{TopLeft, Center, BottomRight},
	{BottomLeft, Center, TopRight},
}

var rowColumns = [CoordinateCount][2]int{
	{0, 0}, {0, 1}, {0, 2},
	{1, 0}, {1, 1}, {1, 2},
	{2, 0}, {2, 1}, {2, 2},
}

var coordinateNames = [CoordinateCount]string{
	"top-left", "top-center", "top-right",
	"middle-left", "center", "middle-right",
	"bottom-left", "bottom-center", "bottom-right",
}

// CoordinateFromRowColumn returns the coordinate at (row, column). Both must be in [0,3).
func CoordinateFromRowColumn(row, column int) (Coordinate, error) {
	if row < 0 || row >= RowCount || column < 0 || column >= ColumnCount {
		return TopLeft, fmt.Errorf("%w: row %d, column %d", apperror.ErrNoSuchCoordinate, row, column)
	}

	return AllCoordinates[row*ColumnCount+column], nil
}

// CoordinateFromIndex returns the coordinate with the given declaration index.
func CoordinateFromIndex(index int) (Coordinate, error) {
	if index < 0 || index >= CoordinateCount {
		return TopLeft, fmt.Errorf("%w: index %d", apperror.ErrNoSuchCoordinate, index)
	}

	return AllCoordinates[index], nil
}

func (that Coordinate) RowColumn() (int, int) {
	rc := rowColumns[that]
	return rc[0], rc[1]
}

func (that Coordinate) Index() int {
	return int(that)
}

func (that Coordinate) String() string {
	return coordinateNames[that]
}
