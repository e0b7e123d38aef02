package entity

// Label pairs a board and a mover with the optimal move and the game value
// reached by playing it (+1 X wins, 0 draw, -1 O wins).
type Label struct {
	Board Board      `json:"board"`
	Mover Position   `json:"mover"`
	Move  Coordinate `json:"move"`
	Value int        `json:"value"`
}
