package solver

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type transpositionKey struct {
	board entity.Board
	mover entity.Position
}

// transpositions maps (board, mover) to a game value. There are at most 3^9*2
// keys, so entries are never evicted.
type transpositions struct {
	mu     sync.RWMutex
	values map[transpositionKey]int
}

func newTranspositions() *transpositions {
	return &transpositions{
		values: make(map[transpositionKey]int),
	}
}

func (that *transpositions) get(board entity.Board, mover entity.Position) (int, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	value, ok := that.values[transpositionKey{board: board, mover: mover}]

	return value, ok
}

func (that *transpositions) put(board entity.Board, mover entity.Position, value int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.values[transpositionKey{board: board, mover: mover}] = value
}

func (that *transpositions) size() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.values)
}
