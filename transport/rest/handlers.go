package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

var errBoardNotReachable = errors.New("board is not reachable by legal play, pass mover explicitly")

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	BestMoveHandler(w http.ResponseWriter, r *http.Request)
}

type moveSolver interface {
	Solve(board entity.Board, mover entity.Position) (solver.Move, error)
}

type handlers struct {
	logger *slog.Logger
	solver moveSolver
}

func NewHandlers(logger *slog.Logger, minimax moveSolver) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		solver: minimax,
	}
}

type bestMoveResponse struct {
	Board  entity.Board      `json:"board"`
	Mover  entity.Position   `json:"mover"`
	Move   entity.Coordinate `json:"move"`
	Row    int               `json:"row"`
	Column int               `json:"column"`
	Value  int               `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// BestMoveHandler answers GET /best-move?board=XO..X....&mover=O. Without a
// mover the player to move is derived from the board, which must then be valid.
func (that *handlers) BestMoveHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "BestMoveHandler")

	board, err := entity.ParseBoard(r.URL.Query().Get("board"))
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	mover, err := that.mover(board, r.URL.Query().Get("mover"))
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	move, err := that.solver.Solve(board, mover)
	switch {
	case errors.Is(err, apperror.ErrTerminalBoard):
		that.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: apperror.ErrTerminalBoard.Error()})
		return
	case err != nil:
		log.Error("failed to solve board", "board", board.Notation(), "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to solve board"})
		return
	}

	row, column := move.Coordinate.RowColumn()
	that.writeJSON(w, http.StatusOK, bestMoveResponse{
		Board:  board,
		Mover:  mover,
		Move:   move.Coordinate,
		Row:    row,
		Column: column,
		Value:  move.Value,
	})
}

func (that *handlers) mover(board entity.Board, mark string) (entity.Position, error) {
	if mark != "" {
		return entity.ParseMark(mark)
	}

	if !board.IsValid() {
		return entity.Unmarked, errBoardNotReachable
	}

	return board.CurrentMover(), nil
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
