package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/enumerator"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

const defaultWorkers = 1

// movers is the per-board labeling order.
var movers = [...]entity.Position{entity.PlayerX, entity.PlayerO}

type moveSolver interface {
	Solve(board entity.Board, mover entity.Position) (solver.Move, error)
}

type labelRepo interface {
	CreateOrUpdate(ctx context.Context, label *entity.Label) error
}

type Labeler struct {
	logger    *slog.Logger
	solver    moveSolver
	labelRepo labelRepo
	workers   int
}

// NewLabeler builds a labeler. labelRepo may be nil, in which case labels are only returned.
func NewLabeler(logger *slog.Logger, minimax moveSolver, labelRepo labelRepo, workers int) *Labeler {
	if workers < 1 {
		workers = defaultWorkers
	}

	return &Labeler{
		logger:    logger.With("component", "labeler"),
		solver:    minimax,
		labelRepo: labelRepo,
		workers:   workers,
	}
}

// Label solves every valid, unfinished board once per player. Labels come back in
// enumeration order, X before O for each board, regardless of worker scheduling.
func (that *Labeler) Label(ctx context.Context) ([]entity.Label, error) {
	log := that.logger.With("method", "Label")

	var boards []entity.Board
	for board := range enumerator.Ongoing() {
		boards = append(boards, board)
	}

	results := make([][len(movers)]entity.Label, len(boards))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(that.workers)

	for i, board := range boards {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			for j, mover := range movers {
				label, err := that.labelBoard(groupCtx, board, mover)
				if err != nil {
					return err
				}

				results[i][j] = label
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to label boards: %w", err)
	}

	labels := make([]entity.Label, 0, len(boards)*len(movers))
	for _, pair := range results {
		labels = append(labels, pair[:]...)
	}

	log.Info("labeled boards", "boards", len(boards), "labels", len(labels), "workers", that.workers)

	return labels, nil
}

func (that *Labeler) labelBoard(ctx context.Context, board entity.Board, mover entity.Position) (entity.Label, error) {
	move, err := that.solver.Solve(board, mover)
	if err != nil {
		return entity.Label{}, fmt.Errorf("failed to solve %s for %s: %w", board.Notation(), mover, err)
	}

	label := entity.Label{
		Board: board,
		Mover: mover,
		Move:  move.Coordinate,
		Value: move.Value,
	}

	if that.labelRepo != nil {
		if err = that.labelRepo.CreateOrUpdate(ctx, &label); err != nil {
			return entity.Label{}, fmt.Errorf("failed to store label: %w", err)
		}
	}

	return label, nil
}
