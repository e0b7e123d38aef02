package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const labelKeyPrefix = "label:"

type LabelRepository interface {
	CreateOrUpdate(ctx context.Context, label *entity.Label) error
	GetByBoard(ctx context.Context, board entity.Board, mover entity.Position) (*entity.Label, error)
	DeleteByBoard(ctx context.Context, board entity.Board, mover entity.Position) error
}

type dbLabel struct {
	client *redis.Client
}

func NewLabelRepository(client *redis.Client) LabelRepository {
	return &dbLabel{
		client: client,
	}
}

func labelKey(board entity.Board, mover entity.Position) string {
	return labelKeyPrefix + board.Notation() + ":" + mover.String()
}

func (that *dbLabel) CreateOrUpdate(ctx context.Context, label *entity.Label) error {
	labelJSON, err := json.Marshal(label)
	if err != nil {
		return fmt.Errorf("could not marshal label: %w", err)
	}

	err = that.client.Set(ctx, labelKey(label.Board, label.Mover), labelJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set label: %w", err)
	}

	return nil
}

func (that *dbLabel) GetByBoard(ctx context.Context, board entity.Board, mover entity.Position) (*entity.Label, error) {
	response, err := that.client.Get(ctx, labelKey(board, mover)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrLabelNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get label by board: %w", err)
	}

	var label entity.Label
	if err = json.Unmarshal([]byte(response), &label); err != nil {
		return nil, fmt.Errorf("failed to unmarshal label: %w", err)
	}

	return &label, nil
}

func (that *dbLabel) DeleteByBoard(ctx context.Context, board entity.Board, mover entity.Position) error {
	deleted, err := that.client.Del(ctx, labelKey(board, mover)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete label by board: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrLabelNotFound
	}

	return nil
}
