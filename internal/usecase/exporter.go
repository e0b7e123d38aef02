package usecase

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/enumerator"
)

type Exporter struct {
	logger *slog.Logger
}

func NewExporter(logger *slog.Logger) *Exporter {
	return &Exporter{
		logger: logger.With("component", "exporter"),
	}
}

// Export writes the rendering of every valid board to w in enumeration order
// and returns how many boards were written.
func (that *Exporter) Export(ctx context.Context, w io.Writer) (int, error) {
	log := that.logger.With("method", "Export")

	bw := bufio.NewWriter(w)

	count := 0
	for board := range enumerator.Valid() {
		if err := ctx.Err(); err != nil {
			return count, fmt.Errorf("export interrupted: %w", err)
		}

		if _, err := bw.WriteString(board.String()); err != nil {
			return count, fmt.Errorf("failed to write board %d: %w", count, err)
		}

		count++
	}

	if err := bw.Flush(); err != nil {
		return count, fmt.Errorf("failed to flush boards: %w", err)
	}

	log.Info("exported boards", "count", count)

	return count, nil
}
