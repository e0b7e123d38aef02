package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/dataset"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/render"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solver/transport/rest"
)

// RunApp - exports every valid board, then optionally labels them, prints a
// perfect-play game and serves the solver over HTTP.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var opts []solver.Option
	if !conf.NoCache {
		opts = append(opts, solver.WithCache())
	}
	minimax := solver.New(opts...)

	if err := exportBoards(ctx, logger, conf.OutputPath); err != nil {
		return err
	}

	if !conf.NoDemo {
		if err := printPerfectGame(minimax); err != nil {
			return err
		}
	}

	if conf.LabelsRequested() {
		if err := labelBoards(ctx, logger, conf, minimax); err != nil {
			return err
		}
	}

	if conf.HTTPPort == "" {
		return nil
	}

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := rest.Start(ctx, conf.HTTPPort, rest.NewHandlers(logger, minimax)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func exportBoards(ctx context.Context, logger *slog.Logger, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open output file: %w", err)
	}

	if _, err = usecase.NewExporter(logger).Export(ctx, file); err != nil {
		_ = file.Close()
		return fmt.Errorf("could not export boards: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("could not close output file: %w", err)
	}

	return nil
}

func printPerfectGame(minimax *solver.Solver) error {
	var board entity.Board

	line, err := minimax.PrincipalVariation(board, entity.PlayerX)
	if err != nil {
		return fmt.Errorf("could not solve the empty board: %w", err)
	}

	if err = render.NewTerminal(os.Stdout).Game(board, entity.PlayerX, line); err != nil {
		return fmt.Errorf("could not print game: %w", err)
	}

	return nil
}

func labelBoards(ctx context.Context, logger *slog.Logger, conf *config.Config, minimax *solver.Solver) error {
	log := logger.With("component", "app")

	labeler := usecase.NewLabeler(logger, minimax, nil, conf.Workers)

	if conf.Redis.Enabled() {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		labeler = usecase.NewLabeler(logger, minimax, repository.NewLabelRepository(redisStorage), conf.Workers)
	}

	labels, err := labeler.Label(ctx)
	if err != nil {
		return fmt.Errorf("could not label boards: %w", err)
	}

	if conf.DatasetPath == "" {
		return nil
	}

	return writeDataset(conf.DatasetPath, labels)
}

func writeDataset(path string, labels []entity.Label) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open dataset file: %w", err)
	}

	if err = json.NewEncoder(file).Encode(dataset.Examples(labels)); err != nil {
		_ = file.Close()
		return fmt.Errorf("could not write dataset: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("could not close dataset file: %w", err)
	}

	return nil
}
