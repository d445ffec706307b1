package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	scheduler "github.com/TudorHulban/tasks-assignment"
	"github.com/TudorHulban/tasks-assignment/internal/config"
	"github.com/TudorHulban/tasks-assignment/internal/export"
	"github.com/TudorHulban/tasks-assignment/internal/loader"
	"github.com/TudorHulban/tasks-assignment/internal/search"
)

const (
	modeBaseline = "baseline"
	modeSearch   = "search"
	modeBoth     = "both"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load configuration", "error", err)
		os.Exit(1)
	}

	instancePath := flag.String("instance", cfg.Instance, "instance JSON file")
	mode := flag.String("mode", modeBoth, "baseline, search or both")
	output := flag.String("out", cfg.Output, "CSV file results are appended to")
	flag.Parse()

	logger := slog.New(
		slog.NewTextHandler(
			os.Stdout,
			&slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			},
		),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if errRun := run(ctx, logger, cfg, *instancePath, *mode, *output); errRun != nil {
		logger.Error("run failed", "error", errRun)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, instancePath, mode, output string) error {
	if mode != modeBaseline && mode != modeSearch && mode != modeBoth {
		return fmt.Errorf("unknown mode %q", mode)
	}

	instance, errLoad := loader.LoadFile(
		instancePath,
		&loader.ParamsLoad{
			Strict: cfg.Strict,
		},
	)
	if errLoad != nil {
		return errLoad
	}

	logger.Info(
		"instance loaded",
		slog.String("path", instancePath),
		slog.Int("tasks", instance.NumberOfTasks()),
		slog.Int("employees", instance.NumberOfEmployees()),
		slog.Int("skills", instance.NumberOfSkills()),
	)

	instanceName := filepath.Base(instancePath)

	var rows []export.Row

	if mode == modeBaseline || mode == modeBoth {
		baselineRows, errBaseline := runBaseline(instance, instanceName)
		if errBaseline != nil {
			return errBaseline
		}

		rows = append(rows, baselineRows...)
	}

	if mode == modeSearch || mode == modeBoth {
		searchRows, errSearch := runSearch(ctx, logger, cfg, instance, instanceName)
		if errSearch != nil {
			return errSearch
		}

		rows = append(rows, searchRows...)
	}

	if errExport := export.AppendFile(output, rows); errExport != nil {
		return errExport
	}

	logger.Info(
		"results exported",
		slog.String("path", output),
		slog.Int("rows", len(rows)),
	)

	return nil
}

func runBaseline(instance *scheduler.Instance, instanceName string) ([]export.Row, error) {
	start := time.Now()

	schedule, errSolve := scheduler.SolveBaseline(instance)
	if errSolve != nil {
		return nil,
			fmt.Errorf("baseline: %w", errSolve)
	}

	elapsed := time.Since(start)

	fmt.Println(schedule.String())

	return []export.Row{
			{
				RunID:     export.NewRunID(),
				Instance:  instanceName,
				Algorithm: "GREEDY",

				Makespan:        schedule.Makespan(),
				Dissatisfaction: schedule.Dissatisfaction(),
				Millis:          elapsed.Milliseconds(),
			},
		},
		nil
}

func runSearch(ctx context.Context, logger *slog.Logger, cfg *config.Config, instance *scheduler.Instance, instanceName string) ([]export.Row, error) {
	var rows []export.Row

	for runIndex := range cfg.Search.Runs {
		evaluator, errEvaluator := search.NewEvaluator(
			&search.ParamsNewEvaluator{
				Instance:  instance,
				CacheSize: cfg.Search.CacheSize,
				Workers:   cfg.Search.Workers,
			},
		)
		if errEvaluator != nil {
			return nil,
				errEvaluator
		}

		ga, errGA := search.NewGA(
			&search.ParamsNewGA{
				Evaluator: evaluator,
				Logger:    logger.With(slog.Int("run", runIndex)),

				InitialOrderings: [][]int{
					scheduler.BaselineOrdering(instance),
				},

				Population:    cfg.Search.Population,
				Generations:   cfg.Search.Generations,
				CrossoverRate: cfg.Search.CrossoverRate,
				MutationRate:  cfg.Search.MutationRate,

				Seed: cfg.Search.Seed + int64(runIndex),
			},
		)
		if errGA != nil {
			return nil,
				errGA
		}

		runCtx, cancel := ctx, context.CancelFunc(func() {})
		if cfg.Search.TimeoutSec > 0 {
			runCtx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Search.TimeoutSec)*time.Second)
		}

		result, errRun := ga.Run(runCtx)
		cancel()

		if errRun != nil && result == nil {
			return nil,
				fmt.Errorf("search run %d: %w", runIndex, errRun)
		}

		if errRun != nil {
			logger.Warn(
				"search stopped early",
				slog.Int("run", runIndex),
				slog.Int("generations", result.Generations),
				slog.String("reason", errRun.Error()),
			)
		}

		runID := export.NewRunID()

		fmt.Printf("Run %d, Pareto front (%d solutions):\n", runIndex, len(result.Front))

		for ix, member := range result.Front {
			fmt.Printf("  %d. %s\n", ix, member.Objectives)

			rows = append(
				rows,
				export.Row{
					RunID:     runID,
					Instance:  instanceName,
					Algorithm: "GA",

					Run:           runIndex,
					SolutionIndex: ix,

					Makespan:        member.Objectives.Makespan,
					Dissatisfaction: member.Objectives.Dissatisfaction,
					Millis:          result.Duration.Milliseconds(),
				},
			)
		}

		if ctx.Err() != nil {
			break
		}
	}

	return rows,
		nil
}
