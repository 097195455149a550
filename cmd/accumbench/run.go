package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"accumdb/core"
	"accumdb/utils"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the append and summarize benchmark",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := LoadBenchConfig(cmd.Flags())
		if err != nil {
			return err
		}
		logger := cfg.NewLogger(cmd.ErrOrStderr())
		_, err = runBench(cmd.Context(), cfg, logger)
		return err
	},
}

func init() {
	defaults := DefaultBenchConfig()
	flags := runCmd.Flags()
	flags.Int("rows", defaults.Rows, "rows per chunk")
	flags.Int("cols", defaults.Cols, "columns per chunk")
	flags.Int("chunks", defaults.Chunks, "number of chunks to append")
	flags.Int("iterations", defaults.Iterations, "summarize calls to time")
	flags.Uint64("seed", defaults.Seed, "random seed for synthetic data")
	flags.String("source", defaults.Source, "chunk source: table or arrow")
	flags.String("log-level", defaults.LogLevel, "debug, info, warn or error")
	flags.String("log-format", defaults.LogFormat, "text or json")
}

type BenchResult struct {
	Rows          int
	AppendTotal   time.Duration
	SummarizeMean time.Duration
	Summary       core.Summary
}

func runBench(ctx context.Context, cfg *BenchConfig, logger *slog.Logger) (*BenchResult, error) {
	rng := utils.NewRand(cfg.Seed)
	acc := core.NewAccumulator()
	expected := make(core.Summary)

	result := &BenchResult{}
	for i := 0; i < cfg.Chunks; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chunk := utils.RandomTable(rng, cfg.Rows, cfg.Cols, 1.0)
		for _, name := range chunk.Columns() {
			values, _ := chunk.Column(name)
			for _, v := range values {
				expected[name] += v
			}
		}

		start := time.Now()
		var err error
		if cfg.Source == "arrow" {
			rec := core.RecordFromTable(chunk, nil)
			err = acc.AppendRecord(rec)
			rec.Release()
		} else {
			err = acc.Append(chunk)
		}
		elapsed := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("append chunk %d: %w", i, err)
		}
		result.AppendTotal += elapsed
		logger.Debug("appended chunk",
			slog.Int("chunk", i),
			slog.Int("rows", chunk.NumRows()),
			slog.Duration("elapsed", elapsed))
	}
	result.Rows = acc.NumRows()

	var summary core.Summary
	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		summary = acc.Summarize()
	}
	result.SummarizeMean = time.Since(start) / time.Duration(cfg.Iterations)
	result.Summary = summary

	if cfg.Rows > 0 && !summary.ApproxEqual(expected, 1e-9) {
		return nil, fmt.Errorf("summary does not match column sums")
	}

	logger.Info("benchmark complete",
		slog.String("source", cfg.Source),
		slog.Int("chunks", cfg.Chunks),
		slog.Int("rows", result.Rows),
		slog.Int("columns", len(summary)),
		slog.Duration("appendTotal", result.AppendTotal),
		slog.Duration("summarizeMean", result.SummarizeMean))
	return result, nil
}
