package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vytor/lichessexport/internal/config"
	"github.com/vytor/lichessexport/internal/lichess"
	"github.com/vytor/lichessexport/internal/lichess/mock"
	"github.com/vytor/lichessexport/internal/logger"
	"github.com/vytor/lichessexport/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(logger.NewContext(ctx, log), cfg, os.Args[1:], os.Stdout))
}

// run exports every game id in args and prints one summary line per game.
// It returns the process exit code.
func run(ctx context.Context, cfg config.Config, args []string, stdout io.Writer) int {
	log := logger.FromContext(ctx)

	fs := flag.NewFlagSet("lichess-export", flag.ContinueOnError)
	fs.SetOutput(stdout)
	backend := fs.String("backend", cfg.Backend, "backend to export from: http or mock")
	withPGN := fs.Bool("pgn", true, "ask for the PGN inside the JSON export")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg.Backend = *backend

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stdout, "usage: lichess-export [-backend http|mock] [-pgn=false] <game-id>...")
		return 2
	}

	log.Debug("backend=%s base_url=%s workers=%d", cfg.Backend, cfg.BaseURL, cfg.ExportWorkerCount)

	exporter := newExporter(cfg)
	query := lichess.ExportQuery{PgnInJSON: lichess.Bool(*withPGN)}
	results := &worker.Results{}

	pool := worker.NewPool(cfg.ExportWorkerCount, cfg.ExportQueueSize)
	pool.Start(ctx)
	for i, id := range fs.Args() {
		job := &worker.ExportJob{Exporter: exporter, Query: query, GameID: id, Index: i, Results: results}
		if err := pool.Submit(ctx, job); err != nil {
			log.Error("failed to queue %s: %v", id, err)
			break
		}
	}
	pool.Stop()

	for _, o := range results.Outcomes() {
		if o.Err != nil {
			fmt.Fprintf(stdout, "%s: error: %v\n", o.GameID, o.Err)
			continue
		}
		fmt.Fprintln(stdout, o.Summary.String())
	}

	if len(results.Outcomes()) != fs.NArg() || results.Failed() > 0 {
		return 1
	}
	return 0
}

// newExporter builds the real HTTP client; for the mock backend its transport
// is swapped for the in-process fixture router.
func newExporter(cfg config.Config) lichess.GameExporter {
	opts := []lichess.Option{
		lichess.WithBaseURL(cfg.BaseURL),
		lichess.WithToken(cfg.Token),
	}
	if cfg.Backend == config.BackendMock {
		opts = append(opts, lichess.WithHTTPClient(&http.Client{Transport: mock.NewTransport(mock.New())}))
	}
	opts = append(opts, lichess.WithTimeout(cfg.Timeout))
	return lichess.New(opts...)
}
