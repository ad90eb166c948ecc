package worker

import (
	"context"
	"sort"
	"sync"

	"github.com/vytor/lichessexport/internal/lichess"
	"github.com/vytor/lichessexport/internal/logger"
	"github.com/vytor/lichessexport/internal/review"
)

// Outcome is the result of one export job.
type Outcome struct {
	Index   int
	GameID  string
	Summary review.Summary
	Err     error
}

// Results collects outcomes from concurrently running jobs.
type Results struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func (r *Results) record(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

// Outcomes returns the recorded outcomes ordered by submission index.
func (r *Results) Outcomes() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]Outcome(nil), r.outcomes...)
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Failed counts outcomes carrying an error.
func (r *Results) Failed() int {
	n := 0
	for _, o := range r.Outcomes() {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// ExportJob exports one game and records its summary.
type ExportJob struct {
	Exporter lichess.GameExporter
	Query    lichess.ExportQuery
	GameID   string
	Index    int
	Results  *Results
}

func (j *ExportJob) Name() string { return "export_game:" + j.GameID }

func (j *ExportJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("game_id", j.GameID)

	outcome := Outcome{Index: j.Index, GameID: j.GameID}
	defer func() { j.Results.record(outcome) }()

	game, err := j.Exporter.ExportOneGame(ctx, lichess.NewExportOneRequest(j.GameID, j.Query))
	if err != nil {
		log.Warn("export failed: %v", err)
		outcome.Err = err
		return err
	}

	summary, err := review.Summarize(game)
	if err != nil {
		log.Warn("failed to replay game: %v", err)
		outcome.Err = err
		return err
	}
	outcome.Summary = summary
	log.Info("exported game with %d plies", summary.Plies)
	return nil
}
