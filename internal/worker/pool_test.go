package worker_test

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lichessexport/internal/errors"
	"github.com/vytor/lichessexport/internal/lichess"
	lichessmock "github.com/vytor/lichessexport/internal/lichess/mock"
	"github.com/vytor/lichessexport/internal/testutil"
	"github.com/vytor/lichessexport/internal/testutil/mocks"
	"github.com/vytor/lichessexport/internal/worker"
)

type countingJob struct {
	runs *atomic.Int32
	err  error
}

func (j countingJob) Name() string { return "counting" }

func (j countingJob) Run(ctx context.Context) error {
	j.runs.Add(1)
	return j.err
}

func TestPool_RunsAllJobsBeforeStop(t *testing.T) {
	ctx := testutil.Context(t)
	var runs atomic.Int32

	pool := worker.NewPool(3, 2)
	pool.Start(ctx)
	for i := 0; i < 10; i++ {
		err := error(nil)
		if i%3 == 0 {
			err = stderrors.New("boom")
		}
		require.NoError(t, pool.Submit(ctx, countingJob{runs: &runs, err: err}))
	}
	pool.Stop()

	assert.Equal(t, int32(10), runs.Load())
	assert.Equal(t, 0, pool.QueueSize())
}

func TestPool_SubmitAfterStop(t *testing.T) {
	ctx := testutil.Context(t)
	var runs atomic.Int32

	pool := worker.NewPool(1, 1)
	pool.Start(ctx)
	pool.Stop()
	pool.Stop()

	err := pool.Submit(ctx, countingJob{runs: &runs})
	assert.ErrorIs(t, err, worker.ErrPoolStopped)
	assert.Zero(t, runs.Load())
}

func TestPool_SubmitHonoursContext(t *testing.T) {
	var runs atomic.Int32
	pool := worker.NewPool(1, 1)
	// Not started: the single queue slot fills and the next Submit blocks.
	require.NoError(t, pool.Submit(context.Background(), countingJob{runs: &runs}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, pool.Submit(ctx, countingJob{runs: &runs}), context.Canceled)

	pool.Start(testutil.Context(t))
	pool.Stop()
	assert.Equal(t, int32(1), runs.Load())
}

func TestExportJob_RecordsSummary(t *testing.T) {
	ctx := testutil.Context(t)
	results := &worker.Results{}

	pool := worker.NewPool(2, 4)
	pool.Start(ctx)
	for i, id := range []string{"qAPyiPom", "non-existent", "0J36WF0D"} {
		require.NoError(t, pool.Submit(ctx, &worker.ExportJob{
			Exporter: lichessmock.New(),
			GameID:   id,
			Index:    i,
			Results:  results,
		}))
	}
	pool.Stop()

	outcomes := results.Outcomes()
	require.Len(t, outcomes, 3)
	assert.Equal(t, 1, results.Failed())

	assert.Equal(t, "qAPyiPom", outcomes[0].Summary.GameID)
	assert.Equal(t, 13, outcomes[0].Summary.Plies)
	assert.NoError(t, outcomes[0].Err)

	assert.Equal(t, "non-existent", outcomes[1].GameID)
	assert.EqualError(t, outcomes[1].Err, "response error: supported games are only: 0j36wf0d, qapyipom")

	assert.Equal(t, "0J36WF0D", outcomes[2].Summary.GameID)
	assert.Equal(t, "0-1", outcomes[2].Summary.Result)
}

func TestExportJob_PassesQueryAndReportsReplayFailure(t *testing.T) {
	exporter := &mocks.MockGameExporter{}
	query := lichess.ExportQuery{PgnInJSON: lichess.Bool(true)}
	exporter.On("ExportOneGame", mock.Anything, lichess.NewExportOneRequest("broken01", query)).
		Return(&lichess.Game{ID: "broken01", Moves: "e4 e4"}, nil).Once()

	results := &worker.Results{}
	job := &worker.ExportJob{Exporter: exporter, Query: query, GameID: "broken01", Results: results}

	err := job.Run(testutil.Context(t))
	assert.True(t, errors.IsKind(err, errors.KindDecode))
	assert.Equal(t, "export_game:broken01", job.Name())
	require.Len(t, results.Outcomes(), 1)
	assert.Equal(t, err, results.Outcomes()[0].Err)
	exporter.AssertExpectations(t)
}

func TestExportJob_ExporterError(t *testing.T) {
	exporter := &mocks.MockGameExporter{}
	exporter.On("ExportOneGame", mock.Anything, mock.Anything).
		Return(nil, errors.NewStatusError(429, "rate limited"))

	results := &worker.Results{}
	job := &worker.ExportJob{Exporter: exporter, GameID: "abc", Results: results}

	err := job.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, results.Failed())
}
