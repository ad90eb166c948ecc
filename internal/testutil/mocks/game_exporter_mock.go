package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lichessexport/internal/lichess"
)

// MockGameExporter is a mock implementation of lichess.GameExporter
type MockGameExporter struct {
	mock.Mock
}

var _ lichess.GameExporter = (*MockGameExporter)(nil)

func (m *MockGameExporter) ExportOneGame(ctx context.Context, req lichess.Requester) (*lichess.Game, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lichess.Game), args.Error(1)
}
