package lichess

import "context"

// GameExporter exports single games. Both the HTTP client and the fixture
// mock implement it, so callers can swap one for the other.
type GameExporter interface {
	ExportOneGame(ctx context.Context, req Requester) (*Game, error)
}

// Ensure Client implements the interface
var _ GameExporter = (*Client)(nil)
