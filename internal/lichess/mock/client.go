// Package mock is an offline stand-in for the lichess API. It answers the
// single-game export endpoint from fixtures compiled into the binary.
package mock

import (
	"context"

	"github.com/vytor/lichessexport/internal/errors"
	"github.com/vytor/lichessexport/internal/lichess"
	"github.com/vytor/lichessexport/internal/logger"
)

const invalidPathMessage = "invalid path, expected /game/export/{game_id}"

// Client serves fixture games. The zero value is ready to use.
type Client struct{}

func New() *Client {
	return &Client{}
}

var _ lichess.GameExporter = (*Client)(nil)

// ExportOneGame resolves req's path against the fixture catalog. It never
// blocks; ctx only supplies the logger.
func (c *Client) ExportOneGame(ctx context.Context, req lichess.Requester) (*lichess.Game, error) {
	path := req.Request().Path
	log := logger.FromContext(ctx).WithPrefix("mock").WithField("path", path)

	gameID, ok := ExtractGameID(path)
	if !ok {
		log.Warn("rejecting request: path does not name a game export")
		return nil, errors.NewResponseError(invalidPathMessage)
	}

	game, err := GameByID(gameID)
	if err != nil {
		log.Warn("no fixture for game %s", gameID)
		return nil, err
	}
	log.Debug("serving fixture %s", game.ID)
	return game, nil
}
