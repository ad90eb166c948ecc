package mock

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/vytor/lichessexport/internal/errors"
	"github.com/vytor/lichessexport/internal/lichess"
	"github.com/vytor/lichessexport/internal/logger"
)

//go:embed data/*.json
var fixtureFS embed.FS

// catalog maps a lowercase game id to its one-time loader. To add a fixture,
// drop the JSON export into data/ and add a line here.
var catalog = map[string]func() lichess.Game{
	"0j36wf0d": fixture("data/0j36wf0d.json"),
	"qapyipom": fixture("data/qapyipom.json"),
}

var unsupportedGameMessage = "supported games are only: " + strings.Join(SupportedGames(), ", ")

func fixture(name string) func() lichess.Game {
	return sync.OnceValue(func() lichess.Game {
		return mustLoadFixture(fixtureFS, name)
	})
}

// mustLoadFixture panics on malformed data: fixtures are compiled in, so a
// bad one is a build defect and never a caller error.
func mustLoadFixture(fsys fs.FS, name string) lichess.Game {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		panic(fmt.Sprintf("mock: read fixture %s: %v", name, err))
	}
	var game lichess.Game
	if err := json.Unmarshal(data, &game); err != nil {
		panic(fmt.Sprintf("mock: decode fixture %s: %v", name, err))
	}
	logger.Default().WithPrefix("mock").WithField("fixture", name).Debug("loaded fixture game %s", game.ID)
	return game
}

// SupportedGames returns the catalog ids in sorted order.
func SupportedGames() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GameByID looks up a fixture ignoring case and returns a private copy. The
// copy keeps the fixture's own id casing.
func GameByID(gameID string) (*lichess.Game, error) {
	load, ok := catalog[strings.ToLower(gameID)]
	if !ok {
		return nil, errors.NewResponseError(unsupportedGameMessage)
	}
	game := load()
	return game.Clone(), nil
}
