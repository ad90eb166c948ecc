package lichess_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/lichessexport/internal/lichess"
)

func sampleGame() lichess.Game {
	return lichess.Game{
		ID: "abcd1234",
		Players: lichess.Players{
			White: lichess.Player{User: &lichess.User{ID: "w", Name: "W"}, Analysis: &lichess.AnalysisSummary{ACPL: 30}},
			Black: lichess.Player{User: &lichess.User{ID: "b", Name: "B"}},
		},
		Opening: &lichess.Opening{ECO: "B01", Name: "Scandinavian Defense", Ply: 2},
		Clock:   &lichess.Clock{Initial: 300, Increment: 3},
		Clocks:  []int{30003, 30003, 29811},
	}
}

func TestClone_IsDeep(t *testing.T) {
	orig := sampleGame()
	cp := orig.Clone()
	assert.Equal(t, orig, *cp)

	cp.ID = "changed"
	cp.Players.White.User.Name = "changed"
	cp.Players.White.Analysis.ACPL = 99
	cp.Opening.Name = "changed"
	cp.Clock.Initial = 1
	cp.Clocks[0] = 1

	assert.Equal(t, "abcd1234", orig.ID)
	assert.Equal(t, "W", orig.Players.White.User.Name)
	assert.Equal(t, 30, orig.Players.White.Analysis.ACPL)
	assert.Equal(t, "Scandinavian Defense", orig.Opening.Name)
	assert.Equal(t, 300, orig.Clock.Initial)
	assert.Equal(t, 30003, orig.Clocks[0])
}

func TestClone_NilFields(t *testing.T) {
	cp := lichess.Game{ID: "x"}.Clone()
	assert.Nil(t, cp.Opening)
	assert.Nil(t, cp.Clock)
	assert.Nil(t, cp.Clocks)
	assert.Nil(t, cp.Players.White.User)
}

func TestPlayerName(t *testing.T) {
	assert.Equal(t, "Anonymous", lichess.Player{}.Name())
	assert.Equal(t, "Stockfish level 8", lichess.Player{AILevel: 8}.Name())
	assert.Equal(t, "DrNykterstein", lichess.Player{User: &lichess.User{Name: "DrNykterstein"}}.Name())
}

func TestExportOneRequest_Request(t *testing.T) {
	req := lichess.NewExportOneRequest("qAPyiPom", lichess.ExportQuery{
		PgnInJSON: lichess.Bool(true),
		Clocks:    lichess.Bool(false),
		Players:   "https://example.com/players.json",
	}).Request()

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/game/export/qAPyiPom", req.Path)
	assert.Equal(t, "true", req.Query.Get("pgnInJson"))
	assert.Equal(t, "false", req.Query.Get("clocks"))
	assert.Equal(t, "https://example.com/players.json", req.Query.Get("players"))
	assert.False(t, req.Query.Has("moves"))
}

func TestExportQuery_EmptyEncodesNothing(t *testing.T) {
	assert.Empty(t, lichess.ExportQuery{}.Values())
}
