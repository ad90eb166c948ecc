package lichess

import (
	"net/http"
	"net/url"
	"strconv"
)

// Request is the transport-neutral form of an API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
}

// Requester is implemented by typed requests that can be reduced to a Request.
type Requester interface {
	Request() Request
}

// ExportQuery holds the optional query parameters of the game export
// endpoint. Nil fields are left to the server default.
type ExportQuery struct {
	Moves     *bool
	PgnInJSON *bool
	Tags      *bool
	Clocks    *bool
	Evals     *bool
	Accuracy  *bool
	Opening   *bool
	Literate  *bool
	Players   string
}

// Values encodes the set fields of q.
func (q ExportQuery) Values() url.Values {
	v := url.Values{}
	setBool(v, "moves", q.Moves)
	setBool(v, "pgnInJson", q.PgnInJSON)
	setBool(v, "tags", q.Tags)
	setBool(v, "clocks", q.Clocks)
	setBool(v, "evals", q.Evals)
	setBool(v, "accuracy", q.Accuracy)
	setBool(v, "opening", q.Opening)
	setBool(v, "literate", q.Literate)
	if q.Players != "" {
		v.Set("players", q.Players)
	}
	return v
}

func setBool(v url.Values, key string, b *bool) {
	if b != nil {
		v.Set(key, strconv.FormatBool(*b))
	}
}

// Bool returns a pointer to b, for filling ExportQuery.
func Bool(b bool) *bool {
	return &b
}

// ExportOneRequest asks for a single game by id.
type ExportOneRequest struct {
	GameID string
	Query  ExportQuery
}

// NewExportOneRequest builds a request for /game/export/{gameID}. The id is
// used verbatim.
func NewExportOneRequest(gameID string, query ExportQuery) ExportOneRequest {
	return ExportOneRequest{GameID: gameID, Query: query}
}

func (r ExportOneRequest) Request() Request {
	return Request{
		Method: http.MethodGet,
		Path:   "/game/export/" + r.GameID,
		Query:  r.Query.Values(),
	}
}
