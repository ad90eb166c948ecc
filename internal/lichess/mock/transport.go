package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/lichessexport/internal/errors"
	"github.com/vytor/lichessexport/internal/lichess"
	"github.com/vytor/lichessexport/internal/logger"
)

// Transport is an http.RoundTripper that answers requests in process from the
// fixture catalog, so a real lichess.Client can run without a network.
type Transport struct {
	router chi.Router
}

var _ http.RoundTripper = (*Transport)(nil)

func NewTransport(c *Client) *Transport {
	r := chi.NewRouter()
	r.Get("/game/export/{gameID}", func(w http.ResponseWriter, req *http.Request) {
		exportReq := lichess.NewExportOneRequest(chi.URLParam(req, "gameID"), lichess.ExportQuery{})
		game, err := c.ExportOneGame(req.Context(), exportReq)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, game)
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusBadRequest, errors.NewResponseError(invalidPathMessage))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	})
	return &Transport{router: r}
}

// RoundTrip dispatches req through the router and returns the recorded response.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	logger.FromContext(req.Context()).WithPrefix("mock").Debug("round trip %s %s", req.Method, req.URL.Path)

	if req.Body != nil {
		defer req.Body.Close()
	}

	rec := httptest.NewRecorder()
	t.router.ServeHTTP(rec, req)

	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

// statusFor maps mock errors onto the codes lichess would send.
func statusFor(err error) int {
	if apiErr, ok := errors.As(err); ok && apiErr.Message == invalidPathMessage {
		return http.StatusBadRequest
	}
	return http.StatusNotFound
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := err.Error()
	if apiErr, ok := errors.As(err); ok {
		msg = apiErr.Message
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
