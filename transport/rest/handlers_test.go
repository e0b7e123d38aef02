package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	server := httptest.NewServer(NewRouter(NewHandlers(logger, solver.New(solver.WithCache()))))
	t.Cleanup(server.Close)

	return server
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url) //nolint: noctx // test helper
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))

	return resp.StatusCode
}

func TestPingHandler(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/ping") //nolint: noctx // test
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBestMoveHandler(t *testing.T) {
	server := newTestServer(t)

	t.Run("Returns the blocking move for O", func(t *testing.T) {
		// When: asking for O's move with X threatening the top row
		var body bestMoveResponse
		status := getJSON(t, server.URL+"/best-move?board=XX.......&mover=O", &body)

		// Then: top-right is returned with its row and column
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "XX.......", body.Board.Notation())
		assert.EqualValues(t, 2, body.Move)
		assert.Equal(t, 0, body.Row)
		assert.Equal(t, 2, body.Column)
	})

	t.Run("Derives the mover from a valid board", func(t *testing.T) {
		var body bestMoveResponse
		status := getJSON(t, server.URL+"/best-move?board=.........", &body)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "X", body.Mover.String())
		assert.EqualValues(t, 0, body.Move)
		assert.Equal(t, solver.ValueDraw, body.Value)
	})

	t.Run("Rejects malformed boards", func(t *testing.T) {
		var body errorResponse
		status := getJSON(t, server.URL+"/best-move?board=XYZ", &body)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.NotEmpty(t, body.Error)
	})

	t.Run("Rejects unknown movers", func(t *testing.T) {
		var body errorResponse
		status := getJSON(t, server.URL+"/best-move?board=.........&mover=Z", &body)

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("Requires a mover for unreachable boards", func(t *testing.T) {
		var body errorResponse
		status := getJSON(t, server.URL+"/best-move?board=XX.......", &body)

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("Reports terminal boards", func(t *testing.T) {
		var body errorResponse
		status := getJSON(t, server.URL+"/best-move?board=XOXXOOOXX&mover=X", &body)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.NotEmpty(t, body.Error)
	})
}
