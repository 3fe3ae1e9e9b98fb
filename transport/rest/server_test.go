package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
	"github.com/rocketscienceinc/tictaptoe-client/internal/metrics"
	"github.com/rocketscienceinc/tictaptoe-client/internal/service"
)

type mockHistory struct {
	mock.Mock
}

func (that *mockHistory) Recent(ctx context.Context, limit int) ([]*entity.Record, error) {
	args := that.Called(ctx, limit)
	records, _ := args.Get(0).([]*entity.Record)

	return records, args.Error(1)
}

func (that *mockHistory) Scoreboard(ctx context.Context) (*entity.Scoreboard, error) {
	args := that.Called(ctx)
	scoreboard, _ := args.Get(0).(*entity.Scoreboard)

	return scoreboard, args.Error(1)
}

func newTestServer(t *testing.T, history historyService) http.Handler {
	t.Helper()

	m := metrics.New()
	m.IntentSent("createRoom")

	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), "0", m.Handler(), history).Handler()
}

func serve(handler http.Handler, method, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))

	return recorder
}

func TestServer_Ping(t *testing.T) {
	handler := newTestServer(t, &mockHistory{})

	// When: the ping route is requested
	recorder := serve(handler, http.MethodGet, "/ping")

	// Then: it answers pong
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())

	// When: the route is requested with another method
	recorder = serve(handler, http.MethodPost, "/ping")

	// Then: it is refused
	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestServer_Metrics(t *testing.T) {
	handler := newTestServer(t, &mockHistory{})

	recorder := serve(handler, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `tictaptoe_intents_total{event="createRoom"} 1`)
}

func TestServer_History(t *testing.T) {
	t.Run("Returns the scoreboard and recent games", func(t *testing.T) {
		// Given: a history with one game
		history := &mockHistory{}
		history.On("Scoreboard", mock.Anything).Return(&entity.Scoreboard{Draws: 1}, nil).Once()
		history.On("Recent", mock.Anything, 3).Return([]*entity.Record{{ID: "1", Outcome: entity.OutcomeDraw}}, nil).Once()
		handler := newTestServer(t, history)

		// When: the history is requested
		recorder := serve(handler, http.MethodGet, "/history?limit=3")

		// Then: both parts are returned
		require.Equal(t, http.StatusOK, recorder.Code)

		var body historyResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
		assert.Equal(t, int64(1), body.Scoreboard.Draws)
		require.Len(t, body.Recent, 1)
		assert.Equal(t, "1", body.Recent[0].ID)
		history.AssertExpectations(t)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		handler := newTestServer(t, &mockHistory{})

		recorder := serve(handler, http.MethodGet, "/history?limit=abc")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Disabled history", func(t *testing.T) {
		handler := newTestServer(t, service.NewDisabledHistoryService())

		recorder := serve(handler, http.MethodGet, "/history")

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	t.Run("Storage failure", func(t *testing.T) {
		// Given: a history whose storage is down
		history := &mockHistory{}
		history.On("Scoreboard", mock.Anything).Return(nil, errors.New("redis down")).Once()
		handler := newTestServer(t, history)

		// When: the history is requested
		recorder := serve(handler, http.MethodGet, "/history")

		// Then: an internal error is returned
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestServer_Start(t *testing.T) {
	// Given: a server on a free port
	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), "0", http.NotFoundHandler(), &mockHistory{})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx)
	}()

	// When: the context is canceled
	cancel()

	// Then: the server stops without an error
	require.NoError(t, <-errCh)
}
