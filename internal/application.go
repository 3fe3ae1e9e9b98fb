package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictaptoe-client/internal/config"
	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
	"github.com/rocketscienceinc/tictaptoe-client/internal/game"
	"github.com/rocketscienceinc/tictaptoe-client/internal/metrics"
	"github.com/rocketscienceinc/tictaptoe-client/internal/remote"
	"github.com/rocketscienceinc/tictaptoe-client/internal/repository"
	"github.com/rocketscienceinc/tictaptoe-client/internal/repository/storage"
	"github.com/rocketscienceinc/tictaptoe-client/internal/service"
	"github.com/rocketscienceinc/tictaptoe-client/internal/sound"
	"github.com/rocketscienceinc/tictaptoe-client/internal/transport/websocket"
	"github.com/rocketscienceinc/tictaptoe-client/internal/ui"
	"github.com/rocketscienceinc/tictaptoe-client/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

const (
	recordTimeout = 3 * time.Second
	closeTimeout  = 3 * time.Second
)

// RunApp - runs the application until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	appMetrics := metrics.New()

	history, closeHistory := openHistory(ctx, log, conf)
	defer closeHistory()

	results := &resultRecorder{
		logger:  logger.With("component", "results"),
		history: history,
		metrics: appMetrics,
	}

	var cues sound.Player = sound.Mute{}
	if !conf.Sound.Muted {
		bell := sound.NewBell(os.Stderr, true, conf.Sound.Tap)
		defer bell.Close()
		cues = bell
	}

	client := websocket.New(logger, conf.GameServerURL(), websocket.Options{
		ReconnectAttempts: conf.ReconnectAttempts,
		ReconnectDelay:    conf.ReconnectDelay,
		PingInterval:      conf.PingInterval,
	})
	client.OnStateChange(func(state websocket.State) {
		appMetrics.TransportState(string(state))
	})

	mirror := remote.NewMirror(logger, client, remote.Options{
		Cues:    cues,
		Metrics: appMetrics,
		OnFinish: func(snapshot remote.Snapshot) {
			roomID := ""
			if snapshot.Room != nil {
				roomID = snapshot.Room.ID
			}
			results.record(entity.ModeOnline, snapshot.Board, snapshot.Result, roomID)
		},
	})
	mirror.Open()
	defer mirror.Close()

	session := game.NewSession(cues)
	session.OnFinish(func(state game.State) {
		results.record(entity.ModeLocal, state.Board, state.Result, "")
	})

	go func() {
		log.Info("Connecting to game server", "url", conf.GameServerURL())
		if err := client.Connect(ctx); err != nil {
			log.Warn("game server unreachable", "error", err)
		}
	}()

	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), closeTimeout)
		defer closeCancel()

		if err := client.Close(closeCtx); err != nil {
			log.Error("could not close websocket client", "error", err)
		}
	}()

	// run HTTP server
	if conf.HTTPPort != "" {
		server := rest.New(logger, conf.HTTPPort, appMetrics.Handler(), history)
		go func() {
			if httpErr := server.Start(ctx); httpErr != nil {
				log.Error("HTTP server error", "error", httpErr)
			}
		}()
	}

	program := tea.NewProgram(ui.New(ui.Options{
		StartRoute: conf.StartRoute,
		Session:    session,
		Mirror:     mirror,
		AckTimeout: conf.AckTimeout,
	}), tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("Application stopped")

	return nil
}

// openHistory connects the result store. Without Redis the game still runs
// and history reports itself disabled.
func openHistory(ctx context.Context, log *slog.Logger, conf *config.Config) (service.HistoryService, func()) {
	if conf.History.Disabled {
		return service.NewDisabledHistoryService(), func() {}
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		log.Warn("history disabled", "error", ErrAddrNotFound)
		return service.NewDisabledHistoryService(), func() {}
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		log.Warn("history disabled, could not connect to redis storage", "error", err)
		return service.NewDisabledHistoryService(), func() {}
	}

	resultRepo := repository.NewResultRepository(redisStorage.Connection, conf.History.Limit)

	return service.NewHistoryService(resultRepo), func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}
}

type resultRecorder struct {
	logger  *slog.Logger
	history service.HistoryService
	metrics *metrics.Metrics
}

// record stores a finished game without blocking the caller.
func (that *resultRecorder) record(mode string, board entity.Board, result entity.Result, roomID string) {
	that.metrics.GameFinished(mode, string(result.Outcome))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		record, err := that.history.Record(ctx, mode, board, result, roomID)
		switch {
		case errors.Is(err, service.ErrHistoryDisabled):
		case err != nil:
			that.logger.Warn("failed to record game", "mode", mode, "error", err)
		case record != nil:
			that.logger.Info("game recorded", "id", record.ID, "mode", mode, "outcome", record.Outcome)
		}
	}()
}
