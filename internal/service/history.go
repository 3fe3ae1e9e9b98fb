package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
)

var ErrHistoryDisabled = errors.New("history is disabled")

type HistoryService interface {
	// Record stores a decided game and returns nil for games still running.
	Record(ctx context.Context, mode string, board entity.Board, result entity.Result, roomID string) (*entity.Record, error)
	Recent(ctx context.Context, limit int) ([]*entity.Record, error)
	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

type resultRepo interface {
	Save(ctx context.Context, record *entity.Record) error
	List(ctx context.Context, limit int) ([]*entity.Record, error)
	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

type historyService struct {
	resultRepo resultRepo
	now        func() time.Time
}

func NewHistoryService(resultRepo resultRepo) HistoryService {
	return &historyService{
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

func (that *historyService) Record(
	ctx context.Context,
	mode string,
	board entity.Board,
	result entity.Result,
	roomID string,
) (*entity.Record, error) {
	if !result.IsDecided() {
		return nil, nil
	}

	line := make([]int, len(result.Line))
	copy(line, result.Line)

	record := &entity.Record{
		ID:         uuid.NewString(),
		Mode:       mode,
		Outcome:    result.Outcome,
		Board:      board,
		Line:       line,
		RoomID:     roomID,
		FinishedAt: that.now().UTC(),
	}

	if err := that.resultRepo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record game: %w", err)
	}

	return record, nil
}

func (that *historyService) Recent(ctx context.Context, limit int) ([]*entity.Record, error) {
	records, err := that.resultRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve history from storage: %w", err)
	}

	return records, nil
}

func (that *historyService) Scoreboard(ctx context.Context) (*entity.Scoreboard, error) {
	scoreboard, err := that.resultRepo.Scoreboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve scoreboard from storage: %w", err)
	}

	return scoreboard, nil
}

// disabledHistory stands in when no storage is reachable. Games are
// silently dropped and reads report ErrHistoryDisabled.
type disabledHistory struct{}

func NewDisabledHistoryService() HistoryService {
	return disabledHistory{}
}

func (disabledHistory) Record(context.Context, string, entity.Board, entity.Result, string) (*entity.Record, error) {
	return nil, nil
}

func (disabledHistory) Recent(context.Context, int) ([]*entity.Record, error) {
	return nil, ErrHistoryDisabled
}

func (disabledHistory) Scoreboard(context.Context) (*entity.Scoreboard, error) {
	return nil, ErrHistoryDisabled
}
