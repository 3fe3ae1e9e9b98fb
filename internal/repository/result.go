package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
)

const (
	historyKey    = "history:results"
	scoreboardKey = "history:scoreboard"

	fieldXWins = "x_wins"
	fieldOWins = "o_wins"
	fieldDraws = "draws"
)

var ErrUndecided = errors.New("game is not decided")

type ResultRepository interface {
	Save(ctx context.Context, record *entity.Record) error
	List(ctx context.Context, limit int) ([]*entity.Record, error)
	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

type dbResult struct {
	client *redis.Client
	limit  int
}

// NewResultRepository keeps at most limit records; the scoreboard counts
// every saved record.
func NewResultRepository(client *redis.Client, limit int) ResultRepository {
	return &dbResult{
		client: client,
		limit:  limit,
	}
}

func (that *dbResult) Save(ctx context.Context, record *entity.Record) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}

	field, err := scoreField(record.Outcome)
	if err != nil {
		return err
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, historyKey, recordJSON)
		if that.limit > 0 {
			pipe.LTrim(ctx, historyKey, 0, int64(that.limit-1))
		}
		pipe.HIncrBy(ctx, scoreboardKey, field, 1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// List returns the newest records first.
func (that *dbResult) List(ctx context.Context, limit int) ([]*entity.Record, error) {
	if limit <= 0 {
		return []*entity.Record{}, nil
	}

	response, err := that.client.LRange(ctx, historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	records := make([]*entity.Record, 0, len(response))
	for _, item := range response {
		var record entity.Record
		if err = json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}

		records = append(records, &record)
	}

	return records, nil
}

func (that *dbResult) Scoreboard(ctx context.Context) (*entity.Scoreboard, error) {
	response, err := that.client.HGetAll(ctx, scoreboardKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	var scoreboard entity.Scoreboard
	for field, target := range map[string]*int64{
		fieldXWins: &scoreboard.XWins,
		fieldOWins: &scoreboard.OWins,
		fieldDraws: &scoreboard.Draws,
	} {
		value, ok := response[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(value, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse scoreboard field %s: %w", field, err)
		}
	}

	return &scoreboard, nil
}

func scoreField(outcome entity.Outcome) (string, error) {
	switch outcome {
	case entity.OutcomeXWins:
		return fieldXWins, nil
	case entity.OutcomeOWins:
		return fieldOWins, nil
	case entity.OutcomeDraw:
		return fieldDraws, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUndecided, outcome)
	}
}
