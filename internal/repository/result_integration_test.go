//go:build integration

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
	"github.com/rocketscienceinc/tictaptoe-client/testing/suite"
)

func TestResultRepository_Redis(t *testing.T) {
	ctx, st := suite.NewDocker(t)

	resultRepo := NewResultRepository(st.Storage, 2)

	// Given: three finished games
	require.NoError(t, resultRepo.Save(ctx, newRecord("1", entity.OutcomeXWins)))
	require.NoError(t, resultRepo.Save(ctx, newRecord("2", entity.OutcomeDraw)))
	require.NoError(t, resultRepo.Save(ctx, newRecord("3", entity.OutcomeOWins)))

	// When: the history and the scoreboard are read
	records, err := resultRepo.List(ctx, 10)
	require.NoError(t, err)

	scoreboard, err := resultRepo.Scoreboard(ctx)
	require.NoError(t, err)

	// Then: the history is trimmed and the scoreboard is complete
	require.Len(t, records, 2)
	assert.Equal(t, "3", records[0].ID)
	assert.Equal(t, &entity.Scoreboard{XWins: 1, OWins: 1, Draws: 1}, scoreboard)
}
