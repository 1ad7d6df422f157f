package main

import (
	"bytes"
	"testing"
	"time"

	"ocbs-be/internal/entity"
	"ocbs-be/pkg/difficulty"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestRenderStatus(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer

	renderStatus(&buf, []*entity.PoolCacheInfo{
		{Stage: entity.StageQualifiers, Backend: "file", Cached: true, Size: 2048, SavedAt: now.Add(-2 * time.Hour)},
		{Stage: entity.StageFinals, Backend: "file"},
	}, now)

	out := buf.String()
	assert.Contains(t, out, "qualifiers")
	assert.Contains(t, out, "cached")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "finals")
	assert.Contains(t, out, "miss")
}

func TestRenderPool(t *testing.T) {
	pool := entity.NewPool()
	require.NoError(t, pool.Append(entity.AdjustedPick{
		Pick:       entity.Pick{Category: entity.CategoryHR, Index: 2, BeatmapId: 102},
		MapId:      102,
		Artist:     "xi",
		Title:      "FREEDOM DiVE",
		Difficulty: "FOUR DIMENSIONS",
		Length:     "4:17",
		Attributes: difficulty.Attributes{AR: 10, OD: 10, CS: 5.2, HP: 7, BPM: 222.22, StarRating: 8.31},
	}))

	var buf bytes.Buffer
	renderPool(&buf, pool)

	out := buf.String()
	assert.Contains(t, out, "HR2")
	assert.Contains(t, out, "xi - FREEDOM DiVE [FOUR DIMENSIONS]")
	assert.Contains(t, out, "222.22")
	assert.Contains(t, out, "8.31")
}

func TestStagesArg(t *testing.T) {
	all, err := stagesArg(nil, true)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	_, err = stagesArg([]string{"all"}, false)
	assert.Error(t, err)

	one, err := stagesArg([]string{"ro16"}, false)
	require.NoError(t, err)
	assert.Equal(t, []entity.Stage{entity.StageRoundOf16}, one)

	_, err = stagesArg([]string{"9"}, false)
	assert.ErrorIs(t, err, entity.ErrUnknownStage)
}
