package entity

import (
	"testing"

	"ocbs-be/pkg/difficulty"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStageSlug(t *testing.T) {
	tests := []struct {
		in   string
		want Stage
	}{
		{"0", StageTesting},
		{"qualifiers", StageQualifiers},
		{"RO16", StageRoundOf16},
		{" 6 ", StageGrandFinals},
	}
	for _, tt := range tests {
		got, err := ParseStageSlug(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"7", "-1", "round-of-3", ""} {
		_, err := ParseStageSlug(bad)
		assert.ErrorIs(t, err, ErrUnknownStage, bad)
		assert.ErrorIs(t, err, ErrInput, bad)
	}
}

func TestCategoryModifiers(t *testing.T) {
	assert.Equal(t, difficulty.Hidden, CategoryHD.Modifier())
	assert.Equal(t, difficulty.None, CategoryHD.AttributeModifier())
	assert.Equal(t, difficulty.HardRock, CategoryHR.AttributeModifier())
	assert.Equal(t, difficulty.DoubleTime, CategoryDT.AttributeModifier())
	assert.Equal(t, difficulty.None, CategoryTB.AttributeModifier())

	c, err := ParseCategory(" dt ")
	require.NoError(t, err)
	assert.Equal(t, CategoryDT, c)

	_, err = ParseCategory("EZ")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestPoolAppendKeepsOrderPerCategory(t *testing.T) {
	pool := NewPool()
	for _, p := range []Pick{
		{Category: CategoryNM, Index: 1},
		{Category: CategoryHR, Index: 1},
		{Category: CategoryNM, Index: 2},
	} {
		require.NoError(t, pool.Append(AdjustedPick{Pick: p}))
	}

	assert.Equal(t, 3, pool.Count())
	require.Len(t, pool.NM, 2)
	assert.Equal(t, "NM1", pool.NM[0].Pick.Label())
	assert.Equal(t, "NM2", pool.NM[1].Pick.Label())
	assert.Nil(t, pool.Picks(Category("XX")))

	err := pool.Append(AdjustedPick{Pick: Pick{Category: Category("XX")}})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
