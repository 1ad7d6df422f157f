package implementation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/mapper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onePickPool() *entity.Pool {
	pool := entity.NewPool()
	_ = pool.Append(entity.AdjustedPick{
		Pick:  entity.Pick{Category: entity.CategoryNM, Index: 1, BeatmapId: 101},
		MapId: 101,
		Title: "Song",
		Link:  "https://osu.ppy.sh/b/101",
	})
	return pool
}

func TestPoolCacheFileRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	repo := NewPoolCacheFileRepository(dir)
	ctx := context.Background()

	pool, err := repo.Load(ctx, entity.StageQualifiers)
	require.NoError(t, err)
	assert.Nil(t, pool)

	require.NoError(t, repo.Save(ctx, entity.StageQualifiers, onePickPool()))

	loaded, err := repo.Load(ctx, entity.StageQualifiers)
	require.NoError(t, err)
	assert.Equal(t, onePickPool(), loaded)

	want, err := mapper.NewMapPoolMapper().Encode(onePickPool())
	require.NoError(t, err)
	onDisk, err := os.ReadFile(filepath.Join(dir, "qualifiers.json"))
	require.NoError(t, err)
	assert.Equal(t, want, onDisk)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestPoolCacheFileCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "finals.json", `{"NM":[{"pick":"NM1"`)
	repo := NewPoolCacheFileRepository(dir)

	_, err := repo.Load(context.Background(), entity.StageFinals)
	assert.ErrorIs(t, err, entity.ErrCorruptPoolCache)
}

func TestPoolCacheFileLoadArtifactIsVerbatim(t *testing.T) {
	dir := t.TempDir()
	handWritten := "{\"NM\": [],\n \"HD\": [], \"HR\": [], \"DT\": [], \"TB\": [], \"note\": \"x\"}\n"
	writeFile(t, dir, "semifinals.json", handWritten)
	repo := NewPoolCacheFileRepository(dir)

	b, err := repo.LoadArtifact(context.Background(), entity.StageSemifinals)
	require.NoError(t, err)
	assert.Equal(t, handWritten, string(b))

	b, err = repo.LoadArtifact(context.Background(), entity.StageFinals)
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestPoolCacheFileDescribeAndDelete(t *testing.T) {
	repo := NewPoolCacheFileRepository(t.TempDir())
	ctx := context.Background()

	info, err := repo.Describe(ctx, entity.StageTesting)
	require.NoError(t, err)
	assert.False(t, info.Cached)
	assert.Equal(t, "file", info.Backend)

	require.NoError(t, repo.Save(ctx, entity.StageTesting, onePickPool()))

	info, err = repo.Describe(ctx, entity.StageTesting)
	require.NoError(t, err)
	assert.True(t, info.Cached)
	assert.Positive(t, info.Size)
	assert.False(t, info.SavedAt.IsZero())

	require.NoError(t, repo.Delete(ctx, entity.StageTesting))
	require.NoError(t, repo.Delete(ctx, entity.StageTesting))

	pool, err := repo.Load(ctx, entity.StageTesting)
	require.NoError(t, err)
	assert.Nil(t, pool)
}
