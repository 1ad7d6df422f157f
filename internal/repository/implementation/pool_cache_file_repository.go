package implementation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/mapper"
	"ocbs-be/internal/repository/contract"
)

// PoolCacheFileRepository keeps one JSON artifact per stage under dir.
// Operators invalidate a stage by deleting its file.
type PoolCacheFileRepository struct {
	dir    string
	mapper *mapper.MapPoolMapper
}

func NewPoolCacheFileRepository(dir string) contract.PoolCacheRepository {
	return &PoolCacheFileRepository{
		dir:    dir,
		mapper: mapper.NewMapPoolMapper(),
	}
}

func (r *PoolCacheFileRepository) path(stage entity.Stage) string {
	return filepath.Join(r.dir, stage.Slug()+".json")
}

func (r *PoolCacheFileRepository) LoadArtifact(ctx context.Context, stage entity.Stage) ([]byte, error) {
	b, err := os.ReadFile(r.path(stage))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *PoolCacheFileRepository) Load(ctx context.Context, stage entity.Stage) (*entity.Pool, error) {
	b, err := r.LoadArtifact(ctx, stage)
	if err != nil || b == nil {
		return nil, err
	}
	return r.mapper.Decode(b)
}

func (r *PoolCacheFileRepository) Save(ctx context.Context, stage entity.Stage, pool *entity.Pool) error {
	b, err := r.mapper.Encode(pool)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}

	// Write to a sibling temp file and rename so readers never see a partial artifact.
	tmp, err := os.CreateTemp(r.dir, stage.Slug()+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write pool cache: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path(stage))
}

func (r *PoolCacheFileRepository) Describe(ctx context.Context, stage entity.Stage) (*entity.PoolCacheInfo, error) {
	info := &entity.PoolCacheInfo{Stage: stage, Backend: "file"}
	st, err := os.Stat(r.path(stage))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return info, nil
		}
		return nil, err
	}
	info.Cached = true
	info.Size = st.Size()
	info.SavedAt = st.ModTime()
	return info, nil
}

func (r *PoolCacheFileRepository) Delete(ctx context.Context, stage entity.Stage) error {
	if err := os.Remove(r.path(stage)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
