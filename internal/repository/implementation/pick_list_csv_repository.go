package implementation

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/repository/contract"

	"gopkg.in/yaml.v3"
)

const stageManifestFile = "stages.yaml"

// stageManifest optionally overrides which CSV file backs a stage:
//
//	stages:
//	  qualifiers:
//	    file: qualifiers-v2.csv
type stageManifest struct {
	Stages map[string]struct {
		File string `yaml:"file"`
	} `yaml:"stages"`
}

// PickListCSVRepository reads pick lists from <dir>/<stage>.csv. Each file has a
// header row followed by rows of category, index, beatmap id.
type PickListCSVRepository struct {
	dir string
}

func NewPickListCSVRepository(dir string) contract.PickListRepository {
	return &PickListCSVRepository{dir: dir}
}

func (r *PickListCSVRepository) fileFor(stage entity.Stage) (string, error) {
	name := stage.Slug() + ".csv"

	b, err := os.ReadFile(filepath.Join(r.dir, stageManifestFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return filepath.Join(r.dir, name), nil
		}
		return "", err
	}

	var manifest stageManifest
	if err := yaml.Unmarshal(b, &manifest); err != nil {
		return "", fmt.Errorf("parse %s: %w", stageManifestFile, err)
	}
	if s, ok := manifest.Stages[stage.Slug()]; ok && s.File != "" {
		name = s.File
	}
	return filepath.Join(r.dir, name), nil
}

func (r *PickListCSVRepository) FindByStage(ctx context.Context, stage entity.Stage) ([]entity.Pick, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := r.fileFor(stage)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entity.ErrNoPickList, stage.Slug())
		}
		return nil, err
	}
	defer f.Close()

	return parsePickList(f)
}

func parsePickList(in io.Reader) ([]entity.Pick, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedPick, err)
	}
	if len(rows) == 0 {
		return []entity.Pick{}, nil
	}

	picks := make([]entity.Pick, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: line %d has %d columns", entity.ErrMalformedPick, line, len(row))
		}

		category, err := entity.ParseCategory(row[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		index, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d index %q", entity.ErrMalformedPick, line, row[1])
		}
		beatmapId, err := strconv.ParseInt(strings.TrimSpace(row[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d beatmap id %q", entity.ErrMalformedPick, line, row[2])
		}

		picks = append(picks, entity.Pick{
			Category:  category,
			Index:     index,
			BeatmapId: beatmapId,
		})
	}
	return picks, nil
}
