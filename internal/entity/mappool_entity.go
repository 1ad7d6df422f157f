// FILE: internal/entity/mappool_entity.go
package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ocbs-be/pkg/difficulty"
)

// Stage is a named tournament phase with its own map pool.
type Stage int

const (
	StageTesting Stage = iota
	StageQualifiers
	StageRoundOf16
	StageQuarterfinals
	StageSemifinals
	StageFinals
	StageGrandFinals
)

var stageSlugs = map[Stage]string{
	StageTesting:       "testing",
	StageQualifiers:    "qualifiers",
	StageRoundOf16:     "ro16",
	StageQuarterfinals: "quarterfinals",
	StageSemifinals:    "semifinals",
	StageFinals:        "finals",
	StageGrandFinals:   "grandfinals",
}

func AllStages() []Stage {
	return []Stage{
		StageTesting,
		StageQualifiers,
		StageRoundOf16,
		StageQuarterfinals,
		StageSemifinals,
		StageFinals,
		StageGrandFinals,
	}
}

// ParseStage maps the integer used on the wire to a Stage.
func ParseStage(v int) (Stage, error) {
	s := Stage(v)
	if _, ok := stageSlugs[s]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownStage, v)
	}
	return s, nil
}

// ParseStageSlug accepts either the slug ("qualifiers") or the integer form ("1").
func ParseStageSlug(v string) (Stage, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for s, slug := range stageSlugs {
		if slug == v {
			return s, nil
		}
	}
	if n, err := strconv.Atoi(v); err == nil {
		return ParseStage(n)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStage, v)
}

func (s Stage) Slug() string {
	if slug, ok := stageSlugs[s]; ok {
		return slug
	}
	return fmt.Sprintf("stage-%d", int(s))
}

func (s Stage) String() string {
	return s.Slug()
}

// Category groups picks that share a modifier rule.
type Category string

const (
	CategoryNM Category = "NM"
	CategoryHD Category = "HD"
	CategoryHR Category = "HR"
	CategoryDT Category = "DT"
	CategoryTB Category = "TB"
)

// categoryModifiers is the single source for which mod a category plays under.
// HD is a named category but does not change any difficulty figure.
var categoryModifiers = map[Category]difficulty.Modifier{
	CategoryNM: difficulty.None,
	CategoryHD: difficulty.Hidden,
	CategoryHR: difficulty.HardRock,
	CategoryDT: difficulty.DoubleTime,
	CategoryTB: difficulty.None,
}

// AllCategories returns the categories in pool order.
func AllCategories() []Category {
	return []Category{CategoryNM, CategoryHD, CategoryHR, CategoryDT, CategoryTB}
}

func ParseCategory(v string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(v)))
	if _, ok := categoryModifiers[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, v)
	}
	return c, nil
}

// Modifier returns the mod picks in this category are played with.
func (c Category) Modifier() difficulty.Modifier {
	return categoryModifiers[c]
}

// AttributeModifier is the mod sent upstream when asking for the star
// rating. Only mods that change difficulty are sent.
func (c Category) AttributeModifier() difficulty.Modifier {
	m := c.Modifier()
	if !m.AltersDifficulty() {
		return difficulty.None
	}
	return m
}

// Pick is one slot of a stage's map pool.
type Pick struct {
	Category  Category
	Index     int
	BeatmapId int64
}

// Label is the category and index concatenated, e.g. "HR2".
func (p Pick) Label() string {
	return fmt.Sprintf("%s%d", p.Category, p.Index)
}

// RawBeatmap is the subset of upstream beatmap metadata the pool needs.
type RawBeatmap struct {
	Id           int64
	BeatmapsetId int64
	Title        string
	Artist       string
	Version      string
	Creator      string
	CoverURL     string
	CS           float64
	HP           float64
	AR           float64
	OD           float64
	BPM          float64
	TotalLength  int
}

// BeatmapAttributes are the modifier-aware figures computed upstream.
type BeatmapAttributes struct {
	StarRating float64
	MaxCombo   int
}

type AdjustedPick struct {
	Pick       Pick
	MapId      int64
	CoverURL   string
	Artist     string
	Title      string
	Difficulty string
	Creator    string
	Length     string
	Link       string
	Attributes difficulty.Attributes
}

// Pool holds the resolved picks of one stage, in pick-list order per category.
type Pool struct {
	NM []AdjustedPick
	HD []AdjustedPick
	HR []AdjustedPick
	DT []AdjustedPick
	TB []AdjustedPick
}

func NewPool() *Pool {
	return &Pool{
		NM: []AdjustedPick{},
		HD: []AdjustedPick{},
		HR: []AdjustedPick{},
		DT: []AdjustedPick{},
		TB: []AdjustedPick{},
	}
}

func (p *Pool) slot(c Category) *[]AdjustedPick {
	switch c {
	case CategoryNM:
		return &p.NM
	case CategoryHD:
		return &p.HD
	case CategoryHR:
		return &p.HR
	case CategoryDT:
		return &p.DT
	case CategoryTB:
		return &p.TB
	}
	return nil
}

// Picks returns the picks of a category, nil for an unknown category.
func (p *Pool) Picks(c Category) []AdjustedPick {
	if s := p.slot(c); s != nil {
		return *s
	}
	return nil
}

func (p *Pool) Append(pick AdjustedPick) error {
	s := p.slot(pick.Pick.Category)
	if s == nil {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, pick.Pick.Category)
	}
	*s = append(*s, pick)
	return nil
}

func (p *Pool) Count() int {
	return len(p.NM) + len(p.HD) + len(p.HR) + len(p.DT) + len(p.TB)
}

// PoolCacheInfo describes a persisted pool artifact.
type PoolCacheInfo struct {
	Stage   Stage
	Backend string
	Cached  bool
	Size    int64
	SavedAt time.Time
}
