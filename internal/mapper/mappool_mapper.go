package mapper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"ocbs-be/internal/dto"
	"ocbs-be/internal/entity"
	"ocbs-be/pkg/difficulty"
)

type MapPoolMapper struct{}

func NewMapPoolMapper() *MapPoolMapper {
	return &MapPoolMapper{}
}

func (m *MapPoolMapper) ToDocument(p *entity.Pool) *dto.MapPoolDocument {
	if p == nil {
		return nil
	}
	return &dto.MapPoolDocument{
		NM: m.toPicks(p.NM),
		HD: m.toPicks(p.HD),
		HR: m.toPicks(p.HR),
		DT: m.toPicks(p.DT),
		TB: m.toPicks(p.TB),
	}
}

func (m *MapPoolMapper) toPicks(picks []entity.AdjustedPick) []dto.MapPoolPick {
	out := make([]dto.MapPoolPick, 0, len(picks))
	for _, p := range picks {
		out = append(out, dto.MapPoolPick{
			Pick:    p.Pick.Label(),
			MapId:   p.MapId,
			Bg:      p.CoverURL,
			Artist:  p.Artist,
			Title:   p.Title,
			Diff:    p.Difficulty,
			Creator: p.Creator,
			Length:  p.Length,
			Link:    p.Link,
			AR:      p.Attributes.AR,
			CS:      p.Attributes.CS,
			HP:      p.Attributes.HP,
			OD:      p.Attributes.OD,
			SR:      p.Attributes.StarRating,
			BPM:     p.Attributes.BPM,
		})
	}
	return out
}

func (m *MapPoolMapper) ToEntity(d *dto.MapPoolDocument) *entity.Pool {
	if d == nil {
		return nil
	}
	return &entity.Pool{
		NM: m.toAdjusted(entity.CategoryNM, d.NM),
		HD: m.toAdjusted(entity.CategoryHD, d.HD),
		HR: m.toAdjusted(entity.CategoryHR, d.HR),
		DT: m.toAdjusted(entity.CategoryDT, d.DT),
		TB: m.toAdjusted(entity.CategoryTB, d.TB),
	}
}

func (m *MapPoolMapper) toAdjusted(c entity.Category, picks []dto.MapPoolPick) []entity.AdjustedPick {
	out := make([]entity.AdjustedPick, 0, len(picks))
	for i, p := range picks {
		index, err := strconv.Atoi(strings.TrimPrefix(p.Pick, string(c)))
		if err != nil {
			index = i + 1
		}
		out = append(out, entity.AdjustedPick{
			Pick:       entity.Pick{Category: c, Index: index, BeatmapId: p.MapId},
			MapId:      p.MapId,
			CoverURL:   p.Bg,
			Artist:     p.Artist,
			Title:      p.Title,
			Difficulty: p.Diff,
			Creator:    p.Creator,
			Length:     p.Length,
			Link:       p.Link,
			Attributes: difficulty.Attributes{
				AR:         p.AR,
				OD:         p.OD,
				CS:         p.CS,
				HP:         p.HP,
				BPM:        p.BPM,
				StarRating: p.SR,
			},
		})
	}
	return out
}

// Encode renders the pool as its cache artifact.
func (m *MapPoolMapper) Encode(p *entity.Pool) ([]byte, error) {
	return json.Marshal(m.ToDocument(p))
}

// Decode parses a cache artifact. Any decoding failure is reported as
// entity.ErrCorruptPoolCache.
func (m *MapPoolMapper) Decode(b []byte) (*entity.Pool, error) {
	var doc dto.MapPoolDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrCorruptPoolCache, err)
	}
	// Encode always writes all five arrays.
	if doc.NM == nil || doc.HD == nil || doc.HR == nil || doc.DT == nil || doc.TB == nil {
		return nil, fmt.Errorf("%w: missing category", entity.ErrCorruptPoolCache)
	}
	return m.ToEntity(&doc), nil
}
