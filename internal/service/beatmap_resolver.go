package service

import (
	"context"

	"ocbs-be/internal/entity"
	"ocbs-be/pkg/difficulty"
	"ocbs-be/pkg/osu"
)

// IBeatmapResolver looks up beatmap metadata and modifier-aware attributes.
type IBeatmapResolver interface {
	ResolveBeatmap(ctx context.Context, id int64) (*entity.RawBeatmap, error)
	ResolveAttributes(ctx context.Context, id int64, mod difficulty.Modifier) (*entity.BeatmapAttributes, error)
}

type osuBeatmapResolver struct {
	client *osu.Client
}

func NewOsuBeatmapResolver(client *osu.Client) IBeatmapResolver {
	return &osuBeatmapResolver{client: client}
}

func (r *osuBeatmapResolver) ResolveBeatmap(ctx context.Context, id int64) (*entity.RawBeatmap, error) {
	b, err := r.client.Beatmap(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.RawBeatmap{
		Id:           b.ID,
		BeatmapsetId: b.BeatmapsetID,
		Title:        b.Beatmapset.Title,
		Artist:       b.Beatmapset.Artist,
		Version:      b.Version,
		Creator:      b.Beatmapset.Creator,
		CoverURL:     b.Beatmapset.Covers.Cover,
		CS:           b.CS,
		HP:           b.Drain,
		AR:           b.AR,
		OD:           b.Accuracy,
		BPM:          b.BPM,
		TotalLength:  b.TotalLength,
	}, nil
}

func (r *osuBeatmapResolver) ResolveAttributes(ctx context.Context, id int64, mod difficulty.Modifier) (*entity.BeatmapAttributes, error) {
	attrs, err := r.client.BeatmapAttributes(ctx, id, mod.Acronym())
	if err != nil {
		return nil, err
	}
	return &entity.BeatmapAttributes{
		StarRating: attrs.StarRating,
		MaxCombo:   attrs.MaxCombo,
	}, nil
}
