// FILE: internal/service/mappool_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/pkg/logger"
	"ocbs-be/internal/repository/contract"
	"ocbs-be/pkg/difficulty"
	"ocbs-be/pkg/events"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var mapPoolTracer = otel.Tracer("ocbs-be/mappool")

type IMapPoolService interface {
	// GetPool returns the stage's resolved pool, from cache when present.
	GetPool(ctx context.Context, stage entity.Stage) (*entity.Pool, error)
	// GetPoolArtifact is GetPool rendered as the cache artifact. A cached
	// artifact is returned exactly as stored.
	GetPoolArtifact(ctx context.Context, stage entity.Stage) ([]byte, error)
	Stages() []entity.Stage
}

// EventPublisher is implemented by *nats.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type MapPoolServiceOptions struct {
	ResolveTimeout     time.Duration
	ResolveConcurrency int
}

type mapPoolService struct {
	cache          *PoolCache
	pickLists      contract.PickListRepository
	resolver       IBeatmapResolver
	logger         logger.ILogger
	eventPublisher EventPublisher
	opts           MapPoolServiceOptions
}

func NewMapPoolService(
	store contract.PoolCacheRepository,
	pickLists contract.PickListRepository,
	resolver IBeatmapResolver,
	log logger.ILogger,
	eventPublisher EventPublisher,
	opts MapPoolServiceOptions,
) IMapPoolService {
	if opts.ResolveTimeout <= 0 {
		opts.ResolveTimeout = 10 * time.Second
	}
	if opts.ResolveConcurrency <= 0 {
		opts.ResolveConcurrency = 1
	}
	return &mapPoolService{
		cache:          NewPoolCache(store, log),
		pickLists:      pickLists,
		resolver:       resolver,
		logger:         log,
		eventPublisher: eventPublisher,
		opts:           opts,
	}
}

// BeatmapLink is the public page of a beatmap difficulty.
func BeatmapLink(id int64) string {
	return fmt.Sprintf("https://osu.ppy.sh/b/%d", id)
}

func (s *mapPoolService) Stages() []entity.Stage {
	return entity.AllStages()
}

func (s *mapPoolService) GetPool(ctx context.Context, stage entity.Stage) (*entity.Pool, error) {
	cached, err := s.getCached(ctx, stage)
	if err != nil {
		return nil, err
	}
	return cached.Pool, nil
}

func (s *mapPoolService) GetPoolArtifact(ctx context.Context, stage entity.Stage) ([]byte, error) {
	cached, err := s.getCached(ctx, stage)
	if err != nil {
		return nil, err
	}
	return cached.Artifact, nil
}

func (s *mapPoolService) getCached(ctx context.Context, stage entity.Stage) (*CachedPool, error) {
	if _, err := entity.ParseStage(int(stage)); err != nil {
		return nil, err
	}

	var elapsed time.Duration
	cached, err := s.cache.GetOrCompute(ctx, stage, func(ctx context.Context) (*entity.Pool, error) {
		start := time.Now()
		pool, err := s.resolvePool(ctx, stage)
		elapsed = time.Since(start)
		return pool, err
	})
	if err != nil {
		return nil, err
	}

	// Announced only once the pool is persisted.
	if cached.Fresh {
		s.publishResolved(ctx, stage, cached.Pool, elapsed)
	}
	return cached, nil
}

func (s *mapPoolService) publishResolved(ctx context.Context, stage entity.Stage, pool *entity.Pool, elapsed time.Duration) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: events.PoolResolved,
		Data: map[string]interface{}{
			"stage":       stage.Slug(),
			"picks":       pool.Count(),
			"duration_ms": elapsed.Milliseconds(),
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("MapPoolService", "Failed to publish POOL_RESOLVED event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// resolvePool resolves every pick of the stage. The first failing pick
// cancels the others and fails the whole pool.
func (s *mapPoolService) resolvePool(ctx context.Context, stage entity.Stage) (*entity.Pool, error) {
	ctx, span := mapPoolTracer.Start(ctx, "mappool.resolve",
		trace.WithAttributes(attribute.String("stage", stage.Slug())))
	defer span.End()

	start := time.Now()

	picks, err := s.pickLists.FindByStage(ctx, stage)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pick list")
		return nil, err
	}
	span.SetAttributes(attribute.Int("picks", len(picks)))

	resolved := make([]entity.AdjustedPick, len(picks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.ResolveConcurrency)
	for i, pick := range picks {
		g.Go(func() error {
			adjusted, err := s.resolvePick(gctx, pick)
			if err != nil {
				return err
			}
			resolved[i] = *adjusted
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolve")
		s.logger.Error("MapPoolService", "Pool resolution failed", map[string]interface{}{
			"stage": stage.Slug(),
			"error": err,
		})
		return nil, err
	}

	pool := entity.NewPool()
	for _, adjusted := range resolved {
		if err := pool.Append(adjusted); err != nil {
			return nil, err
		}
	}

	s.logger.Info("MapPoolService", "Pool resolved", map[string]interface{}{
		"stage":       stage.Slug(),
		"picks":       pool.Count(),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return pool, nil
}

func (s *mapPoolService) resolvePick(ctx context.Context, pick entity.Pick) (*entity.AdjustedPick, error) {
	mod := pick.Category.Modifier()

	beatmapCtx, cancel := context.WithTimeout(ctx, s.opts.ResolveTimeout)
	raw, err := s.resolver.ResolveBeatmap(beatmapCtx, pick.BeatmapId)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: %s beatmap %d: %w", entity.ErrUpstream, pick.Label(), pick.BeatmapId, err)
	}

	attrCtx, cancel := context.WithTimeout(ctx, s.opts.ResolveTimeout)
	attrs, err := s.resolver.ResolveAttributes(attrCtx, pick.BeatmapId, pick.Category.AttributeModifier())
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: %s attributes %d: %w", entity.ErrUpstream, pick.Label(), pick.BeatmapId, err)
	}

	return &entity.AdjustedPick{
		Pick:       pick,
		MapId:      pick.BeatmapId,
		CoverURL:   raw.CoverURL,
		Artist:     raw.Artist,
		Title:      raw.Title,
		Difficulty: raw.Version,
		Creator:    raw.Creator,
		Length:     difficulty.DisplayLength(raw.TotalLength, mod),
		Link:       BeatmapLink(pick.BeatmapId),
		Attributes: difficulty.Adjust(raw.CS, raw.HP, raw.AR, raw.OD, raw.BPM, mod).
			WithStarRating(attrs.StarRating),
	}, nil
}
