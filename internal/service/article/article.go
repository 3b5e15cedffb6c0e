package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"article-api/internal/domain/dto"
	"article-api/internal/domain/models"
	"article-api/internal/lib/logger/sl"
	"article-api/internal/lib/metrics"
	"article-api/internal/storage"
)

var (
	ErrInvalidSortField = errors.New("invalid sort field")
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Storage
type Storage interface {
	SaveArticle(ctx context.Context, art models.Article) (models.Article, error)
	Articles(ctx context.Context, p models.PageRequest) (models.Page[models.Article], error)
	ArticlesPublishedBetween(ctx context.Context, start, end time.Time) ([]models.Article, error)
}

// StatisticsCache keeps computed statistics per reference day.
//
//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=StatisticsCache
type StatisticsCache interface {
	Statistics(ctx context.Context, day string) (dto.Statistics, bool, error)
	SetStatistics(ctx context.Context, day string, stats dto.Statistics) error
	InvalidateStatistics(ctx context.Context, day string) error
}

type Service struct {
	log     *slog.Logger
	storage Storage
	cache   StatisticsCache
	loc     *time.Location
	now     func() time.Time
}

type Option func(*Service)

// WithLocation sets the reference time zone of the statistics window. UTC by default.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		s.loc = loc
	}
}

func WithCache(cache StatisticsCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(log *slog.Logger, storage Storage, opts ...Option) *Service {
	s := &Service{
		log:     log,
		storage: storage,
		loc:     time.UTC,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Create(ctx context.Context, art dto.Article) (dto.Article, error) {
	const op = "service.article.Create"

	log := s.log.With(slog.String("op", op))

	rec := art.ToModel()
	rec.ID = 0

	// Send to storage layer
	saved, err := s.storage.SaveArticle(ctx, rec)
	if err != nil {
		log.Error("failed to save article", sl.Error(err))
		return dto.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordArticleCreated()
	log.Debug("article created", slog.Int64("id", saved.ID))

	if s.cache != nil {
		if err := s.cache.InvalidateStatistics(ctx, s.today()); err != nil {
			log.Warn("failed to invalidate statistics cache", sl.Error(err))
		}
	}

	return dto.FromModel(saved), nil
}

// List returns one page of articles. nil or out of range parameters fall back
// to the defaults described in Pageable.
func (s *Service) List(
	ctx context.Context,
	pageNumber, pageSize *int,
	sortField *string,
	ascending *bool,
) (models.Page[dto.Article], error) {
	const op = "service.article.List"

	log := s.log.With(slog.String("op", op))

	p := Pageable(pageNumber, pageSize, sortField, ascending)

	// Send to storage layer
	page, err := s.storage.Articles(ctx, p)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidSortField) {
			log.Info("invalid sort field", slog.String("sort_field", p.SortField))
			return models.Page[dto.Article]{}, fmt.Errorf("%s: %w", op, ErrInvalidSortField)
		}
		log.Error("failed to get articles", sl.Error(err))
		return models.Page[dto.Article]{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.MapPage(page, dto.FromModel), nil
}

func (s *Service) Statistics(ctx context.Context) (dto.Statistics, error) {
	const op = "service.article.Statistics"

	log := s.log.With(slog.String("op", op))

	now := s.now().In(s.loc)
	day := now.Format(time.DateOnly)

	if s.cache != nil {
		stats, ok, err := s.cache.Statistics(ctx, day)
		switch {
		case err != nil:
			metrics.RecordStatisticsCache(metrics.CacheError)
			log.Warn("failed to read statistics cache", sl.Error(err))
		case ok:
			metrics.RecordStatisticsCache(metrics.CacheHit)
			return stats, nil
		default:
			metrics.RecordStatisticsCache(metrics.CacheMiss)
		}
	}

	start := windowStart(now)

	// Send to storage layer
	arts, err := s.storage.ArticlesPublishedBetween(ctx, start, now)
	if err != nil {
		log.Error("failed to get articles for statistics", sl.Error(err))
		return dto.Statistics{}, fmt.Errorf("%s: %w", op, err)
	}

	stats := Aggregate(now, arts)

	if s.cache != nil {
		if err := s.cache.SetStatistics(ctx, day, stats); err != nil {
			log.Warn("failed to write statistics cache", sl.Error(err))
		}
	}

	return stats, nil
}

func (s *Service) today() string {
	return s.now().In(s.loc).Format(time.DateOnly)
}
