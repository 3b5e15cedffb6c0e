package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"article-api/internal/domain/models"
	"article-api/internal/storage"
	"article-api/internal/storage/migrations"
)

// Pool is the subset of *pgxpool.Pool used by Storage.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type Storage struct {
	pool Pool
}

// New connects to dsn, applies pending migrations and returns the store.
func New(ctx context.Context, dsn string, maxConns int32) (*Storage, error) {
	const op = "storage.postgres.New"

	m, err := migrations.Postgres(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = migrations.Up(m)
	m.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: ping failed: %w", op, err)
	}

	return NewWithPool(pool), nil
}

func NewWithPool(pool Pool) *Storage {
	return &Storage{pool: pool}
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) SaveArticle(ctx context.Context, art models.Article) (models.Article, error) {
	const op = "storage.postgres.SaveArticle"

	err := s.pool.QueryRow(ctx, `
		INSERT INTO articles (title, author, content, publishing_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		art.Title, art.Author, art.Content, art.PublishingDate,
	).Scan(&art.ID)
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	return art, nil
}

func (s *Storage) Articles(ctx context.Context, p models.PageRequest) (models.Page[models.Article], error) {
	const op = "storage.postgres.Articles"

	orderBy, err := storage.OrderBy(p.SortField, p.Ascending)
	if err != nil {
		return models.Page[models.Article]{}, fmt.Errorf("%s: %w", op, err)
	}

	var total int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&total); err != nil {
		return models.Page[models.Article]{}, fmt.Errorf("%s: %w", op, err)
	}

	offset := p.Offset()
	if offset >= total {
		return models.Page[models.Article]{
			Content:       []models.Article{},
			TotalElements: total,
			PageNumber:    p.PageNumber,
			PageSize:      p.PageSize,
		}, nil
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, title, author, content, publishing_date FROM articles
		ORDER BY `+orderBy+` LIMIT $1 OFFSET $2`, p.PageSize, offset)
	if err != nil {
		return models.Page[models.Article]{}, fmt.Errorf("%s: %w", op, err)
	}

	arts, err := scanArticles(rows)
	if err != nil {
		return models.Page[models.Article]{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.Page[models.Article]{
		Content:       arts,
		TotalElements: total,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
	}, nil
}

func (s *Storage) ArticlesPublishedBetween(ctx context.Context, start, end time.Time) ([]models.Article, error) {
	const op = "storage.postgres.ArticlesPublishedBetween"

	rows, err := s.pool.Query(ctx, `
		SELECT id, title, author, content, publishing_date FROM articles
		WHERE publishing_date BETWEEN $1 AND $2
		ORDER BY publishing_date ASC, id ASC`, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	arts, err := scanArticles(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return arts, nil
}

func scanArticles(rows pgx.Rows) ([]models.Article, error) {
	defer rows.Close()

	arts := make([]models.Article, 0)
	for rows.Next() {
		var art models.Article
		if err := rows.Scan(&art.ID, &art.Title, &art.Author, &art.Content, &art.PublishingDate); err != nil {
			return nil, err
		}
		arts = append(arts, art)
	}

	return arts, rows.Err()
}
