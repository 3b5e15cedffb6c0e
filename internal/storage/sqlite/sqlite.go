package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"article-api/internal/domain/models"
	"article-api/internal/storage"
	"article-api/internal/storage/migrations"

	_ "github.com/mattn/go-sqlite3"
)

// Dates are stored as fixed-width UTC text so that string comparison in SQL
// matches chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Storage struct {
	db *sql.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrations.SQLite(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := migrations.Up(m); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) SaveArticle(ctx context.Context, art models.Article) (models.Article, error) {
	const op = "storage.sqlite.SaveArticle"

	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO articles (title, author, content, publishing_date) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, art.Title, art.Author, art.Content, formatTime(art.PublishingDate))
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: failed to get last insert id: %w", op, err)
	}

	art.ID = id

	return art, nil
}

func (s *Storage) Articles(ctx context.Context, p models.PageRequest) (models.Page[models.Article], error) {
	const op = "storage.sqlite.Articles"

	orderBy, err := storage.OrderBy(p.SortField, p.Ascending)
	if err != nil {
		return models.Page[models.Article]{}, fmt.Errorf("%s: %w", op, err)
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&total); err != nil {
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

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, author, content, publishing_date FROM articles
		ORDER BY `+orderBy+` LIMIT ? OFFSET ?`, p.PageSize, offset)
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

// ArticlesPublishedBetween returns articles with start <= publishing date <= end,
// oldest first.
func (s *Storage) ArticlesPublishedBetween(ctx context.Context, start, end time.Time) ([]models.Article, error) {
	const op = "storage.sqlite.ArticlesPublishedBetween"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, author, content, publishing_date FROM articles
		WHERE publishing_date BETWEEN ? AND ?
		ORDER BY publishing_date ASC, id ASC`, formatTime(start), formatTime(end))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	arts, err := scanArticles(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return arts, nil
}

func scanArticles(rows *sql.Rows) ([]models.Article, error) {
	defer rows.Close()

	arts := make([]models.Article, 0)
	for rows.Next() {
		var (
			art  models.Article
			date string
		)
		if err := rows.Scan(&art.ID, &art.Title, &art.Author, &art.Content, &date); err != nil {
			return nil, err
		}

		t, err := time.Parse(timeLayout, date)
		if err != nil {
			return nil, fmt.Errorf("invalid publishing date %q: %w", date, err)
		}
		art.PublishingDate = t

		arts = append(arts, art)
	}

	return arts, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
