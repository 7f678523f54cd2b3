package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/news-share-api/internal/database"
	"github.com/news-share-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// newsProjection selects the flat read shape: article fields, the author's
// display name (inner join, so a dangling author reference reads as
// not-found), and the like/comment id sets as ordered arrays.
const newsProjection = `
	SELECT a.id, a.title, a.description, a.banner, u.user_name,
		COALESCE((SELECT ARRAY_AGG(l.user_id::text ORDER BY l.created_at)
			FROM article_likes l WHERE l.article_id = a.id), '{}'),
		COALESCE((SELECT ARRAY_AGG(c.id::text ORDER BY c.created_at)
			FROM comments c WHERE c.article_id = a.id), '{}')
	FROM articles a
	JOIN users u ON u.id = a.author_id
`

func scanNews(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.News, error) {
	var news models.News
	err := scanner.Scan(
		&news.ID, &news.Title, &news.Description, &news.Banner, &news.UserName,
		pq.Array(&news.Likes), pq.Array(&news.Comments),
	)
	if err != nil {
		return nil, err
	}
	if news.Likes == nil {
		news.Likes = []string{}
	}
	if news.Comments == nil {
		news.Comments = []string{}
	}
	return &news, nil
}

func collectNews(rows *sql.Rows) ([]models.News, error) {
	defer rows.Close()

	results := []models.News{}
	for rows.Next() {
		news, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *news)
	}
	return results, rows.Err()
}

// Create inserts a new article with empty like and comment sets
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (id, title, description, banner, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Description, article.Banner,
		article.AuthorID, article.CreatedAt, article.UpdatedAt,
	)
	return err
}

// Update applies a partial update; nil fields keep their stored value.
// Returns false when no article matches the id.
func (r *articleRepo) Update(ctx context.Context, id string, update *models.ArticleUpdate) (bool, error) {
	query := `
		UPDATE articles
		SET title = COALESCE($2, title),
			description = COALESCE($3, description),
			banner = COALESCE($4, banner),
			updated_at = $5
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		id, update.Title, update.Description, update.Banner, time.Now(),
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// Delete removes an article; likes and comments cascade at the schema level
func (r *articleRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// GetByID retrieves the raw article row, used for ownership checks
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `
		SELECT id, title, description, banner, author_id, created_at, updated_at
		FROM articles WHERE id = $1
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID, &article.Title, &article.Description, &article.Banner,
		&article.AuthorID, &article.CreatedAt, &article.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetNewsByID retrieves one article projected with its author resolved
func (r *articleRepo) GetNewsByID(ctx context.Context, id string) (*models.News, error) {
	news, err := scanNews(r.db.QueryRowContext(ctx, newsProjection+" WHERE a.id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return news, nil
}

// ListRecent returns up to limit articles ordered newest-first, skipping offset
func (r *articleRepo) ListRecent(ctx context.Context, limit, offset int) ([]models.News, error) {
	query := newsProjection + " ORDER BY a.created_at DESC LIMIT $1 OFFSET $2"
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectNews(rows)
}

// MostRecent returns the single newest article, or nil when the store is empty
func (r *articleRepo) MostRecent(ctx context.Context) (*models.News, error) {
	query := newsProjection + " ORDER BY a.created_at DESC LIMIT 1"
	news, err := scanNews(r.db.QueryRowContext(ctx, query))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return news, nil
}

// likeEscaper neutralizes LIKE metacharacters so search text always
// matches as a literal substring
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// SearchByTitle returns articles whose title contains the given text,
// case-insensitively, newest-first. Empty text matches everything.
func (r *articleRepo) SearchByTitle(ctx context.Context, title string) ([]models.News, error) {
	query := newsProjection + " WHERE a.title ILIKE '%' || $1 || '%' ORDER BY a.created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, escapeLike(title))
	if err != nil {
		return nil, err
	}
	return collectNews(rows)
}

// ListByAuthor returns all articles by one author, newest-first
func (r *articleRepo) ListByAuthor(ctx context.Context, userID string) ([]models.News, error) {
	query := newsProjection + " WHERE a.author_id = $1 ORDER BY a.created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectNews(rows)
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// ToggleLike adds the user's like when absent and removes it when present,
// inside a single transaction. The (article_id, user_id) primary key makes
// the insert conflict-free under concurrent toggles from different users.
func (r *articleRepo) ToggleLike(ctx context.Context, articleID, userID string) (bool, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, false, err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)", articleID,
	).Scan(&exists)
	if err != nil {
		return false, false, err
	}
	if !exists {
		return false, false, nil
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO article_likes (article_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (article_id, user_id) DO NOTHING
	`, articleID, userID, time.Now())
	if err != nil {
		return false, true, err
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, true, err
	}

	liked := inserted > 0
	if !liked {
		_, err = tx.ExecContext(ctx,
			"DELETE FROM article_likes WHERE article_id = $1 AND user_id = $2",
			articleID, userID,
		)
		if err != nil {
			return false, true, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, true, err
	}
	return liked, true, nil
}
