package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"finsearch/internal/model"
)

// ArticleRepository is the postgres archive of fetched articles waiting to be
// enriched and pushed into the search index.
type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// SaveWithSymbols stores the article and its ticker symbols in one
// transaction. Returns false without error when the URL was already archived.
func (r *ArticleRepository) SaveWithSymbols(article *model.ArchivedArticle, symbols []string) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(`
		INSERT INTO archived_article(headline, detail, url, source, publisher, published_at, external_id, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, article.Headline, article.Detail, article.URL, article.Source, article.Publisher,
		article.PublishedAt, article.ExternalID, model.StatusPending).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	article.ID = id

	if len(symbols) > 0 {
		_, err = tx.Exec(`
			INSERT INTO article_symbol(article_id, symbol)
			SELECT $1, unnest($2::text[])
		`, id, pq.Array(symbols))
		if err != nil {
			return false, err
		}
	}

	return true, tx.Commit()
}

func (r *ArticleRepository) GetByID(id int64) (*model.ArchivedArticle, error) {
	var a model.ArchivedArticle
	err := r.db.QueryRow(`
		SELECT id, headline, detail, url, source, publisher, published_at, fetched_at, external_id, status
		FROM archived_article
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Headline, &a.Detail, &a.URL, &a.Source, &a.Publisher,
		&a.PublishedAt, &a.FetchedAt, &a.ExternalID, &a.Status)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *ArticleRepository) GetPending(limit int) ([]model.ArchivedArticle, error) {
	rows, err := r.db.Query(`
		SELECT id, headline, detail, url, source, publisher, published_at, fetched_at, external_id, status
		FROM archived_article
		WHERE status = $1
		ORDER BY fetched_at ASC
		LIMIT $2
	`, model.StatusPending, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.ArchivedArticle
	for rows.Next() {
		var a model.ArchivedArticle
		err := rows.Scan(&a.ID, &a.Headline, &a.Detail, &a.URL, &a.Source, &a.Publisher,
			&a.PublishedAt, &a.FetchedAt, &a.ExternalID, &a.Status)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(`
		UPDATE archived_article SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

func (r *ArticleRepository) GetSymbols(articleID int64) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT symbol FROM article_symbol
		WHERE article_id = $1
	`, articleID)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, err
		}
		symbols = append(symbols, symbol)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return symbols, nil
}

func (r *ArticleRepository) SaveError(articleID int64, errMsg string, errType string) error {
	_, err := r.db.Exec(`
		INSERT INTO indexing_error(article_id, error_message, error_type)
		VALUES($1, $2, $3)
	`, articleID, errMsg, errType)

	return err
}

func (r *ArticleRepository) GetErrorCount(id int64) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM indexing_error
		WHERE article_id = $1
	`, id).Scan(&count)

	return count, err
}
