package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"filebot/internal/domain"
)

type FileRepository interface {
	Create(ctx context.Context, file *domain.FileRecord) error
	Exists(ctx context.Context, fileID string) (bool, error)
	GetByFileID(ctx context.Context, fileID string) (*domain.FileRecord, error)
	SearchByName(ctx context.Context, pattern string, limit int) ([]domain.FileRecord, error)
	CountByName(ctx context.Context, pattern string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type fileRepository struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) FileRepository {
	return &fileRepository{db: db}
}

// Create inserts a new record. The UNIQUE constraint on file_id is what
// actually enforces dedup; a violation is surfaced as ErrDuplicateFile so
// two concurrent inserts of the same file cannot both succeed.
func (r *fileRepository) Create(ctx context.Context, file *domain.FileRecord) error {
	query := `
		INSERT INTO files (file_id, file_name, caption, message_id, chat_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		file.FileID, file.FileName, file.Caption, file.MessageID, file.ChatID,
	).Scan(&file.ID, &file.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateFile
	}
	return err
}

func (r *fileRepository) Exists(ctx context.Context, fileID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM files WHERE file_id = $1)`
	err := r.db.GetContext(ctx, &exists, query, fileID)
	return exists, err
}

func (r *fileRepository) GetByFileID(ctx context.Context, fileID string) (*domain.FileRecord, error) {
	var file domain.FileRecord
	query := `SELECT * FROM files WHERE file_id = $1`
	err := r.db.GetContext(ctx, &file, query, fileID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// SearchByName matches pattern as a case-insensitive substring of file_name.
// Order by id keeps results deterministic for an unchanged table; no
// relevance ranking is implied.
func (r *fileRepository) SearchByName(ctx context.Context, pattern string, limit int) ([]domain.FileRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT * FROM files
		WHERE file_name ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT $2`

	var files []domain.FileRecord
	err := r.db.SelectContext(ctx, &files, query, escapeLike(pattern), limit)
	return files, err
}

func (r *fileRepository) CountByName(ctx context.Context, pattern string) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM files WHERE file_name ILIKE '%' || $1 || '%'`
	err := r.db.GetContext(ctx, &total, query, escapeLike(pattern))
	return total, err
}

// escapeLike neutralizes LIKE metacharacters so the query is matched as a
// literal substring.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *fileRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM files`)
	return total, err
}
