package domain

import (
	"errors"
	"time"
)

var (
	// ErrDuplicateFile is returned when a file_id is already indexed.
	ErrDuplicateFile = errors.New("file already indexed")

	// ErrFileNotFound is returned when no record exists for a file_id.
	ErrFileNotFound = errors.New("file not found")

	// ErrMalformedToken is returned when callback data does not match any
	// recognized token shape.
	ErrMalformedToken = errors.New("malformed callback token")
)

// FileRecord is one indexed media file. Records are insert-only: there is no
// update or delete path, so a row never changes after Create.
type FileRecord struct {
	ID        int64     `json:"-" db:"id"`
	FileID    string    `json:"file_id" db:"file_id"`
	FileName  string    `json:"file_name" db:"file_name"`
	Caption   string    `json:"caption" db:"caption"`
	MessageID int64     `json:"message_id" db:"message_id"`
	ChatID    int64     `json:"chat_id" db:"chat_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FileMatch is the slice of a record a search result carries.
type FileMatch struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
	Caption  string `json:"caption"`
}

// SearchResult is one page of matches plus the full match count. Total is
// counted independently of the page, so it can exceed len(Matches).
type SearchResult struct {
	Matches []FileMatch `json:"matches"`
	Total   int64       `json:"total"`
}

func (r *FileRecord) Match() FileMatch {
	return FileMatch{
		FileID:   r.FileID,
		FileName: r.FileName,
		Caption:  r.Caption,
	}
}
