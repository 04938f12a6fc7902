package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	File FileRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		File: NewFileRepository(db),
	}
}
