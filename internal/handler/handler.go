package handler

import (
	"filebot/internal/repository"
	"filebot/internal/service"
)

type Handlers struct {
	Auth *AuthHandler
	File *FileHandler
}

func NewHandlers(services *service.Services, repos *repository.Repositories) *Handlers {
	return &Handlers{
		Auth: NewAuthHandler(services.Auth),
		File: NewFileHandler(services.Search, repos.File),
	}
}
