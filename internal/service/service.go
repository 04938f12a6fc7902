package service

import (
	"github.com/redis/go-redis/v9"

	"filebot/internal/config"
	"filebot/internal/repository"
	"filebot/internal/service/alert"
	"filebot/internal/service/auth"
	"filebot/internal/service/indexer"
	"filebot/internal/service/resolver"
	"filebot/internal/service/search"
)

type Services struct {
	Indexer  indexer.Service
	Search   search.Service
	Resolver resolver.Service
	Alert    alert.Service
	Auth     auth.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, source indexer.Source, deliverer resolver.Deliverer, cfg *config.Config) *Services {
	return &Services{
		Indexer:  indexer.NewService(repos.File, source, cfg.ChannelID),
		Search:   search.NewService(repos.File, redis),
		Resolver: resolver.NewService(repos.File, deliverer),
		Alert:    alert.NewService(cfg),
		Auth:     auth.NewService(cfg),
	}
}
