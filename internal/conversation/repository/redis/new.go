package redis

import (
	"assistant-srv/internal/conversation/repository"
	"assistant-srv/pkg/log"
	pkgredis "assistant-srv/pkg/redis"
)

type implRepository struct {
	redis pkgredis.IRedis
	l     log.Logger
}

// New - Factory function
func New(redis pkgredis.IRedis, l log.Logger) repository.StateRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
