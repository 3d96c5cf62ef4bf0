package usecase

import (
	"assistant-srv/internal/compose"
	"assistant-srv/internal/resolution"
	"assistant-srv/pkg/gemini"
	"assistant-srv/pkg/log"
	"assistant-srv/pkg/searchsrv"
)

type implUseCase struct {
	search   searchsrv.ISearch
	gemini   gemini.IGemini
	composer compose.Composer
	cfg      resolution.Config
	l        log.Logger
}

// New - Factory function
func New(
	search searchsrv.ISearch,
	gemini gemini.IGemini,
	composer compose.Composer,
	cfg resolution.Config,
	l log.Logger,
) resolution.UseCase {
	return &implUseCase{
		search:   search,
		gemini:   gemini,
		composer: composer,
		cfg:      cfg.WithDefaults(),
		l:        l,
	}
}
