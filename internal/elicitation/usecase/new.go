package usecase

import (
	"assistant-srv/internal/compose"
	"assistant-srv/internal/elicitation"
	"assistant-srv/internal/signal"
	"assistant-srv/pkg/listingsrv"
	"assistant-srv/pkg/log"
)

type implUseCase struct {
	listing   listingsrv.IListing
	detectors signal.Detectors
	composer  compose.Composer
	cfg       elicitation.Config
	l         log.Logger
}

// New - Factory function
func New(
	listing listingsrv.IListing,
	detectors signal.Detectors,
	composer compose.Composer,
	cfg elicitation.Config,
	l log.Logger,
) elicitation.UseCase {
	return &implUseCase{
		listing:   listing,
		detectors: detectors,
		composer:  composer,
		cfg:       cfg.WithDefaults(),
		l:         l,
	}
}
