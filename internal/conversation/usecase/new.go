package usecase

import (
	"assistant-srv/internal/compose"
	"assistant-srv/internal/conversation"
	"assistant-srv/internal/conversation/repository"
	"assistant-srv/internal/elicitation"
	"assistant-srv/internal/resolution"
	"assistant-srv/pkg/intentsrv"
	"assistant-srv/pkg/kafka"
	"assistant-srv/pkg/log"
)

type implUseCase struct {
	stateRepo     repository.StateRepository
	auditRepo     repository.AuditRepository
	intent        intentsrv.IIntent
	resolutionUC  resolution.UseCase
	elicitationUC elicitation.UseCase
	composer      compose.Composer
	producer      kafka.IProducer
	l             log.Logger
}

// New - Factory function
func New(
	stateRepo repository.StateRepository,
	auditRepo repository.AuditRepository,
	intent intentsrv.IIntent,
	resolutionUC resolution.UseCase,
	elicitationUC elicitation.UseCase,
	composer compose.Composer,
	producer kafka.IProducer,
	l log.Logger,
) conversation.UseCase {
	return &implUseCase{
		stateRepo:     stateRepo,
		auditRepo:     auditRepo,
		intent:        intent,
		resolutionUC:  resolutionUC,
		elicitationUC: elicitationUC,
		composer:      composer,
		producer:      producer,
		l:             l,
	}
}
