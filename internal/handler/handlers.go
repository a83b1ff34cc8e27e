package handler

import (
	"github.com/rkhasanov/photoshare/internal/config"
	"github.com/rkhasanov/photoshare/internal/handler/http"
	"github.com/rkhasanov/photoshare/internal/logger"
	"github.com/rkhasanov/photoshare/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
