package service

import (
	"github.com/rkhasanov/photoshare/internal/config"
	"github.com/rkhasanov/photoshare/internal/logger"
	"github.com/rkhasanov/photoshare/internal/store"
)

type Services struct {
	AuthService  AuthService
	PhotoService PhotoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg, logger),
		PhotoService: NewPhotoService(storages.PhotoRepository, logger),
	}
}
