package app

import (
	"fmt"

	"github.com/Freeeeeet/schedule_cli/internal/repository"
	"go.uber.org/zap"
)

// Bootstrap подготавливает файловое хранилище календаря
type Bootstrap struct {
	repo   *repository.CalendarRepository
	logger *zap.Logger
}

// NewBootstrap создаёт новый bootstrap поверх репозитория
func NewBootstrap(repo *repository.CalendarRepository, logger *zap.Logger) *Bootstrap {
	return &Bootstrap{
		repo:   repo,
		logger: logger,
	}
}

// Run создаёт пустой документ календаря.
// Существующее хранилище не трогается: пересоздание запрещено.
func (b *Bootstrap) Run() error {
	if err := b.repo.Create(); err != nil {
		return fmt.Errorf("create schedule file: %w", err)
	}

	b.logger.Info("Schedule file created",
		zap.String("path", b.repo.Path()),
	)

	return nil
}
