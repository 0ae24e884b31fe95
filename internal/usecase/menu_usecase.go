package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// MenuUsecase serves the restaurant menu.
type MenuUsecase interface {
	ListItems(ctx context.Context) []entity.MenuItem
}
