package impl

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/usecase"
)

var menuItems = []entity.MenuItem{
	{Name: "Бургер", Price: 200},
	{Name: "Пицца", Price: 500},
	{Name: "Салат", Price: 300},
}

type menuService struct{}

// NewMenuService is the constructor for menuService.
func NewMenuService() usecase.MenuUsecase {
	return &menuService{}
}

// ListItems returns the fixed menu. Callers get their own copy.
func (srv *menuService) ListItems(_ context.Context) []entity.MenuItem {
	items := make([]entity.MenuItem, len(menuItems))
	copy(items, menuItems)

	return items
}
