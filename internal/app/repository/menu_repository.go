package repository

import (
	"github.com/mrcow/mrcow-backend/internal/app/model"
)

// MenuRepository serves the menu catalog. Like the location directory this
// is compiled-in reference data; the cart core reads it and never owns it.
type MenuRepository interface {
	FindAll() []model.MenuItem
	FindByID(id string) (model.MenuItem, bool)
	FindByCategory(category model.MenuCategory) []model.MenuItem
	FindPopular() []model.MenuItem
}

type menuRepository struct {
	items []model.MenuItem
}

func NewMenuRepository() MenuRepository {
	return &menuRepository{items: menuItems}
}

func (r *menuRepository) FindAll() []model.MenuItem {
	result := make([]model.MenuItem, len(r.items))
	copy(result, r.items)
	return result
}

func (r *menuRepository) FindByID(id string) (model.MenuItem, bool) {
	for _, item := range r.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.MenuItem{}, false
}

func (r *menuRepository) FindByCategory(category model.MenuCategory) []model.MenuItem {
	var result []model.MenuItem
	for _, item := range r.items {
		if item.Category == category {
			result = append(result, item)
		}
	}
	return result
}

func (r *menuRepository) FindPopular() []model.MenuItem {
	var result []model.MenuItem
	for _, item := range r.items {
		if item.IsPopular {
			result = append(result, item)
		}
	}
	return result
}
