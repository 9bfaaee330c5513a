package services

import (
	"context"
	"fmt"

	"restaurant-pos/apperrors"
	"restaurant-pos/helpers"
	"restaurant-pos/logger"
	"restaurant-pos/models"
	"restaurant-pos/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuService is plain catalog CRUD. The one cross-cutting rule — price
// edits never touch existing orders — is enforced by the order engine's
// price snapshot, not here.
type MenuService struct {
	menu repository.MenuRepository
	log  *logger.Logger
}

func NewMenuService(menu repository.MenuRepository, log *logger.Logger) *MenuService {
	return &MenuService{menu: menu, log: log}
}

func (s *MenuService) Create(ctx context.Context, actor *models.User, item models.MenuItem) (*models.MenuItem, error) {
	if actor == nil || !helpers.Authorize(actor.User_role, helpers.OpMenuWrite) {
		return nil, fmt.Errorf("create menu item: %w", apperrors.ErrForbidden)
	}
	if item.Name == nil || item.Price == nil {
		return nil, fmt.Errorf("menu item needs a name and a price: %w", apperrors.ErrValidation)
	}
	if *item.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative: %w", apperrors.ErrValidation)
	}
	if !item.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q: %w", item.Category, apperrors.ErrValidation)
	}

	item.ID = primitive.NewObjectID()
	item.Menu_item_id = item.ID.Hex()
	if item.Is_available == nil {
		available := true
		item.Is_available = &available
	}
	item.Created_at = now()
	item.Updated_at = now()

	if err := s.menu.Create(ctx, &item); err != nil {
		return nil, err
	}
	s.log.Info("menu_item_created", fmt.Sprintf("menu item %s (%s) created", *item.Name, item.Menu_item_id))
	return &item, nil
}

type MenuItemUpdate struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Category     *string  `json:"category"`
	Image_url    *string  `json:"image_url"`
	Is_available *bool    `json:"is_available"`
}

func (s *MenuService) Update(ctx context.Context, actor *models.User, itemId string, patch MenuItemUpdate) (*models.MenuItem, error) {
	if actor == nil || !helpers.Authorize(actor.User_role, helpers.OpMenuWrite) {
		return nil, fmt.Errorf("update menu item: %w", apperrors.ErrForbidden)
	}

	item, err := s.menu.GetByID(ctx, itemId)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		item.Name = patch.Name
	}
	if patch.Description != nil {
		item.Description = patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, fmt.Errorf("price cannot be negative: %w", apperrors.ErrValidation)
		}
		item.Price = patch.Price
	}
	if patch.Category != nil {
		category := models.Category(*patch.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("unknown category %q: %w", *patch.Category, apperrors.ErrValidation)
		}
		item.Category = category
	}
	if patch.Image_url != nil {
		item.Image_url = patch.Image_url
	}
	if patch.Is_available != nil {
		item.Is_available = patch.Is_available
	}
	item.Updated_at = now()

	if err := s.menu.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, actor *models.User, itemId string) error {
	if actor == nil || !helpers.Authorize(actor.User_role, helpers.OpMenuWrite) {
		return fmt.Errorf("delete menu item: %w", apperrors.ErrForbidden)
	}
	return s.menu.Delete(ctx, itemId)
}

func (s *MenuService) Get(ctx context.Context, itemId string) (*models.MenuItem, error) {
	return s.menu.GetByID(ctx, itemId)
}

func (s *MenuService) List(ctx context.Context, category *models.Category) ([]models.MenuItem, error) {
	if category != nil && !category.Valid() {
		return nil, fmt.Errorf("unknown category %q: %w", *category, apperrors.ErrValidation)
	}
	return s.menu.List(ctx, repository.MenuFilter{Category: category})
}
