package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/model"
)

// FavoritesStore keeps per-client saved recipes. The original application held
// these in browser local storage; an explicit repository keeps the core free
// of ambient state.
type FavoritesStore interface {
	Add(ctx context.Context, clientID string, recipeID uint) error
	Remove(ctx context.Context, clientID string, recipeID uint) error
	Contains(ctx context.Context, clientID string, recipeID uint) (bool, error)
	List(ctx context.Context, clientID string) ([]model.Recipe, error)
}

// GormFavoritesStore implements FavoritesStore on a GORM connection.
type GormFavoritesStore struct {
	db *gorm.DB
}

// NewFavoritesStore creates a new GormFavoritesStore instance.
func NewFavoritesStore(db *gorm.DB) *GormFavoritesStore {
	return &GormFavoritesStore{db: db}
}

func (s *GormFavoritesStore) Add(ctx context.Context, clientID string, recipeID uint) error {
	// Adding twice is a no-op, matching the toggle semantics of the client.
	exists, err := s.Contains(ctx, clientID, recipeID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.db.WithContext(ctx).Create(&model.Favorite{
		ClientID: clientID,
		RecipeID: recipeID,
	}).Error
}

func (s *GormFavoritesStore) Remove(ctx context.Context, clientID string, recipeID uint) error {
	return s.db.WithContext(ctx).
		Where("client_id = ? AND recipe_id = ?", clientID, recipeID).
		Delete(&model.Favorite{}).Error
}

func (s *GormFavoritesStore) Contains(ctx context.Context, clientID string, recipeID uint) (bool, error) {
	var fav model.Favorite
	err := s.db.WithContext(ctx).
		First(&fav, "client_id = ? AND recipe_id = ?", clientID, recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormFavoritesStore) List(ctx context.Context, clientID string) ([]model.Recipe, error) {
	recipes := make([]model.Recipe, 0)
	err := s.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.client_id = ?", clientID).
		Order("favorites.id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
