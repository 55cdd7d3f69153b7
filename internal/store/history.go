package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/model"
)

// HistoryStore keeps per-client cooking history, referencing recipes by id.
type HistoryStore interface {
	Add(ctx context.Context, clientID string, recipeID uint) error
	Remove(ctx context.Context, clientID string, recipeID uint) error
	Contains(ctx context.Context, clientID string, recipeID uint) (bool, error)
	List(ctx context.Context, clientID string) ([]model.Recipe, error)
}

// GormHistoryStore implements HistoryStore on a GORM connection.
type GormHistoryStore struct {
	db *gorm.DB
}

// NewHistoryStore creates a new GormHistoryStore instance.
func NewHistoryStore(db *gorm.DB) *GormHistoryStore {
	return &GormHistoryStore{db: db}
}

func (s *GormHistoryStore) Add(ctx context.Context, clientID string, recipeID uint) error {
	exists, err := s.Contains(ctx, clientID, recipeID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.db.WithContext(ctx).Create(&model.HistoryEntry{
		ClientID: clientID,
		RecipeID: recipeID,
	}).Error
}

func (s *GormHistoryStore) Remove(ctx context.Context, clientID string, recipeID uint) error {
	return s.db.WithContext(ctx).
		Where("client_id = ? AND recipe_id = ?", clientID, recipeID).
		Delete(&model.HistoryEntry{}).Error
}

func (s *GormHistoryStore) Contains(ctx context.Context, clientID string, recipeID uint) (bool, error) {
	var entry model.HistoryEntry
	err := s.db.WithContext(ctx).
		First(&entry, "client_id = ? AND recipe_id = ?", clientID, recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormHistoryStore) List(ctx context.Context, clientID string) ([]model.Recipe, error) {
	recipes := make([]model.Recipe, 0)
	err := s.db.WithContext(ctx).
		Joins("JOIN cooking_history ON cooking_history.recipe_id = recipes.id").
		Where("cooking_history.client_id = ?", clientID).
		Order("cooking_history.id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
