package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/model"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// RecipeStore is the persistence boundary for the recipe catalog.
type RecipeStore interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	Count(ctx context.Context) (int64, error)
	// FindByTitle looks up a recipe by exact, case-sensitive title. Returns
	// ErrNotFound when no record matches.
	FindByTitle(ctx context.Context, title string) (*model.Recipe, error)
	FindByID(ctx context.Context, id uint) (*model.Recipe, error)
	// Page returns the slice [offset, offset+limit) in insertion order.
	Page(ctx context.Context, offset, limit int) ([]model.Recipe, error)
}

// GormRecipeStore implements RecipeStore on a GORM connection.
type GormRecipeStore struct {
	db *gorm.DB
}

// NewRecipeStore creates a new GormRecipeStore instance.
func NewRecipeStore(db *gorm.DB) *GormRecipeStore {
	return &GormRecipeStore{db: db}
}

func (s *GormRecipeStore) Create(ctx context.Context, recipe *model.Recipe) error {
	return s.db.WithContext(ctx).Create(recipe).Error
}

func (s *GormRecipeStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormRecipeStore) FindByTitle(ctx context.Context, title string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "title = ?", title).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *GormRecipeStore) FindByID(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *GormRecipeStore) Page(ctx context.Context, offset, limit int) ([]model.Recipe, error) {
	recipes := make([]model.Recipe, 0)
	err := s.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
