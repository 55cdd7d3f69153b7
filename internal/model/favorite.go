package model

import "time"

// Favorite marks a recipe saved by an anonymous client. The client key is a
// browser-generated identifier, so favorites survive without user accounts.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ClientID  string    `gorm:"size:64;not null;index:idx_favorites_client_recipe,unique" json:"client_id"`
	RecipeID  uint      `gorm:"not null;index:idx_favorites_client_recipe,unique" json:"recipe_id"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// HistoryEntry records that a client cooked a recipe.
type HistoryEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ClientID  string    `gorm:"size:64;not null;index:idx_history_client_recipe,unique" json:"client_id"`
	RecipeID  uint      `gorm:"not null;index:idx_history_client_recipe,unique" json:"recipe_id"`
}

func (HistoryEntry) TableName() string {
	return "cooking_history"
}
