package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// JSONStringArray is a custom type for persisting string slices as JSON
type JSONStringArray []string

// Value implements the driver.Valuer interface
func (a JSONStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the stored catalog record. IDs are assigned by the store on
// insert; upstream ids are not trusted across batches. The ingredient and
// instruction order is preserved from ingestion and is display-relevant.
type Recipe struct {
	ID                  uint            `gorm:"primarykey" json:"id"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Title               string          `gorm:"size:255;not null;uniqueIndex" json:"title"`
	Description         string          `gorm:"type:text" json:"description"`
	Image               string          `gorm:"size:512" json:"image"`
	Time                int             `json:"time"`
	Ingredients         JSONStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions        JSONStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	DietaryRestrictions JSONStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietaryRestrictions"`
	Rating              float64         `json:"rating"`
}
