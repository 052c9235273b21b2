package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Setting is a flat key to structured value row. No versioning; last write
// wins.
type Setting struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Key         string         `gorm:"size:100;not null;unique" json:"key"`
	Value       datatypes.JSON `gorm:"type:jsonb" json:"value"`
	Category    string         `gorm:"size:50" json:"category"`
	Description string         `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
