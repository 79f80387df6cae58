package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity provides identity and audit fields shared by all entities.
type BaseEntity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// NewBaseEntity creates a base entity with a fresh UUID and timestamps.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the modification timestamp and the acting user.
func (e *BaseEntity) Touch(updatedBy string) {
	e.UpdatedAt = time.Now().UTC()
	if updatedBy != "" {
		e.UpdatedBy = updatedBy
	}
}
