package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity holds the audit fields shared by all persisted aggregates
type BaseEntity struct {
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewBaseEntity assigns a fresh identifier and UTC creation timestamps.
// The identifier is generated application-side and is immutable afterwards.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt to the current UTC time
func (b *BaseEntity) Touch() {
	b.UpdatedAt = time.Now().UTC()
}
