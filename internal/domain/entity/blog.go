package entity

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a single blog post. Title must be at least 5 characters and
// Content at least 20; both invariants are enforced at the delivery layer
// before a create or update reaches the service.
type Blog struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
