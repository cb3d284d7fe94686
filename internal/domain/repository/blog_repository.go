package repository

import (
	"context"
	"errors"

	"scribe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBlogNotFound is a domain-specific error returned when a blog post is not found.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines the standard operations for blog post persistence.
type BlogRepository interface {
	// FindAll retrieves every blog post, newest first.
	FindAll(ctx context.Context) ([]*entity.Blog, error)

	// FindByID retrieves a single blog post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// Create persists a new blog post to the storage.
	Create(ctx context.Context, blog *entity.Blog) error

	// Save persists the full state of an existing blog post (insert-or-update by identity).
	Save(ctx context.Context, blog *entity.Blog) error

	// DeleteByID removes a blog post by its ID. Returns ErrBlogNotFound when
	// no row was affected.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
