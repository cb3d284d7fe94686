package usecase

import (
	"context"

	"scribe/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBlogInput defines the data required to create a blog post.
// Length invariants (title >= 5, content >= 20) are validated at the
// delivery layer.
type CreateBlogInput struct {
	Title   string
	Content string
}

// UpdateBlogInput carries a partial update: nil fields retain their
// previous values.
type UpdateBlogInput struct {
	Title   *string
	Content *string
}

// BlogUsecase defines the interface for blog post operations.
type BlogUsecase interface {
	// FindAll returns the full collection, no filtering or pagination.
	FindAll(ctx context.Context) ([]*entity.Blog, error)

	// FindOne returns the blog with the given id.
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// Create persists a new blog post and returns it with its generated
	// identifier and timestamps.
	Create(ctx context.Context, input *CreateBlogInput) (*entity.Blog, error)

	// Update overlays the supplied fields onto the existing record and
	// persists the merged result.
	Update(ctx context.Context, id uuid.UUID, input *UpdateBlogInput) (*entity.Blog, error)

	// Delete removes the blog with the given id.
	Delete(ctx context.Context, id uuid.UUID) error
}
