package impl

import (
	"context"
	"log/slog"

	deliverycontext "scribe/internal/delivery/context"
	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	"scribe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	blogRepo repository.BlogRepository
	logger   *slog.Logger
}

// NewBlogService creates a new blog service instance.
func NewBlogService(blogRepo repository.BlogRepository, logger *slog.Logger) usecase.BlogUsecase {
	return &blogService{
		blogRepo: blogRepo,
		logger:   logger,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindAll returns every blog post.
func (srv *blogService) FindAll(ctx context.Context) ([]*entity.Blog, error) {
	blogs, err := srv.blogRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find blogs")
	}

	return blogs, nil
}

// FindOne returns the blog with the given id, or ErrBlogNotFound.
func (srv *blogService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBlogNotFound, "blog lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return blog, nil
}

// Create persists a new blog post. The write is unconditional: there is no
// uniqueness constraint on blog content.
func (srv *blogService) Create(ctx context.Context, input *usecase.CreateBlogInput) (*entity.Blog, error) {
	blog := &entity.Blog{
		Title:   input.Title,
		Content: input.Content,
	}

	if err := srv.blogRepo.Create(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "failed to create blog")
	}

	srv.log(ctx).Debug("Blog created", slog.Any("blogID", blog.ID))

	return blog, nil
}

// Update loads the existing record, overlays the supplied fields onto it
// (unspecified fields retain their prior values) and persists the merged
// record. A missing id propagates FindOne's not-found failure.
func (srv *blogService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateBlogInput) (*entity.Blog, error) {
	blog, err := srv.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Content != nil {
		blog.Content = *input.Content
	}

	if err := srv.blogRepo.Save(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "failed to save blog")
	}

	srv.log(ctx).Debug("Blog updated", slog.Any("blogID", blog.ID))

	return blog, nil
}

// Delete removes the blog with the given id. A delete that affects zero
// rows surfaces as ErrBlogNotFound.
func (srv *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.blogRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return errors.Wrap(domainerrors.ErrBlogNotFound, "blog delete failed")
		}

		return errors.Wrap(err, "failed to delete blog")
	}

	srv.log(ctx).Debug("Blog deleted", slog.Any("blogID", id))

	return nil
}
