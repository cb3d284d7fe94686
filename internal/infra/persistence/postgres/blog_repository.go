package postgres

import (
	"context"

	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	"scribe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the repository.BlogRepository interface using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{
		db: db,
	}
}

// FindAll retrieves every blog post, newest first.
func (repo *blogRepository) FindAll(ctx context.Context) ([]*entity.Blog, error) {
	var blogModels []*model.BlogModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&blogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find blogs")
	}

	blogs := make([]*entity.Blog, 0, len(blogModels))
	for _, blogM := range blogModels {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs, nil
}

// FindByID retrieves a single blog post by its unique ID.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blogM model.BlogModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&blogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return toBlogDomain(&blogM), nil
}

// Create persists a new blog post to the database.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrBlogCreationFailed.WrapMessage("missing required blog information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	// Update the entity with generated values
	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// Save persists the full state of an existing blog post.
func (repo *blogRepository) Save(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)
	blogM.CreatedAt = blog.CreatedAt

	if err := repo.db.WithContext(ctx).Save(blogM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrBlogCreationFailed.WrapMessage("missing required blog information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save blog")
	}

	// GORM refreshes UpdatedAt on save.
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// DeleteByID removes a blog post by its ID.
func (repo *blogRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog")
	}

	// Zero affected rows means nothing existed under that id.
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// toBlogDomain converts a GORM BlogModel to a domain Blog entity.
func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBlogDomain converts a domain Blog entity to a GORM BlogModel for persistence.
func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:      data.ID,
		Title:   data.Title,
		Content: data.Content,
	}
}
