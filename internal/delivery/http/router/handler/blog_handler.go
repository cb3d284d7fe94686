package handler

import (
	"log/slog"
	"net/http"

	"scribe/internal/delivery/http/response"
	"scribe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createBlogRequest is the inbound shape for POST /blog.
type createBlogRequest struct {
	Title   string `json:"title" validate:"required,min=5"`
	Content string `json:"content" validate:"required,min=20"`
}

// updateBlogRequest carries a partial update; omitted fields keep their
// previous values, supplied fields must still satisfy their length invariants.
type updateBlogRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=5"`
	Content *string `json:"content" validate:"omitempty,min=20"`
}

// BlogHandler holds dependencies for blog CRUD endpoints.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		logger: logger,
	}
}

// blogID parses the :id path parameter.
func blogID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// FindAll handles listing every blog post.
func (h *BlogHandler) FindAll(c echo.Context) error {
	blogs, err := h.uc.FindAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blogs, "")
}

// FindOne handles fetching a single blog post by id.
func (h *BlogHandler) FindOne(c echo.Context) error {
	id, err := blogID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid blog id")
	}

	blog, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blog, "")
}

// Create handles creating a new blog post.
func (h *BlogHandler) Create(c echo.Context) error {
	var input createBlogRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	blog, err := h.uc.Create(c.Request().Context(), &usecase.CreateBlogInput{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, blog, "Blog created successfully")
}

// Update handles a partial update of an existing blog post.
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := blogID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid blog id")
	}

	var input updateBlogRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	blog, err := h.uc.Update(c.Request().Context(), id, &usecase.UpdateBlogInput{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blog, "Blog updated successfully")
}

// Delete handles removing a blog post.
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := blogID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid blog id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
