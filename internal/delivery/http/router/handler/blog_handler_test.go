package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"scribe/internal/delivery/http/middleware"
	"scribe/internal/delivery/http/validator"
	"scribe/internal/domain/entity"
	"scribe/internal/domain/repository"
	mockRepo "scribe/internal/mocks/repository"
	"scribe/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type blogTestFixtures struct {
	echo     *echo.Echo
	blogRepo *mockRepo.MockBlogRepository
}

func createBlogTestServer(t *testing.T) blogTestFixtures {
	blogRepo := mockRepo.NewMockBlogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uc := impl.NewBlogService(blogRepo, logger)
	h := NewBlogHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/blog", h.FindAll)
	e.GET("/blog/:id", h.FindOne)
	e.POST("/blog", h.Create)
	e.PATCH("/blog/:id", h.Update)
	e.DELETE("/blog/:id", h.Delete)

	return blogTestFixtures{
		echo:     e,
		blogRepo: blogRepo,
	}
}

func TestBlogHandler_FindAll_Success(t *testing.T) {
	fx := createBlogTestServer(t)

	stored := []*entity.Blog{
		{ID: uuid.New(), Title: "Newer post", Content: "Content of the newer post, long enough."},
		{ID: uuid.New(), Title: "Older post", Content: "Content of the older post, long enough."},
	}
	fx.blogRepo.EXPECT().FindAll(mock.Anything).Return(stored, nil)

	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Newer post", resp.Data[0].Title)
}

func TestBlogHandler_FindOne_Success(t *testing.T) {
	fx := createBlogTestServer(t)

	blogID := uuid.New()
	stored := &entity.Blog{
		ID:      blogID,
		Title:   "Hello world",
		Content: "The first post on this shiny new blog.",
	}
	fx.blogRepo.EXPECT().FindByID(mock.Anything, blogID).Return(stored, nil)

	req := httptest.NewRequest(http.MethodGet, "/blog/"+blogID.String(), nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello world")
}

func TestBlogHandler_FindOne_NotFound(t *testing.T) {
	fx := createBlogTestServer(t)

	blogID := uuid.New()
	fx.blogRepo.EXPECT().FindByID(mock.Anything, blogID).Return(nil, repository.ErrBlogNotFound)

	req := httptest.NewRequest(http.MethodGet, "/blog/"+blogID.String(), nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog not found")
	assert.Contains(t, rec.Body.String(), "BLOG_NOT_FOUND")
}

func TestBlogHandler_FindOne_InvalidID(t *testing.T) {
	fx := createBlogTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/blog/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid blog id")
}

func TestBlogHandler_Create_Success(t *testing.T) {
	fx := createBlogTestServer(t)

	fx.blogRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Blog")).
		Return(nil)

	rec := doJSON(fx.echo, http.MethodPost, "/blog",
		`{"title":"Hello world","content":"The first post on this shiny new blog."}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog created successfully")
}

func TestBlogHandler_Create_TitleTooShort(t *testing.T) {
	fx := createBlogTestServer(t)

	rec := doJSON(fx.echo, http.MethodPost, "/blog",
		`{"title":"Four","content":"The first post on this shiny new blog."}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestBlogHandler_Create_ContentTooShort(t *testing.T) {
	fx := createBlogTestServer(t)

	rec := doJSON(fx.echo, http.MethodPost, "/blog",
		`{"title":"Hello world","content":"Nineteen chars long"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestBlogHandler_Update_Success(t *testing.T) {
	fx := createBlogTestServer(t)

	blogID := uuid.New()
	stored := &entity.Blog{
		ID:      blogID,
		Title:   "Original title",
		Content: "Original content of the blog post.",
	}

	fx.blogRepo.EXPECT().FindByID(mock.Anything, blogID).Return(stored, nil)
	fx.blogRepo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.Blog")).
		Return(nil)

	rec := doJSON(fx.echo, http.MethodPatch, "/blog/"+blogID.String(),
		`{"title":"Updated title"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog updated successfully")
	assert.Contains(t, rec.Body.String(), "Updated title")
	// The omitted field keeps its stored value.
	assert.Contains(t, rec.Body.String(), "Original content of the blog post.")
}

func TestBlogHandler_Update_ShortTitleRejected(t *testing.T) {
	fx := createBlogTestServer(t)

	blogID := uuid.New()

	rec := doJSON(fx.echo, http.MethodPatch, "/blog/"+blogID.String(), `{"title":"Four"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestBlogHandler_Update_NotFound(t *testing.T) {
	fx := createBlogTestServer(t)

	blogID := uuid.New()
	fx.blogRepo.EXPECT().FindByID(mock.Anything, blogID).Return(nil, repository.ErrBlogNotFound)

	rec := doJSON(fx.echo, http.MethodPatch, "/blog/"+blogID.String(),
		`{"title":"Updated title"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog not found")
}

func TestBlogHandler_Delete_Success(t *testing.T) {
	fx := createBlogTestServer(t)

	blogID := uuid.New()
	fx.blogRepo.EXPECT().DeleteByID(mock.Anything, blogID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/blog/"+blogID.String(), nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestBlogHandler_Delete_NotFound(t *testing.T) {
	fx := createBlogTestServer(t)

	blogID := uuid.New()
	fx.blogRepo.EXPECT().DeleteByID(mock.Anything, blogID).Return(repository.ErrBlogNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/blog/"+blogID.String(), nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog not found")
}
