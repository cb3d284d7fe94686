package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scribe/internal/delivery/http/middleware"
	"scribe/internal/delivery/http/validator"
	"scribe/internal/domain/entity"
	"scribe/internal/domain/repository"
	mockRepo "scribe/internal/mocks/repository"
	mockSvc "scribe/internal/mocks/service"
	"scribe/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authTestFixtures wires a real echo instance, validator and error handler
// around the user service so requests exercise the full handler path.
type authTestFixtures struct {
	echo     *echo.Echo
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createAuthTestServer(t *testing.T) authTestFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uc := impl.NewUserService(userRepo, hasher, logger)
	h := NewAuthHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/health", HealthCheck)

	return authTestFixtures{
		echo:     e,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	fx := createAuthTestServer(t)

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(mock.Anything, "test@example.com", "testuser").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(nil)

	rec := doJSON(fx.echo, http.MethodPost, "/auth/register",
		`{"email":"test@example.com","username":"testuser","password":"Password123!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			User struct {
				Email    string `json:"email"`
				Username string `json:"username"`
			} `json:"user"`
			Message string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, "test@example.com", resp.Data.User.Email)
	assert.Equal(t, "testuser", resp.Data.User.Username)

	// The password hash must never leak through the wire format.
	assert.NotContains(t, rec.Body.String(), "hashed_password")
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Register_DuplicateUser(t *testing.T) {
	fx := createAuthTestServer(t)

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(mock.Anything, "taken@example.com", "takenuser").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com", Username: "takenuser"}, nil)

	rec := doJSON(fx.echo, http.MethodPost, "/auth/register",
		`{"email":"taken@example.com","username":"takenuser","password":"Password123!"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email or username already exists")
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	fx := createAuthTestServer(t)

	rec := doJSON(fx.echo, http.MethodPost, "/auth/register",
		`{"email":"not-an-email","username":"testuser","password":"Password123!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	fx := createAuthTestServer(t)

	rec := doJSON(fx.echo, http.MethodPost, "/auth/register", `{"email":"test@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	fx := createAuthTestServer(t)

	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(mock.Anything, "testuser").Return(stored, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)

	rec := doJSON(fx.echo, http.MethodPost, "/auth/login",
		`{"username":"testuser","password":"Password123!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login successful")
	assert.NotContains(t, rec.Body.String(), "hashed_password")
}

func TestAuthHandler_Login_UnknownUsername(t *testing.T) {
	fx := createAuthTestServer(t)

	fx.userRepo.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	rec := doJSON(fx.echo, http.MethodPost, "/auth/login",
		`{"username":"ghost","password":"Password123!"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	fx := createAuthTestServer(t)

	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(mock.Anything, "testuser").Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong-password", "hashed_password").Return(false)

	rec := doJSON(fx.echo, http.MethodPost, "/auth/login",
		`{"username":"testuser","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	fx := createAuthTestServer(t)

	rec := doJSON(fx.echo, http.MethodPost, "/auth/login", `{"username":"testuser"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestHealthCheck(t *testing.T) {
	fx := createAuthTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
