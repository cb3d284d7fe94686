package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	mockRepo "scribe/internal/mocks/repository"
	mockSvc "scribe/internal/mocks/service"
	"scribe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(userRepo, hasher, logger)

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "User registered successfully", output.Message)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Empty(t, output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_DuplicateEmailOrUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Username: "takenuser",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(&entity.User{
			ID:       uuid.New(),
			Email:    input.Email,
			Username: "someoneelse",
		}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_LookupError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "Password123!",
	}

	dbErr := errors.New("connection refused")
	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, dbErr)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Register_CreateFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, input.Email, input.Username).
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to create user"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "testuser",
		Password: "Password123!",
	}

	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Username:     input.Username,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(stored, nil)
	fx.hasher.EXPECT().Check(input.Password, stored.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "Login successful", output.Message)
	assert.Equal(t, stored.ID, output.User.ID)
	assert.Empty(t, output.User.PasswordHash)
}

func TestUserService_Login_UnknownUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "ghost",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "testuser",
		Password: "wrong-password",
	}

	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Username:     input.Username,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(stored, nil)
	fx.hasher.EXPECT().Check(input.Password, stored.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// Indistinguishable from the unknown-username failure.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_RepositoryError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "testuser",
		Password: "Password123!",
	}

	dbErr := errors.New("connection reset")
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, dbErr)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_FindUserByID_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:           userID,
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)

	user, err := fx.service.FindUserByID(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_FindUserByID_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.FindUserByID(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserService_FindUserByUsername_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, stored.Username).Return(stored, nil)

	user, err := fx.service.FindUserByUsername(ctx, stored.Username)

	require.NoError(t, err)
	assert.Equal(t, stored.Username, user.Username)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_FindUserByEmail_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)

	user, err := fx.service.FindUserByEmail(ctx, stored.Email)

	require.NoError(t, err)
	assert.Equal(t, stored.Email, user.Email)
	assert.Empty(t, user.PasswordHash)
}
