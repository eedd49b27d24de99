package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	"stayhub/infras/jwt"
	jwtMocks "stayhub/infras/jwt/mocks"
	"stayhub/infras/otel/mocks"
	"stayhub/internal/domains/auth/model/dto"
	"stayhub/internal/domains/auth/service"
	userMocks "stayhub/internal/domains/user/mocks"
	userModel "stayhub/internal/domains/user/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/password"
)

type authTestDeps struct {
	userRepo *userMocks.MockUser
	jwt      *jwtMocks.MockJWT
	svc      service.Auth
}

func newAuthTestDeps(t *testing.T) authTestDeps {
	t.Helper()

	ctrl := gomock.NewController(t)

	userRepo := userMocks.NewMockUser(ctrl)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	return authTestDeps{
		userRepo: userRepo,
		jwt:      jwtService,
		svc:      service.New(userRepo, &config.Config{}, mocks.NewOtel(), jwtService),
	}
}

func activeUser(t *testing.T, plainPassword string) userModel.User {
	t.Helper()

	hashed, err := password.Hash(plainPassword)
	assert.NoError(t, err)

	return userModel.User{
		ID:       "user-1",
		Email:    "guest@example.com",
		Password: hashed,
		Role:     constant.RoleCustomer,
		Active:   true,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	req := dto.RegisterRequest{
		Email:    "guest@example.com",
		Password: "supersecret",
		Role:     constant.RoleCustomer,
	}

	t.Run("registers a new user", func(t *testing.T) {
		deps := newAuthTestDeps(t)

		deps.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		deps.userRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, req.Email, user.Email)
				assert.Equal(t, constant.RoleCustomer, user.Role)
				assert.True(t, user.Active)
				assert.NotEmpty(t, user.ID)
				assert.NoError(t, password.Verify(req.Password, user.Password))

				return nil
			})

		err := deps.svc.Register(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("rejects an already registered email", func(t *testing.T) {
		deps := newAuthTestDeps(t)

		deps.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := deps.svc.Register(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		deps := newAuthTestDeps(t)

		deps.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("query failed"))

		err := deps.svc.Register(ctx, req)

		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	req := dto.LoginRequest{Email: "guest@example.com", Password: "supersecret"}

	t.Run("returns a token pair", func(t *testing.T) {
		deps := newAuthTestDeps(t)
		user := activeUser(t, req.Password)

		deps.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		deps.jwt.EXPECT().
			GenerateTokenPair(user.ID, user.Email, user.Role).
			Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)
		deps.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := deps.svc.Login(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
		assert.Equal(t, int64(900), res.ExpiresIn)
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		deps := newAuthTestDeps(t)

		deps.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := deps.svc.Login(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("wrong password reads as invalid credentials", func(t *testing.T) {
		deps := newAuthTestDeps(t)
		user := activeUser(t, "a-different-password")

		deps.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := deps.svc.Login(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		deps := newAuthTestDeps(t)
		user := activeUser(t, req.Password)
		user.Active = false

		deps.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := deps.svc.Login(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("exchanges a refresh token", func(t *testing.T) {
		deps := newAuthTestDeps(t)

		deps.jwt.EXPECT().
			RefreshTokens("old-refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)

		res, err := deps.svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
		assert.Equal(t, "new-refresh", res.RefreshToken)
	})

	t.Run("invalid refresh token is unauthorized", func(t *testing.T) {
		deps := newAuthTestDeps(t)

		deps.jwt.EXPECT().RefreshTokens("bad-token").Return(nil, jwt.ErrInvalidToken)

		_, err := deps.svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	req := dto.ChangePasswordRequest{CurrentPassword: "supersecret", NewPassword: "evenmoresecret"}

	t.Run("rotates the password", func(t *testing.T) {
		deps := newAuthTestDeps(t)
		user := activeUser(t, req.CurrentPassword)

		deps.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		deps.userRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				hashed, ok := fields["password"].(string)
				assert.True(t, ok)
				assert.NoError(t, password.Verify(req.NewPassword, hashed))

				return nil
			})

		err := deps.svc.ChangePassword(ctx, req, user.ID)

		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		deps := newAuthTestDeps(t)

		deps.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		err := deps.svc.ChangePassword(ctx, req, "ghost")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("wrong current password", func(t *testing.T) {
		deps := newAuthTestDeps(t)
		user := activeUser(t, "a-different-password")

		deps.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		err := deps.svc.ChangePassword(ctx, req, user.ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
