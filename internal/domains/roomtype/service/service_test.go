package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	"stayhub/infras/otel/mocks"
	propertyMocks "stayhub/internal/domains/property/mocks"
	propertyModel "stayhub/internal/domains/property/model"
	roomTypeMocks "stayhub/internal/domains/roomtype/mocks"
	"stayhub/internal/domains/roomtype/model"
	"stayhub/internal/domains/roomtype/model/dto"
	"stayhub/internal/domains/roomtype/service"
	"stayhub/shared/cache"
	cacheMocks "stayhub/shared/cache/mocks"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
)

type roomTypeTestDeps struct {
	repo         *roomTypeMocks.MockRoomType
	propertyRepo *propertyMocks.MockProperty
	cache        *cacheMocks.MockRedisCache
	svc          service.RoomType
}

func newRoomTypeTestDeps(t *testing.T) roomTypeTestDeps {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	repo := roomTypeMocks.NewMockRoomType(ctrl)
	propertyRepo := propertyMocks.NewMockProperty(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	return roomTypeTestDeps{
		repo:         repo,
		propertyRepo: propertyRepo,
		cache:        redisCache,
		svc:          service.New(repo, propertyRepo, cfg, redisCache, mocks.NewOtel()),
	}
}

func tenantCtx(tenantID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, tenantID)
}

func roomTypeFixture(id, propertyID string) model.RoomType {
	return model.RoomType{
		ID:            id,
		PropertyID:    propertyID,
		Name:          "Deluxe",
		Qty:           3,
		Price:         250,
		GuestCapacity: 2,
	}
}

func TestRoomTypeService_Create(t *testing.T) {
	req := dto.CreateRoomTypeRequest{
		PropertyID:    "prop-1",
		Name:          "Deluxe",
		Qty:           3,
		Price:         250,
		GuestCapacity: 2,
	}

	t.Run("creates a room type on an owned property", func(t *testing.T) {
		deps := newRoomTypeTestDeps(t)

		deps.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(propertyModel.Property{ID: "prop-1", TenantID: "tenant-1"}, nil)
		deps.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
				assert.Equal(t, req.PropertyID, roomType.PropertyID)
				assert.Equal(t, req.Qty, roomType.Qty)
				assert.NotEmpty(t, roomType.ID)

				return nil
			})
		deps.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := deps.svc.Create(tenantCtx("tenant-1"), req)

		assert.NoError(t, err)
	})

	t.Run("unknown property", func(t *testing.T) {
		deps := newRoomTypeTestDeps(t)

		deps.propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(propertyModel.Property{}, nil)

		err := deps.svc.Create(tenantCtx("tenant-1"), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("another tenant's property is forbidden", func(t *testing.T) {
		deps := newRoomTypeTestDeps(t)

		deps.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(propertyModel.Property{ID: "prop-1", TenantID: "tenant-2"}, nil)

		err := deps.svc.Create(tenantCtx("tenant-1"), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestRoomTypeService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the room type", func(t *testing.T) {
		deps := newRoomTypeTestDeps(t)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeFixture("rt-1", "prop-1"), nil)
		deps.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := deps.svc.Get(ctx, "rt-1")

		assert.NoError(t, err)
		assert.Equal(t, "rt-1", res.ID)
		assert.Equal(t, 3, res.Qty)
	})

	t.Run("unknown room type", func(t *testing.T) {
		deps := newRoomTypeTestDeps(t)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		_, err := deps.svc.Get(ctx, "ghost")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomTypeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("pages through room types", func(t *testing.T) {
		deps := newRoomTypeTestDeps(t)

		params := gDto.QueryParams{Page: 1, Limit: 10}
		models := []model.RoomType{roomTypeFixture("rt-1", "prop-1"), roomTypeFixture("rt-2", "prop-1")}

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		deps.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		deps.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return(models, nil)
		deps.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := deps.svc.GetAll(ctx, params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.RoomTypes, 2)
	})

	t.Run("listing error is propagated", func(t *testing.T) {
		deps := newRoomTypeTestDeps(t)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		deps.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		deps.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("query failed"))
		deps.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := deps.svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestRoomTypeService_Update(t *testing.T) {
	t.Run("updates an owned room type", func(t *testing.T) {
		deps := newRoomTypeTestDeps(t)

		qty := 5

		deps.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeFixture("rt-1", "prop-1"), nil)
		deps.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(propertyModel.Property{ID: "prop-1", TenantID: "tenant-1"}, nil)
		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &qty, fields["qty"])

				return nil
			})
		deps.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		deps.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := deps.svc.Update(tenantCtx("tenant-1"), dto.UpdateRoomTypeRequest{Qty: &qty}, "rt-1")

		assert.NoError(t, err)
	})

	t.Run("another tenant's room type is forbidden", func(t *testing.T) {
		deps := newRoomTypeTestDeps(t)

		deps.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeFixture("rt-1", "prop-1"), nil)
		deps.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(propertyModel.Property{ID: "prop-1", TenantID: "tenant-2"}, nil)

		err := deps.svc.Update(tenantCtx("tenant-1"), dto.UpdateRoomTypeRequest{}, "rt-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestRoomTypeService_Delete(t *testing.T) {
	t.Run("deletes an owned room type", func(t *testing.T) {
		deps := newRoomTypeTestDeps(t)

		deps.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeFixture("rt-1", "prop-1"), nil)
		deps.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(propertyModel.Property{ID: "prop-1", TenantID: "tenant-1"}, nil)
		deps.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		deps.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		deps.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := deps.svc.Delete(tenantCtx("tenant-1"), "rt-1")

		assert.NoError(t, err)
	})

	t.Run("unknown room type", func(t *testing.T) {
		deps := newRoomTypeTestDeps(t)

		deps.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		err := deps.svc.Delete(tenantCtx("tenant-1"), "ghost")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
