package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	"stayhub/infras/otel/mocks"
	bookingModel "stayhub/internal/domains/booking/model"
	reportMocks "stayhub/internal/domains/report/mocks"
	"stayhub/internal/domains/report/model"
	"stayhub/internal/domains/report/model/dto"
	"stayhub/internal/domains/report/repository"
	"stayhub/internal/domains/report/service"
	"stayhub/shared/cache"
	cacheMocks "stayhub/shared/cache/mocks"
)

type reportTestDeps struct {
	repo  *reportMocks.MockReport
	cache *cacheMocks.MockRedisCache
	svc   service.Report
}

func newReportTestDeps(t *testing.T) reportTestDeps {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	repo := reportMocks.NewMockReport(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	return reportTestDeps{
		repo:  repo,
		cache: redisCache,
		svc:   service.New(repo, cfg, redisCache, mocks.NewOtel()),
	}
}

func TestReportService_Sales(t *testing.T) {
	ctx := context.Background()

	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)

	t.Run("aggregates rows into entries and totals", func(t *testing.T) {
		deps := newReportTestDeps(t)

		req := dto.SalesReportRequest{
			TenantID:  "tenant-1",
			StartDate: &start,
			EndDate:   &end,
			SortDir:   "desc",
			Page:      1,
			Limit:     10,
		}

		rows := []model.SalesRow{
			{
				BookingID:    101,
				PropertyName: "Seaside Villa",
				RoomTypeName: "Deluxe",
				CustomerName: "Ana",
				CheckIn:      time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
				CheckOut:     time.Date(2026, time.February, 12, 0, 0, 0, 0, time.UTC),
				RoomQty:      2,
				Price:        750,
				CreatedAt:    start.Add(24 * time.Hour),
				Statuses:     "WAITING_FOR_PAYMENT,WAITING_FOR_CONFIRMATION,CONFIRMED",
			},
			{
				BookingID:    102,
				PropertyName: "Seaside Villa",
				RoomTypeName: "Suite",
				CustomerName: "Budi",
				CheckIn:      time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC),
				CheckOut:     time.Date(2026, time.February, 16, 0, 0, 0, 0, time.UTC),
				RoomQty:      1,
				Price:        1250,
				CreatedAt:    start.Add(48 * time.Hour),
				Statuses:     "WAITING_FOR_PAYMENT,CONFIRMED,CANCELED",
			},
		}

		query := repository.SalesQuery{
			TenantID:  "tenant-1",
			StartDate: &start,
			EndDate:   &end,
			SortDir:   "desc",
			Page:      1,
			Limit:     10,
		}

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().SalesRows(gomock.Any(), query).Return(rows, nil)
		deps.repo.EXPECT().SalesTotals(gomock.Any(), query).Return(model.SalesTotals{TotalBookings: 2, TotalRevenue: 2000}, nil)
		deps.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := deps.svc.Sales(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalBookings)
		assert.Equal(t, float64(2000), res.TotalRevenue)
		assert.Equal(t, 1, res.TotalPage)
		assert.Len(t, res.Sales, 2)
		assert.Equal(t, int64(101), res.Sales[0].OrderNumber)
		assert.Equal(t, "Ana", res.Sales[0].CustomerName)
		assert.Equal(t, "2026-02-10", res.Sales[0].CheckIn)
		assert.Equal(t, "2026-02-12", res.Sales[0].CheckOut)
		assert.Equal(t, 2, res.Sales[0].TotalRooms)
		assert.Equal(t, 1, res.Sales[1].TotalRooms)
		assert.Equal(t, "WAITING_FOR_PAYMENT,CONFIRMED,CANCELED", res.Sales[1].Statuses)
	})

	t.Run("totals cover the whole filtered set, not the page", func(t *testing.T) {
		deps := newReportTestDeps(t)

		req := dto.SalesReportRequest{TenantID: "tenant-1", Page: 2, Limit: 1}

		query := repository.SalesQuery{TenantID: "tenant-1", Page: 2, Limit: 1}

		rows := []model.SalesRow{
			{BookingID: 102, PropertyName: "Seaside Villa", CustomerName: "Budi", Price: 1250, CreatedAt: start, Statuses: "CONFIRMED"},
		}

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().SalesRows(gomock.Any(), query).Return(rows, nil)
		deps.repo.EXPECT().SalesTotals(gomock.Any(), query).Return(model.SalesTotals{TotalBookings: 3, TotalRevenue: 2750}, nil)
		deps.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := deps.svc.Sales(ctx, req)

		assert.NoError(t, err)
		assert.Len(t, res.Sales, 1)
		assert.Equal(t, 3, res.TotalBookings)
		assert.Equal(t, float64(2750), res.TotalRevenue)
		assert.Equal(t, 3, res.TotalPage)
	})

	t.Run("empty result keeps zero totals", func(t *testing.T) {
		deps := newReportTestDeps(t)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().SalesRows(gomock.Any(), gomock.Any()).Return([]model.SalesRow{}, nil)
		deps.repo.EXPECT().SalesTotals(gomock.Any(), gomock.Any()).Return(model.SalesTotals{}, nil)
		deps.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := deps.svc.Sales(ctx, dto.SalesReportRequest{TenantID: "tenant-1"})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.TotalBookings)
		assert.Zero(t, res.TotalRevenue)
		assert.Empty(t, res.Sales)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := newReportTestDeps(t)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				res, ok := dest.(*dto.SalesReportResponse)
				assert.True(t, ok)
				res.TotalBookings = 4
				res.TotalRevenue = 8000

				return nil
			})

		res, err := deps.svc.Sales(ctx, dto.SalesReportRequest{TenantID: "tenant-1"})

		assert.NoError(t, err)
		assert.Equal(t, 4, res.TotalBookings)
		assert.Equal(t, float64(8000), res.TotalRevenue)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		deps := newReportTestDeps(t)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().SalesRows(gomock.Any(), gomock.Any()).Return(nil, errors.New("query failed"))

		_, err := deps.svc.Sales(ctx, dto.SalesReportRequest{TenantID: "tenant-1"})

		assert.Error(t, err)
	})

	t.Run("totals error is propagated", func(t *testing.T) {
		deps := newReportTestDeps(t)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().SalesRows(gomock.Any(), gomock.Any()).Return([]model.SalesRow{}, nil)
		deps.repo.EXPECT().SalesTotals(gomock.Any(), gomock.Any()).Return(model.SalesTotals{}, errors.New("query failed"))

		_, err := deps.svc.Sales(ctx, dto.SalesReportRequest{TenantID: "tenant-1"})

		assert.Error(t, err)
	})
}

func TestReportService_Property(t *testing.T) {
	ctx := context.Background()

	checkIn := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

	roomTypes := []model.RoomTypeRow{
		{PropertyID: "prop-1", PropertyName: "Seaside Villa", RoomTypeID: "rt-1", RoomTypeName: "Deluxe", Qty: 3},
		{PropertyID: "prop-1", PropertyName: "Seaside Villa", RoomTypeID: "rt-2", RoomTypeName: "Suite", Qty: 2},
		{PropertyID: "prop-2", PropertyName: "Hilltop Lodge", RoomTypeID: "rt-3", RoomTypeName: "Cabin", Qty: 1},
	}

	occupancy := []model.OccupancyRow{
		{
			BookingID: 1, PropertyID: "prop-1", PropertyName: "Seaside Villa",
			RoomTypeID: "rt-1", RoomTypeName: "Deluxe", RoomQty: 2,
			CheckIn: checkIn, CheckOut: checkOut,
			Status: string(bookingModel.StatusConfirmed),
		},
		{
			BookingID: 2, PropertyID: "prop-1", PropertyName: "Seaside Villa",
			RoomTypeID: "rt-1", RoomTypeName: "Deluxe", RoomQty: 1,
			CheckIn: checkIn, CheckOut: checkOut,
			Status: string(bookingModel.StatusCanceled),
		},
		{
			BookingID: 3, PropertyID: "prop-1", PropertyName: "Seaside Villa",
			RoomTypeID: "rt-2", RoomTypeName: "Suite", RoomQty: 2,
			CheckIn: checkIn, CheckOut: checkOut,
			Status: string(bookingModel.StatusWaitingForPayment),
		},
	}

	t.Run("builds occupancy calendar per property", func(t *testing.T) {
		deps := newReportTestDeps(t)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().RoomTypeRows(gomock.Any(), "tenant-1").Return(roomTypes, nil)
		deps.repo.EXPECT().OccupancyRows(gomock.Any(), "tenant-1").Return(occupancy, nil)
		deps.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := deps.svc.Property(ctx, "tenant-1")

		assert.NoError(t, err)
		assert.Len(t, res.Properties, 2)

		villa := res.Properties[0]
		assert.Equal(t, "prop-1", villa.PropertyID)
		assert.Equal(t, 2, villa.ActiveCount)
		assert.Equal(t, 1, villa.CanceledCount)
		assert.Len(t, villa.RoomTypes, 2)

		deluxe := villa.RoomTypes[0]
		assert.Equal(t, "rt-1", deluxe.RoomTypeID)
		assert.Equal(t, 2, deluxe.ActiveCount)
		assert.Equal(t, 1, deluxe.CanceledCount)
		assert.Equal(t, 1, deluxe.AvailableRoomCount)
		assert.Equal(t, 2, deluxe.DisplayedRoomCount)

		suite := villa.RoomTypes[1]
		assert.Equal(t, "rt-2", suite.RoomTypeID)
		assert.Equal(t, 2, suite.ActiveCount)
		assert.Equal(t, 0, suite.AvailableRoomCount)
		assert.Equal(t, 0, suite.DisplayedRoomCount)

		titles := make([]string, 0, len(villa.Events))
		for _, event := range villa.Events {
			titles = append(titles, event.Title)

			// The availability tile shows free rooms plus rooms freed by
			// cancellations; booked tiles carry no count.
			if event.Title == "Available" {
				assert.Equal(t, 2, event.Count)
			} else {
				assert.Zero(t, event.Count)
			}
		}

		// One availability window for the deluxe rooms, none for the fully
		// booked suites, and a booked entry per non-canceled stay.
		assert.Len(t, villa.Events, 3)
		assert.Contains(t, titles, "Available")
		assert.Contains(t, titles, "Booked: Seaside Villa - Room Deluxe")
		assert.Contains(t, titles, "Booked: Seaside Villa - Room Suite")
		assert.NotContains(t, titles, "Booked: Seaside Villa - Room Deluxe (canceled)")

		lodge := res.Properties[1]
		assert.Equal(t, "prop-2", lodge.PropertyID)
		assert.Zero(t, lodge.ActiveCount)
		assert.Len(t, lodge.RoomTypes, 1)
		assert.Equal(t, 1, lodge.RoomTypes[0].AvailableRoomCount)
		assert.Len(t, lodge.Events, 1)
		assert.Equal(t, "Available", lodge.Events[0].Title)
		assert.Equal(t, 1, lodge.Events[0].Count)
	})

	t.Run("booked events carry the stay dates", func(t *testing.T) {
		deps := newReportTestDeps(t)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().RoomTypeRows(gomock.Any(), "tenant-1").Return(roomTypes[:1], nil)
		deps.repo.EXPECT().OccupancyRows(gomock.Any(), "tenant-1").Return(occupancy[:1], nil)
		deps.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := deps.svc.Property(ctx, "tenant-1")

		assert.NoError(t, err)
		assert.Len(t, res.Properties, 1)

		var booked *dto.CalendarEvent
		for i, event := range res.Properties[0].Events {
			if event.Title != "Available" {
				booked = &res.Properties[0].Events[i]
			}
		}

		assert.NotNil(t, booked)
		assert.Equal(t, "2026-03-10", booked.Start)
		assert.Equal(t, "2026-03-12", booked.End)
	})

	t.Run("room type rows error is propagated", func(t *testing.T) {
		deps := newReportTestDeps(t)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().RoomTypeRows(gomock.Any(), "tenant-1").Return(nil, errors.New("query failed"))

		_, err := deps.svc.Property(ctx, "tenant-1")

		assert.Error(t, err)
	})

	t.Run("occupancy rows error is propagated", func(t *testing.T) {
		deps := newReportTestDeps(t)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().RoomTypeRows(gomock.Any(), "tenant-1").Return(roomTypes, nil)
		deps.repo.EXPECT().OccupancyRows(gomock.Any(), "tenant-1").Return(nil, errors.New("query failed"))

		_, err := deps.svc.Property(ctx, "tenant-1")

		assert.Error(t, err)
	})
}
