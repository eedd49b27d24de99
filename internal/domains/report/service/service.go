package service

import (
	"context"
	"fmt"

	"stayhub/config"
	"stayhub/infras/otel"
	bookingModel "stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/report/model"
	"stayhub/internal/domains/report/model/dto"
	"stayhub/internal/domains/report/repository"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	"stayhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheSalesReport    = "report:gets:sales"
	cachePropertyReport = "report:gets:property"
)

const availableEventTitle = "Available"

type Report interface {
	Sales(ctx context.Context, req dto.SalesReportRequest) (dto.SalesReportResponse, error)
	Property(ctx context.Context, tenantID string) (dto.PropertyReportResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Sales reports revenue for every booking of the tenant that was confirmed
// at least once. A later cancellation does not remove a booking from the
// report; the visited statuses column makes that visible to the reader.
// Rows are paged, while the totals always cover the whole filtered set.
func (s *serviceImpl) Sales(ctx context.Context, req dto.SalesReportRequest) (res dto.SalesReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Sales")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheSalesReport, req.TenantID, fmt.Sprintf("%+v", req))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for sales report")

		return res, nil
	}

	query := repository.SalesQuery{
		TenantID:  req.TenantID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		SortDir:   req.SortDir,
		Page:      req.Page,
		Limit:     req.Limit,
	}

	rows, err := s.repo.SalesRows(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sales rows")

		return res, fmt.Errorf("failed to get sales rows: %w", err)
	}

	totals, err := s.repo.SalesTotals(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sales totals")

		return res, fmt.Errorf("failed to get sales totals: %w", err)
	}

	res.FromRows(rows, totals, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sales report to cache")
		}
	}()

	return res, nil
}

// Property builds the occupancy calendar per property. Active bookings
// become "Booked" events; each room type with rooms to spare contributes an
// "Available" event spanning the next month. The displayed room count adds
// canceled rooms back on top of the free ones, so it reads as "rooms you
// could still sell" including inventory freed by cancellations.
func (s *serviceImpl) Property(ctx context.Context, tenantID string) (res dto.PropertyReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Property")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cachePropertyReport, tenantID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property report")

		return res, nil
	}

	roomTypes, err := s.repo.RoomTypeRows(ctx, tenantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type rows")

		return res, fmt.Errorf("failed to get room type rows: %w", err)
	}

	occupancy, err := s.repo.OccupancyRows(ctx, tenantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy rows")

		return res, fmt.Errorf("failed to get occupancy rows: %w", err)
	}

	res = buildPropertyReport(roomTypes, occupancy)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property report to cache")
		}
	}()

	return res, nil
}

func buildPropertyReport(roomTypes []model.RoomTypeRow, occupancy []model.OccupancyRow) dto.PropertyReportResponse {
	type counters struct {
		active   int
		canceled int
	}

	perRoomType := map[string]*counters{}
	perProperty := map[string]*counters{}

	for _, row := range occupancy {
		rt := perRoomType[row.RoomTypeID]
		if rt == nil {
			rt = &counters{}
			perRoomType[row.RoomTypeID] = rt
		}

		prop := perProperty[row.PropertyID]
		if prop == nil {
			prop = &counters{}
			perProperty[row.PropertyID] = prop
		}

		if row.Status == string(bookingModel.StatusCanceled) {
			rt.canceled += row.RoomQty
			prop.canceled++
		} else {
			rt.active += row.RoomQty
			prop.active++
		}
	}

	now := timezone.Now()
	availableFrom := now.Format(constant.DateOnlyFormat)
	availableUntil := now.AddDate(0, 1, 0).Format(constant.DateOnlyFormat)

	reports := []dto.PropertyReport{}
	index := map[string]int{}

	for _, rt := range roomTypes {
		i, ok := index[rt.PropertyID]
		if !ok {
			i = len(reports)
			index[rt.PropertyID] = i

			report := dto.PropertyReport{
				PropertyID:   rt.PropertyID,
				PropertyName: rt.PropertyName,
				RoomTypes:    []dto.RoomTypeReport{},
				Events:       []dto.CalendarEvent{},
			}

			if prop := perProperty[rt.PropertyID]; prop != nil {
				report.ActiveCount = prop.active
				report.CanceledCount = prop.canceled
			}

			reports = append(reports, report)
		}

		counts := perRoomType[rt.RoomTypeID]
		if counts == nil {
			counts = &counters{}
		}

		available := rt.Qty - counts.active

		reports[i].RoomTypes = append(reports[i].RoomTypes, dto.RoomTypeReport{
			RoomTypeID:         rt.RoomTypeID,
			Name:               rt.RoomTypeName,
			Qty:                rt.Qty,
			ActiveCount:        counts.active,
			CanceledCount:      counts.canceled,
			AvailableRoomCount: available,
			DisplayedRoomCount: available + counts.canceled,
		})

		if available > 0 {
			reports[i].Events = append(reports[i].Events, dto.CalendarEvent{
				Title: availableEventTitle,
				Start: availableFrom,
				End:   availableUntil,
				Count: available + counts.canceled,
			})
		}
	}

	for _, row := range occupancy {
		if row.Status == string(bookingModel.StatusCanceled) {
			continue
		}

		i, ok := index[row.PropertyID]
		if !ok {
			continue
		}

		reports[i].Events = append(reports[i].Events, dto.CalendarEvent{
			Title: fmt.Sprintf("Booked: %s - Room %s", row.PropertyName, row.RoomTypeName),
			Start: row.CheckIn.Format(constant.DateOnlyFormat),
			End:   row.CheckOut.Format(constant.DateOnlyFormat),
		})
	}

	return dto.PropertyReportResponse{Properties: reports}
}
