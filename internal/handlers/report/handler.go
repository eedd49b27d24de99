package report

import (
	"net/http"
	"stayhub/infras/otel"
	"stayhub/internal/domains/report/model/dto"
	"stayhub/internal/domains/report/service"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Report
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Report, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth, handler.middleware.RBAC)

		routerGroup.Get("/sales", handler.GetSalesReport)
		routerGroup.Get("/property", handler.GetPropertyReport)
	})
}

// GetSalesReport builds the tenant's sales report.
// @Summary Get sales report
// @Description Aggregate confirmed bookings on the tenant's properties within an optional date range.
// @Tags Report
// @Produce json
// @Param start_date query string false "Include bookings created on or after this date (YYYY-MM-DD)"
// @Param end_date query string false "Include bookings created on or before this date (YYYY-MM-DD)"
// @Param sort_dir query string false "Sort direction by booking date, asc or desc"
// @Param page query int false "Page number, 1-indexed"
// @Param limit query int false "Rows per page"
// @Success 200 {object} response.Data[dto.SalesReportResponse] "Sales report"
// @Failure 400 {object} response.Error
// @Router /v1/reports/sales [get]
// @Security BearerAuth
func (handler *Handler) GetSalesReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSalesReport")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	req := dto.SalesReportRequest{
		SortDir: r.URL.Query().Get("sort_dir"),
		Page:    params.Page,
		Limit:   params.Limit,
	}

	req.TenantID, _ = ctx.Value(constant.ContextKeyUserID).(string)

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := timezone.Parse(constant.DateOnlyFormat, raw)
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.BadRequestFromString("start_date must use the format YYYY-MM-DD"))

			return
		}

		req.StartDate = &startDate
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := timezone.Parse(constant.DateOnlyFormat, raw)
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.BadRequestFromString("end_date must use the format YYYY-MM-DD"))

			return
		}

		req.EndDate = &endDate
	}

	res, err := handler.service.Sales(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sales report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPropertyReport builds the tenant's property occupancy report.
// @Summary Get property report
// @Description Per-property room availability with a booking calendar for the tenant's properties.
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.PropertyReportResponse] "Property report"
// @Failure 400 {object} response.Error
// @Router /v1/reports/property [get]
// @Security BearerAuth
func (handler *Handler) GetPropertyReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyReport")
	defer scope.End()

	tenantID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Property(ctx, tenantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
