package booking

import (
	"net/http"
	"stayhub/infras/otel"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/service"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
	"stayhub/shared/validator"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth, handler.middleware.RBAC)

		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/orders", handler.GetOrders)
		routerGroup.Get("/tenant-orders", handler.GetTenantOrders)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/payment-proof", handler.UploadPaymentProof)
		routerGroup.Post("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/tenant-cancel", handler.CancelBookingByTenant)
	})
}

// CreateBooking places a new booking for the authenticated customer.
// @Summary Create a new booking
// @Description Book rooms of a room type for a date range. Fails when not enough rooms are available.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// UploadPaymentProof attaches a proof of payment file to a booking.
// @Summary Upload proof of payment
// @Description Upload the payment proof for a booking that is waiting for payment.
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Booking ID"
// @Param file formData file true "Proof of payment file"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/payment-proof [post]
// @Security BearerAuth
func (handler *Handler) UploadPaymentProof(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPaymentProof")
	defer scope.End()

	bookingID, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid booking id"))

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("proof of payment file is required"))

		return
	}
	defer file.Close()

	res, err := handler.service.UploadProof(ctx, bookingID, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload proof of payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Proof of payment uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ConfirmBooking confirms a paid booking.
// @Summary Confirm a booking
// @Description Confirm a booking that is waiting for confirmation. Tenant only.
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Confirmed booking"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	bookingID, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid booking id"))

		return
	}

	res, err := handler.service.Confirm(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CancelBooking cancels the authenticated customer's own booking.
// @Summary Cancel a booking
// @Description Cancel an unpaid booking before the payment deadline. Customer only.
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Canceled booking"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	bookingID, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid booking id"))

		return
	}

	res, err := handler.service.CancelByCustomer(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking canceled successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CancelBookingByTenant cancels a booking on behalf of the property owner.
// @Summary Cancel a booking as tenant
// @Description Cancel any booking on the tenant's property, regardless of its payment state.
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Canceled booking"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/tenant-cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBookingByTenant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBookingByTenant")
	defer scope.End()

	bookingID, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid booking id"))

		return
	}

	res, err := handler.service.CancelByTenant(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking as tenant")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking canceled successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingByID retrieves a booking with its current status.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	bookingID, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid booking id"))

		return
	}

	res, err := handler.service.Get(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetOrders lists the authenticated customer's bookings.
// @Summary Get own orders
// @Description List the customer's bookings. Canceled bookings are hidden unless filtered by status.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by booking status"
// @Param date query string false "Filter by booking date (YYYY-MM-DD)"
// @Param order_number query int false "Filter by order number"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	req, err := handler.parseOrderFilters(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req.CustomerID, _ = ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.ListForCustomer(ctx, queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTenantOrders lists bookings across all of the tenant's properties.
// @Summary Get tenant orders
// @Description List bookings on the tenant's properties. Canceled bookings are hidden unless filtered by status.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by booking status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/tenant-orders [get]
// @Security BearerAuth
func (handler *Handler) GetTenantOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTenantOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	req, err := handler.parseOrderFilters(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req.TenantID, _ = ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.ListForTenant(ctx, queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tenant orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) parseOrderFilters(r *http.Request) (req dto.ListOrdersRequest, err error) {
	if raw := r.URL.Query().Get(constant.RequestParamStatus); raw != "" {
		status, ok := model.ParseStatus(raw)
		if !ok {
			return req, failure.BadRequestFromString("unknown booking status: " + raw) // nolint:wrapcheck
		}

		req.Status = &status
	}

	if raw := r.URL.Query().Get(constant.RequestParamDate); raw != "" {
		date, parseErr := timezone.Parse(constant.DateOnlyFormat, raw)
		if parseErr != nil {
			return req, failure.BadRequestFromString("date must use the format YYYY-MM-DD") // nolint:wrapcheck
		}

		req.Date = &date
	}

	if raw := r.URL.Query().Get(constant.RequestParamOrderNumber); raw != "" {
		orderNumber, parseErr := shared.ConvertStringToInt64(raw)
		if parseErr != nil {
			return req, failure.BadRequestFromString("order_number must be numeric") // nolint:wrapcheck
		}

		req.OrderNumber = &orderNumber
	}

	return req, nil
}
