package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stayhub/config"
	"stayhub/infras/otel"
	"stayhub/infras/s3"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/repository"
	propertyModel "stayhub/internal/domains/property/model"
	propertyRepo "stayhub/internal/domains/property/repository"
	roomTypeModel "stayhub/internal/domains/roomtype/model"
	roomTypeRepo "stayhub/internal/domains/roomtype/repository"
	"stayhub/internal/events"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheReport        = "report:gets"
)

const proofDirectory = "proof-of-payment"

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	UploadProof(ctx context.Context, bookingID int64, file multipart.File, fileHeader *multipart.FileHeader) (dto.BookingResponse, error)
	Confirm(ctx context.Context, bookingID int64) (dto.BookingResponse, error)
	CancelByCustomer(ctx context.Context, bookingID int64) (dto.BookingResponse, error)
	CancelByTenant(ctx context.Context, bookingID int64) (dto.BookingResponse, error)
	Get(ctx context.Context, bookingID int64) (dto.BookingResponse, error)
	ListForCustomer(ctx context.Context, params gDto.QueryParams, req dto.ListOrdersRequest) (dto.GetBookingsResponse, error)
	ListForTenant(ctx context.Context, params gDto.QueryParams, req dto.ListOrdersRequest) (dto.GetBookingsResponse, error)
	ExpireUnpaid(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomTypeRepo roomTypeRepo.RoomType
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
	publisher    events.Publisher
}

func New(
	repo repository.Booking,
	roomTypeRepo roomTypeRepo.RoomType,
	propertyRepo propertyRepo.Property,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	publisher events.Publisher,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
		publisher:    publisher,
	}
}

func (s *serviceImpl) paymentWindow() time.Duration {
	return time.Duration(s.cfg.Booking.PaymentWindowMinutes) * time.Minute
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(req.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty || roomType.PropertyID != req.PropertyID {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	price := roomType.Price * float64(req.RoomQty) * float64(nights)
	booking := req.ToModel(customerID, checkIn, checkOut, price)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to open reservation transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back reservation transaction")
			}
		}
	}()

	// Availability is checked under a room-type row lock inside the same
	// transaction as the insert, so two concurrent reservations cannot both
	// take the last room.
	qty, err := s.repo.LockRoomTypeQtyTx(ctx, tx, req.RoomTypeID)
	if err != nil {
		return res, fmt.Errorf("failed to lock room type inventory: %w", err)
	}

	occupied, err := s.repo.CountOverlappingActiveTx(ctx, tx, req.RoomTypeID, checkIn, checkOut)
	if err != nil {
		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if qty-occupied < req.RoomQty {
		err = failure.Conflict("not enough rooms available for the requested dates")

		return res, err // nolint:wrapcheck
	}

	bookingID, err := s.repo.InsertReturningTx(ctx, tx, booking)
	if err != nil {
		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	err = s.repo.AppendStatusTx(ctx, tx, model.StatusEvent{
		BookingID: bookingID,
		Status:    model.StatusWaitingForPayment,
		CreatedAt: timezone.Now(),
	})
	if err != nil {
		return res, fmt.Errorf("failed to record initial booking status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit reservation transaction")

		return res, fmt.Errorf("failed to commit reservation: %w", err)
	}

	s.afterStatusChange(ctx, bookingID, model.StatusWaitingForPayment)

	return s.Get(ctx, bookingID)
}

func (s *serviceImpl) UploadProof(ctx context.Context, bookingID int64, file multipart.File, fileHeader *multipart.FileHeader) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadProof")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if file == nil || fileHeader == nil {
		return res, failure.BadRequestFromString("proof of payment file is required") // nolint:wrapcheck
	}

	booking, err := s.repo.GetWithStatus(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.CustomerID != userID {
		return res, failure.Forbidden("booking belongs to another customer") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCanceled {
		return res, failure.Conflict("booking is canceled") // nolint:wrapcheck
	}

	fileName := uuid.NewString()
	if parts := strings.Split(fileHeader.Filename, "."); len(parts) > 1 {
		fileName = fmt.Sprintf("%s.%s", fileName, parts[len(parts)-1])
	}

	proofURL, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, proofDirectory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload proof of payment")

		return res, fmt.Errorf("failed to upload proof of payment: %w", err)
	}

	err = s.attachProof(ctx, bookingID, proofURL, userID)
	if err != nil {
		// Keep the file lifecycle tied to the booking write: a proof that
		// never reached the row is deleted again.
		if delErr := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, proofDirectory, fileName); delErr != nil {
			log.Error().Err(delErr).Str("file", fileName).Msg("failed to delete orphaned proof of payment")
		}

		return res, err
	}

	s.afterStatusChange(ctx, bookingID, model.StatusWaitingForConfirmation)

	return s.Get(ctx, bookingID)
}

func (s *serviceImpl) attachProof(ctx context.Context, bookingID int64, proofURL, userID string) (err error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open payment transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back payment transaction")
			}
		}
	}()

	booking, err := s.repo.GetWithStatusForUpdateTx(ctx, tx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCanceled {
		return failure.Conflict("booking is canceled") // nolint:wrapcheck
	}

	if err = s.repo.SetProofTx(ctx, tx, bookingID, proofURL, userID); err != nil {
		return fmt.Errorf("failed to store proof of payment: %w", err)
	}

	err = s.repo.AppendStatusTx(ctx, tx, model.StatusEvent{
		BookingID: bookingID,
		Status:    model.StatusWaitingForConfirmation,
		CreatedAt: timezone.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to record payment status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit payment transaction")

		return fmt.Errorf("failed to commit payment: %w", err)
	}

	return nil
}

func (s *serviceImpl) Confirm(ctx context.Context, bookingID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenantID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to open confirmation transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back confirmation transaction")
			}
		}
	}()

	booking, err := s.repo.GetWithStatusForUpdateTx(ctx, tx, bookingID)
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	owned, err := s.ownsProperty(ctx, tenantID, booking.PropertyID)
	if err != nil {
		return res, err
	}

	if !owned {
		return res, failure.Forbidden("booking belongs to another tenant's property") // nolint:wrapcheck
	}

	if booking.Status != model.StatusWaitingForConfirmation {
		return res, failure.Conflict("booking is not awaiting confirmation") // nolint:wrapcheck
	}

	err = s.repo.AppendStatusTx(ctx, tx, model.StatusEvent{
		BookingID: bookingID,
		Status:    model.StatusConfirmed,
		CreatedAt: timezone.Now(),
	})
	if err != nil {
		return res, fmt.Errorf("failed to record confirmation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit confirmation transaction")

		return res, fmt.Errorf("failed to commit confirmation: %w", err)
	}

	s.afterStatusChange(ctx, bookingID, model.StatusConfirmed)

	return s.Get(ctx, bookingID)
}

// CancelByCustomer enforces the self-service rules: the requester must own
// the booking, no payment proof may exist, and the fixed payment window
// since creation must still be open. The deadline depends only on creation
// time, never on the current status.
func (s *serviceImpl) CancelByCustomer(ctx context.Context, bookingID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelByCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to open cancellation transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back cancellation transaction")
			}
		}
	}()

	booking, err := s.repo.GetWithStatusForUpdateTx(ctx, tx, bookingID)
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.CustomerID != customerID {
		return res, failure.Forbidden("booking belongs to another customer") // nolint:wrapcheck
	}

	if booking.ProofOfPayment != nil {
		return res, failure.Conflict("booking already paid") // nolint:wrapcheck
	}

	if timezone.Now().After(booking.CreatedAt.Add(s.paymentWindow())) {
		return res, failure.Conflict("cancellation deadline passed") // nolint:wrapcheck
	}

	err = s.repo.AppendStatusTx(ctx, tx, model.StatusEvent{
		BookingID: bookingID,
		Status:    model.StatusCanceled,
		CreatedAt: timezone.Now(),
	})
	if err != nil {
		return res, fmt.Errorf("failed to record cancellation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit cancellation transaction")

		return res, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	s.afterStatusChange(ctx, bookingID, model.StatusCanceled)

	return s.Get(ctx, bookingID)
}

// CancelByTenant appends CANCELED unconditionally. Tenants need authority to
// cancel at any stage (no-shows, disputes), so beyond the role gate on the
// route neither ownership, payment state nor the clock is consulted. Repeated
// calls append further events while the derived status stays CANCELED.
func (s *serviceImpl) CancelByTenant(ctx context.Context, bookingID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelByTenant")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to open cancellation transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back cancellation transaction")
			}
		}
	}()

	booking, err := s.repo.GetWithStatusForUpdateTx(ctx, tx, bookingID)
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	err = s.repo.AppendStatusTx(ctx, tx, model.StatusEvent{
		BookingID: bookingID,
		Status:    model.StatusCanceled,
		CreatedAt: timezone.Now(),
	})
	if err != nil {
		return res, fmt.Errorf("failed to record cancellation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit cancellation transaction")

		return res, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	s.afterStatusChange(ctx, bookingID, model.StatusCanceled)

	return s.Get(ctx, bookingID)
}

func (s *serviceImpl) Get(ctx context.Context, bookingID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.GetWithStatus(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ListForCustomer(ctx context.Context, params gDto.QueryParams, req dto.ListOrdersRequest) (dto.GetBookingsResponse, error) {
	return s.list(ctx, params, repository.ListQuery{
		CustomerID:  req.CustomerID,
		Date:        req.Date,
		OrderNumber: req.OrderNumber,
		Status:      req.Status,
	})
}

func (s *serviceImpl) ListForTenant(ctx context.Context, params gDto.QueryParams, req dto.ListOrdersRequest) (dto.GetBookingsResponse, error) {
	return s.list(ctx, params, repository.ListQuery{
		TenantID: req.TenantID,
		Status:   req.Status,
	})
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, query repository.ListQuery) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllBooking, fmt.Sprintf("%+v", params), fmt.Sprintf("%+v", query))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.CountWithStatus(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.ListWithStatus(ctx, params, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Page, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// ExpireUnpaid cancels every booking still waiting for payment past the
// payment window. It backs the scheduler sweep; the same window also guards
// customer self-service cancellation.
func (s *serviceImpl) ExpireUnpaid(ctx context.Context) (expired int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpireUnpaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	cutoff := timezone.Now().Add(-s.paymentWindow())

	stale, err := s.repo.ListExpiredUnpaid(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("failed to list expired unpaid bookings")

		return 0, fmt.Errorf("failed to list expired unpaid bookings: %w", err)
	}

	for _, booking := range stale {
		if err := s.expireOne(ctx, booking.ID); err != nil {
			log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to expire unpaid booking")

			continue
		}

		expired++
	}

	if expired > 0 {
		s.invalidateListings(ctx)
	}

	return expired, nil
}

func (s *serviceImpl) expireOne(ctx context.Context, bookingID int64) (err error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open expiry transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back expiry transaction")
			}
		}
	}()

	booking, err := s.repo.GetWithStatusForUpdateTx(ctx, tx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}

	// Re-check under the lock: a proof upload may have landed since the scan.
	if booking.ID == 0 || booking.Status != model.StatusWaitingForPayment || booking.ProofOfPayment != nil {
		return tx.Rollback() // nolint:wrapcheck
	}

	err = s.repo.AppendStatusTx(ctx, tx, model.StatusEvent{
		BookingID: bookingID,
		Status:    model.StatusCanceled,
		CreatedAt: timezone.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to record expiry cancellation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expiry: %w", err)
	}

	s.publisher.PublishStatusChange(ctx, bookingID, model.StatusCanceled)

	return nil
}

func (s *serviceImpl) ownsProperty(ctx context.Context, tenantID, propertyID string) (bool, error) {
	prop, err := s.propertyRepo.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return false, fmt.Errorf("failed to get property: %w", err)
	}

	return prop.ID != constant.Empty && prop.TenantID == tenantID, nil
}

func (s *serviceImpl) afterStatusChange(ctx context.Context, bookingID int64, status model.Status) {
	s.publisher.PublishStatusChange(ctx, bookingID, status)
	s.invalidateListings(ctx)
}

func (s *serviceImpl) invalidateListings(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheReport)
	}()
}
