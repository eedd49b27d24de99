package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/internal/domains/booking/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/logger"
	gRepo "stayhub/shared/repository"
)

// selectWithStatus joins each booking with its single latest status event.
// The lateral limit-1 keeps "current status = newest event" in one place.
const selectWithStatus = `
SELECT b.id, b.customer_id, b.property_id, b.room_type_id, b.check_in, b.check_out,
       b.room_qty, b.price, b.payment_method, b.proof_of_payment,
       b.created_at, b.modified_at, b.created_by, b.modified_by,
       ls.status AS current_status, ls.created_at AS status_created_at
FROM bookings b
JOIN LATERAL (
    SELECT e.status, e.created_at
    FROM booking_status_events e
    WHERE e.booking_id = b.id
    ORDER BY e.created_at DESC, e.id DESC
    LIMIT 1
) ls ON TRUE`

// ListQuery narrows the Order Query Service result set. CANCELED bookings
// are excluded unless Status explicitly asks for them.
type ListQuery struct {
	CustomerID  string
	TenantID    string
	Date        *time.Time
	OrderNumber *int64
	Status      *model.Status
}

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	InsertReturningTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (int64, error)
	LockRoomTypeQtyTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string) (int, error)
	CountOverlappingActiveTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, checkIn, checkOut time.Time) (int, error)
	AppendStatusTx(ctx context.Context, tx *sqlx.Tx, event model.StatusEvent) error
	SetProofTx(ctx context.Context, tx *sqlx.Tx, bookingID int64, proofURL, modifiedBy string) error
	GetWithStatus(ctx context.Context, id int64) (model.BookingWithStatus, error)
	GetWithStatusForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (model.BookingWithStatus, error)
	GetStatusHistory(ctx context.Context, id int64) ([]model.StatusEvent, error)
	ListWithStatus(ctx context.Context, params gDto.QueryParams, query ListQuery) ([]model.BookingWithStatus, error)
	CountWithStatus(ctx context.Context, query ListQuery) (int, error)
	ListExpiredUnpaid(ctx context.Context, cutoff time.Time) ([]model.BookingWithStatus, error)
	HasCheckedOutStay(ctx context.Context, customerID, propertyID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	return tx, nil
}

func (repo *repositoryImpl) InsertReturningTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertReturningTx")
	defer scope.End()

	query := `
		INSERT INTO bookings
			(customer_id, property_id, room_type_id, check_in, check_out, room_qty,
			 price, payment_method, created_at, modified_at, created_by, modified_by)
		VALUES
			(:customer_id, :property_id, :room_type_id, :check_in, :check_out, :room_qty,
			 :price, :payment_method, :created_at, :modified_at, :created_by, :modified_by)
		RETURNING id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := tx.NamedQuery(query, booking)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return 0, fmt.Errorf("failed to scan inserted id (%s): %w", model.EntityName, err)
		}
	}

	return id, nil
}

// LockRoomTypeQtyTx takes a row lock on the room type so concurrent
// reservations for the same inventory serialize on the availability check.
func (repo *repositoryImpl) LockRoomTypeQtyTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.LockRoomTypeQtyTx")
	defer scope.End()

	query := `SELECT qty FROM room_types WHERE id = $1 FOR UPDATE`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var qty int

	err := tx.GetContext(ctx, &qty, query, roomTypeID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to lock room type (%s): %w", model.EntityName, err)
	}

	return qty, nil
}

func (repo *repositoryImpl) CountOverlappingActiveTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, checkIn, checkOut time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlappingActiveTx")
	defer scope.End()

	query := `
		SELECT COALESCE(SUM(b.room_qty), 0)
		FROM bookings b
		JOIN LATERAL (
			SELECT e.status
			FROM booking_status_events e
			WHERE e.booking_id = b.id
			ORDER BY e.created_at DESC, e.id DESC
			LIMIT 1
		) ls ON TRUE
		WHERE b.room_type_id = $1
		  AND b.check_in < $3
		  AND b.check_out > $2
		  AND ls.status = ANY($4)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var occupied int

	err := tx.GetContext(ctx, &occupied, query, roomTypeID, checkIn, checkOut, pq.Array(model.ActiveStatuses()))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count overlapping bookings (%s): %w", model.EntityName, err)
	}

	return occupied, nil
}

func (repo *repositoryImpl) AppendStatusTx(ctx context.Context, tx *sqlx.Tx, event model.StatusEvent) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.AppendStatusTx")
	defer scope.End()

	query := `INSERT INTO booking_status_events (booking_id, status, created_at) VALUES (:booking_id, :status, :created_at)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.NamedExecContext(ctx, query, event); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to append status event (%s): %w", model.StatusEventEntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) SetProofTx(ctx context.Context, tx *sqlx.Tx, bookingID int64, proofURL, modifiedBy string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SetProofTx")
	defer scope.End()

	query := `UPDATE bookings SET proof_of_payment = $1, modified_at = NOW(), modified_by = $2 WHERE id = $3`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.ExecContext(ctx, query, proofURL, modifiedBy, bookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to set proof of payment (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetWithStatus(ctx context.Context, id int64) (model.BookingWithStatus, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetWithStatus")
	defer scope.End()

	query := selectWithStatus + ` WHERE b.id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var booking model.BookingWithStatus

	err := repo.db.Read.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return booking, nil
}

// GetWithStatusForUpdateTx reads a booking and its derived status while
// holding a row lock, so the decide-append sequence cannot race another
// cancellation or a proof upload.
func (repo *repositoryImpl) GetWithStatusForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (model.BookingWithStatus, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetWithStatusForUpdateTx")
	defer scope.End()

	lockQuery := `SELECT id FROM bookings WHERE id = $1 FOR UPDATE`
	scope.SetAttribute(constant.OtelQueryAttributeKey, lockQuery)

	var lockedID int64

	err := tx.GetContext(ctx, &lockedID, lockQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.BookingWithStatus{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.BookingWithStatus{}, fmt.Errorf("failed to lock booking (%s): %w", model.EntityName, err)
	}

	var booking model.BookingWithStatus

	err = tx.GetContext(ctx, &booking, selectWithStatus+` WHERE b.id = $1`, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return booking, nil
}

func (repo *repositoryImpl) GetStatusHistory(ctx context.Context, id int64) ([]model.StatusEvent, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetStatusHistory")
	defer scope.End()

	query := `SELECT id, booking_id, status, created_at FROM booking_status_events WHERE booking_id = $1 ORDER BY created_at ASC, id ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var events []model.StatusEvent

	if err := repo.db.Read.SelectContext(ctx, &events, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get status history (%s): %w", model.StatusEventEntityName, err)
	}

	return events, nil
}

func (repo *repositoryImpl) ListWithStatus(ctx context.Context, params gDto.QueryParams, query ListQuery) ([]model.BookingWithStatus, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListWithStatus")
	defer scope.End()

	where, args := buildListWhere(query)

	sqlQuery := selectWithStatus + where + ` ORDER BY b.created_at DESC`

	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit
		sqlQuery += ` LIMIT :limit OFFSET :offset`
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	var bookings []model.BookingWithStatus

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, sqlQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &bookings, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) CountWithStatus(ctx context.Context, query ListQuery) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountWithStatus")
	defer scope.End()

	where, args := buildListWhere(query)

	sqlQuery := `
		SELECT COUNT(b.id)
		FROM bookings b
		JOIN LATERAL (
			SELECT e.status, e.created_at
			FROM booking_status_events e
			WHERE e.booking_id = b.id
			ORDER BY e.created_at DESC, e.id DESC
			LIMIT 1
		) ls ON TRUE` + where
	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	var count int

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, sqlQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", model.EntityName, err)
	}

	return count, nil
}

func (repo *repositoryImpl) ListExpiredUnpaid(ctx context.Context, cutoff time.Time) ([]model.BookingWithStatus, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListExpiredUnpaid")
	defer scope.End()

	query := selectWithStatus + `
		WHERE ls.status = $1
		  AND b.proof_of_payment IS NULL
		  AND b.created_at < $2`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.BookingWithStatus

	if err := repo.db.Read.SelectContext(ctx, &bookings, query, model.StatusWaitingForPayment, cutoff); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list expired unpaid bookings (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}

// HasCheckedOutStay reports whether the customer has a confirmed booking for
// the property whose stay already ended. Reviews require one.
func (repo *repositoryImpl) HasCheckedOutStay(ctx context.Context, customerID, propertyID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.HasCheckedOutStay")
	defer scope.End()

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bookings b
			WHERE b.customer_id = $1
			  AND b.property_id = $2
			  AND b.check_out < NOW()
			  AND EXISTS (
				SELECT 1 FROM booking_status_events e
				WHERE e.booking_id = b.id AND e.status = $3
			  )
		)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var exists bool

	if err := repo.db.Read.GetContext(ctx, &exists, query, customerID, propertyID, model.StatusConfirmed); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check stays (%s): %w", model.EntityName, err)
	}

	return exists, nil
}

func buildListWhere(query ListQuery) (string, map[string]any) {
	clauses := []string{}
	args := map[string]any{}

	if query.CustomerID != "" {
		clauses = append(clauses, "b.customer_id = :customer_id")
		args["customer_id"] = query.CustomerID
	}

	if query.TenantID != "" {
		clauses = append(clauses, "b.property_id IN (SELECT p.id FROM properties p WHERE p.tenant_id = :tenant_id)")
		args["tenant_id"] = query.TenantID
	}

	if query.Date != nil {
		clauses = append(clauses, "b.check_in >= :check_in_from")
		args["check_in_from"] = *query.Date
	}

	if query.OrderNumber != nil {
		clauses = append(clauses, "b.id = :order_number")
		args["order_number"] = *query.OrderNumber
	}

	if query.Status != nil {
		clauses = append(clauses, "ls.status = :status")
		args["status"] = string(*query.Status)
	} else {
		// Canceled bookings stay out of listings unless asked for.
		clauses = append(clauses, "ls.status != :excluded_status")
		args["excluded_status"] = string(model.StatusCanceled)
	}

	if len(clauses) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
