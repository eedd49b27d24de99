package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	bookingModel "stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/report/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/logger"
)

// SalesQuery bounds are inclusive and compare against booking creation time.
// Page and Limit are 1-indexed; both must be positive for pagination to apply.
type SalesQuery struct {
	TenantID  string
	StartDate *time.Time
	EndDate   *time.Time
	SortDir   string
	Page      int
	Limit     int
}

type Report interface {
	SalesRows(ctx context.Context, query SalesQuery) ([]model.SalesRow, error)
	SalesTotals(ctx context.Context, query SalesQuery) (model.SalesTotals, error)
	RoomTypeRows(ctx context.Context, tenantID string) ([]model.RoomTypeRow, error)
	OccupancyRows(ctx context.Context, tenantID string) ([]model.OccupancyRow, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// salesSortDir orders oldest first unless descending is asked for explicitly.
func salesSortDir(dir string) string {
	if strings.EqualFold(dir, gDto.SortDirDesc) {
		return gDto.SortDirDesc
	}

	return gDto.SortDirAsc
}

func buildSalesWhere(query SalesQuery) (string, map[string]any) {
	clauses := []string{"p.tenant_id = :tenant_id"}
	args := map[string]any{
		"tenant_id": query.TenantID,
		"confirmed": string(bookingModel.StatusConfirmed),
	}

	if query.StartDate != nil {
		clauses = append(clauses, "b.created_at >= :start_date")
		args["start_date"] = *query.StartDate
	}

	if query.EndDate != nil {
		clauses = append(clauses, "b.created_at <= :end_date")
		args["end_date"] = *query.EndDate
	}

	return strings.Join(clauses, " AND "), args
}

// SalesRows returns one page of the tenant's bookings that reached CONFIRMED
// at least once, regardless of where the lifecycle went afterwards. Statuses
// collects every distinct state the booking has visited. Ordering defaults to
// oldest first.
func (repo *repositoryImpl) SalesRows(ctx context.Context, query SalesQuery) ([]model.SalesRow, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.SalesRows")
	defer scope.End()

	where, args := buildSalesWhere(query)
	sortDir := salesSortDir(query.SortDir)

	sqlQuery := fmt.Sprintf(`
		SELECT b.id AS booking_id, p.name AS property_name, rt.name AS room_type_name,
		       COALESCE(u.full_name, u.email) AS customer_name,
		       b.check_in, b.check_out, b.room_qty,
		       b.price, b.created_at,
		       (SELECT string_agg(DISTINCT e.status, ',')
		        FROM booking_status_events e
		        WHERE e.booking_id = b.id) AS statuses
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		JOIN room_types rt ON rt.id = b.room_type_id
		JOIN users u ON u.id = b.customer_id
		WHERE %s
		  AND EXISTS (
			SELECT 1 FROM booking_status_events e
			WHERE e.booking_id = b.id AND e.status = :confirmed
		  )
		ORDER BY b.created_at %s`, where, sortDir)

	if query.Page > 0 && query.Limit > 0 {
		args["limit"] = query.Limit
		args["offset"] = (query.Page - 1) * query.Limit
		sqlQuery += ` LIMIT :limit OFFSET :offset`
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	var rows []model.SalesRow

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, sqlQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get sales rows (%s): %w", model.EntityName, err)
	}

	return rows, nil
}

// SalesTotals aggregates the whole filtered set, so revenue and booking count
// stay unaffected by the page being served.
func (repo *repositoryImpl) SalesTotals(ctx context.Context, query SalesQuery) (model.SalesTotals, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.SalesTotals")
	defer scope.End()

	where, args := buildSalesWhere(query)

	sqlQuery := fmt.Sprintf(`
		SELECT COUNT(*) AS total_bookings, COALESCE(SUM(b.price), 0) AS total_revenue
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		WHERE %s
		  AND EXISTS (
			SELECT 1 FROM booking_status_events e
			WHERE e.booking_id = b.id AND e.status = :confirmed
		  )`, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	var totals model.SalesTotals

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, sqlQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return totals, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.GetContext(ctx, &totals, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return totals, fmt.Errorf("failed to get sales totals (%s): %w", model.EntityName, err)
	}

	return totals, nil
}

func (repo *repositoryImpl) RoomTypeRows(ctx context.Context, tenantID string) ([]model.RoomTypeRow, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.RoomTypeRows")
	defer scope.End()

	query := `
		SELECT p.id AS property_id, p.name AS property_name,
		       rt.id AS room_type_id, rt.name AS room_type_name, rt.qty
		FROM properties p
		JOIN room_types rt ON rt.property_id = p.id
		WHERE p.tenant_id = $1
		ORDER BY p.name ASC, rt.name ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.RoomTypeRow

	if err := repo.db.Read.SelectContext(ctx, &rows, query, tenantID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get room type rows (%s): %w", model.EntityName, err)
	}

	return rows, nil
}

// OccupancyRows returns every tenant booking with its derived latest status,
// canceled ones included. Partitioning into active and canceled happens in
// the service.
func (repo *repositoryImpl) OccupancyRows(ctx context.Context, tenantID string) ([]model.OccupancyRow, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.OccupancyRows")
	defer scope.End()

	query := `
		SELECT b.id AS booking_id, p.id AS property_id, p.name AS property_name,
		       rt.id AS room_type_id, rt.name AS room_type_name,
		       b.room_qty, b.check_in, b.check_out,
		       ls.status AS current_status
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		JOIN room_types rt ON rt.id = b.room_type_id
		JOIN LATERAL (
			SELECT e.status
			FROM booking_status_events e
			WHERE e.booking_id = b.id
			ORDER BY e.created_at DESC, e.id DESC
			LIMIT 1
		) ls ON TRUE
		WHERE p.tenant_id = $1
		ORDER BY b.created_at DESC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.OccupancyRow

	if err := repo.db.Read.SelectContext(ctx, &rows, query, tenantID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get occupancy rows (%s): %w", model.EntityName, err)
	}

	return rows, nil
}
