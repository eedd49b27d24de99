package service_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	"stayhub/infras/otel/mocks"
	s3Mocks "stayhub/infras/s3/mocks"
	bookingMocks "stayhub/internal/domains/booking/mocks"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/service"
	propertyMocks "stayhub/internal/domains/property/mocks"
	propertyModel "stayhub/internal/domains/property/model"
	roomTypeMocks "stayhub/internal/domains/roomtype/mocks"
	roomTypeModel "stayhub/internal/domains/roomtype/model"
	eventMocks "stayhub/internal/events/mocks"
	cacheMocks "stayhub/shared/cache/mocks"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"
)

// txDriver hands out transactions that commit and roll back without a real
// database, so the transactional flows can run against mocked repositories.
type txDriver struct{}

func (txDriver) Open(string) (driver.Conn, error) { return &txConn{}, nil }

type txConn struct{}

func (*txConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (*txConn) Close() error                        { return nil }
func (*txConn) Begin() (driver.Tx, error)           { return txStub{}, nil }

type txStub struct{}

func (txStub) Commit() error   { return nil }
func (txStub) Rollback() error { return nil }

func init() {
	sql.Register("txstub", txDriver{})
}

type fakeFile struct{}

func (fakeFile) Read([]byte) (int, error)          { return 0, io.EOF }
func (fakeFile) ReadAt([]byte, int64) (int, error) { return 0, io.EOF }
func (fakeFile) Seek(int64, int) (int64, error)    { return 0, nil }
func (fakeFile) Close() error                      { return nil }

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

type testDeps struct {
	repo         *bookingMocks.MockBooking
	roomTypeRepo *roomTypeMocks.MockRoomType
	propertyRepo *propertyMocks.MockProperty
	cache        *cacheMocks.MockRedisCache
	s3           *s3Mocks.MockS3
	publisher    *eventMocks.MockPublisher
	svc          service.Booking
	beginTx      func(context.Context) (*sqlx.Tx, error)
}

func newTestDeps(t *testing.T, ctrl *gomock.Controller) testDeps {
	t.Helper()

	db, err := sqlx.Open("txstub", "")
	if err != nil {
		t.Fatalf("failed to open stub database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Booking.PaymentWindowMinutes = 60
	cfg.Cache.TTL = 3600

	deps := testDeps{
		repo:         bookingMocks.NewMockBooking(ctrl),
		roomTypeRepo: roomTypeMocks.NewMockRoomType(ctrl),
		propertyRepo: propertyMocks.NewMockProperty(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		s3:           s3Mocks.NewMockS3(ctrl),
		publisher:    eventMocks.NewMockPublisher(ctrl),
		beginTx: func(ctx context.Context) (*sqlx.Tx, error) {
			return db.BeginTxx(ctx, nil)
		},
	}

	deps.svc = service.New(
		deps.repo,
		deps.roomTypeRepo,
		deps.propertyRepo,
		cfg,
		deps.cache,
		mocks.NewOtel(),
		deps.s3,
		deps.publisher,
	)

	return deps
}

func customerCtx(customerID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, customerID)
}

func bookingFixture(id int64, customerID string, status model.Status) model.BookingWithStatus {
	return model.BookingWithStatus{
		Booking: model.Booking{
			ID:            id,
			CustomerID:    customerID,
			PropertyID:    "property-1",
			RoomTypeID:    "room-type-1",
			CheckIn:       timezone.Now().AddDate(0, 0, 7),
			CheckOut:      timezone.Now().AddDate(0, 0, 9),
			RoomQty:       1,
			Price:         500,
			PaymentMethod: "manual_transfer",
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  customerID,
				ModifiedBy: customerID,
			},
		},
		Status:          status,
		StatusCreatedAt: timezone.Now(),
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestDeps(t, ctrl)

	roomType := roomTypeModel.RoomType{
		ID:         "room-type-1",
		PropertyID: "property-1",
		Name:       "Deluxe",
		Qty:        3,
		Price:      250,
	}

	validReq := dto.CreateBookingRequest{
		PropertyID:    "property-1",
		RoomTypeID:    "room-type-1",
		CheckIn:       "2026-10-01",
		CheckOut:      "2026-10-03",
		RoomQty:       2,
		PaymentMethod: "manual_transfer",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantID    int64
	}{
		{
			name: "invalid date format",
			req: dto.CreateBookingRequest{
				PropertyID: "property-1",
				RoomTypeID: "room-type-1",
				CheckIn:    "01-10-2026",
				CheckOut:   "2026-10-03",
				RoomQty:    1,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "check out before check in",
			req: dto.CreateBookingRequest{
				PropertyID: "property-1",
				RoomTypeID: "room-type-1",
				CheckIn:    "2026-10-03",
				CheckOut:   "2026-10-01",
				RoomQty:    1,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room type not found",
			req:  validReq,
			setupMock: func() {
				deps.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomTypeModel.RoomType{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room type belongs to another property",
			req:  validReq,
			setupMock: func() {
				other := roomType
				other.PropertyID = "property-2"

				deps.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(other, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "not enough rooms available",
			req:  validReq,
			setupMock: func() {
				deps.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomType, nil)

				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					LockRoomTypeQtyTx(gomock.Any(), gomock.Any(), "room-type-1").
					Return(3, nil)

				deps.repo.EXPECT().
					CountOverlappingActiveTx(gomock.Any(), gomock.Any(), "room-type-1", gomock.Any(), gomock.Any()).
					Return(2, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				deps.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomType, nil)

				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					LockRoomTypeQtyTx(gomock.Any(), gomock.Any(), "room-type-1").
					Return(3, nil)

				deps.repo.EXPECT().
					CountOverlappingActiveTx(gomock.Any(), gomock.Any(), "room-type-1", gomock.Any(), gomock.Any()).
					Return(1, nil)

				deps.repo.EXPECT().
					InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) (int64, error) {
						// 2 rooms x 2 nights x 250
						assert.Equal(t, float64(1000), booking.Price)

						return int64(42), nil
					})

				deps.repo.EXPECT().
					AppendStatusTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, event model.StatusEvent) error {
						assert.Equal(t, int64(42), event.BookingID)
						assert.Equal(t, model.StatusWaitingForPayment, event.Status)

						return nil
					})

				deps.publisher.EXPECT().
					PublishStatusChange(gomock.Any(), int64(42), model.StatusWaitingForPayment)

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				deps.repo.EXPECT().
					GetWithStatus(gomock.Any(), int64(42)).
					Return(bookingFixture(42, "customer-1", model.StatusWaitingForPayment), nil)
			},
			wantErr: false,
			wantID:  42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := deps.svc.Create(customerCtx("customer-1"), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, res.ID)
				assert.Equal(t, string(model.StatusWaitingForPayment), res.Status)
			}
		})
	}
}

func TestBookingService_CancelByCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestDeps(t, ctrl)

	proofURL := "https://cdn.example.com/proof.png"

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "booking not found",
			setupMock: func() {
				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(model.BookingWithStatus{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking belongs to another customer",
			setupMock: func() {
				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(bookingFixture(42, "customer-2", model.StatusWaitingForPayment), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "proof of payment already uploaded",
			setupMock: func() {
				booking := bookingFixture(42, "customer-1", model.StatusWaitingForConfirmation)
				booking.ProofOfPayment = &proofURL

				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(booking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "cancellation deadline passed",
			setupMock: func() {
				booking := bookingFixture(42, "customer-1", model.StatusWaitingForPayment)
				booking.CreatedAt = timezone.Now().Add(-2 * time.Hour)

				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(booking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "cancellation just past the deadline conflicts",
			setupMock: func() {
				booking := bookingFixture(42, "customer-1", model.StatusWaitingForPayment)
				booking.CreatedAt = timezone.Now().Add(-60*time.Minute - 2*time.Second)

				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(booking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "cancellation just inside the deadline succeeds",
			setupMock: func() {
				booking := bookingFixture(42, "customer-1", model.StatusWaitingForPayment)
				booking.CreatedAt = timezone.Now().Add(-60*time.Minute + 5*time.Second)

				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(booking, nil)

				deps.repo.EXPECT().
					AppendStatusTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				deps.publisher.EXPECT().
					PublishStatusChange(gomock.Any(), int64(42), model.StatusCanceled)

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				deps.repo.EXPECT().
					GetWithStatus(gomock.Any(), int64(42)).
					Return(bookingFixture(42, "customer-1", model.StatusCanceled), nil)
			},
			wantErr: false,
		},
		{
			name: "successful cancellation within window",
			setupMock: func() {
				booking := bookingFixture(42, "customer-1", model.StatusWaitingForPayment)
				booking.CreatedAt = timezone.Now().Add(-30 * time.Minute)

				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(booking, nil)

				deps.repo.EXPECT().
					AppendStatusTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, event model.StatusEvent) error {
						assert.Equal(t, model.StatusCanceled, event.Status)

						return nil
					})

				deps.publisher.EXPECT().
					PublishStatusChange(gomock.Any(), int64(42), model.StatusCanceled)

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				deps.repo.EXPECT().
					GetWithStatus(gomock.Any(), int64(42)).
					Return(bookingFixture(42, "customer-1", model.StatusCanceled), nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := deps.svc.CancelByCustomer(customerCtx("customer-1"), 42)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, string(model.StatusCanceled), res.Status)
			}
		})
	}
}

func TestBookingService_CancelByTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestDeps(t, ctrl)

	cancelFlow := func(current model.Status) {
		deps.repo.EXPECT().
			BeginTx(gomock.Any()).
			DoAndReturn(deps.beginTx)

		deps.repo.EXPECT().
			GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
			Return(bookingFixture(42, "customer-1", current), nil)

		deps.repo.EXPECT().
			AppendStatusTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, event model.StatusEvent) error {
				assert.Equal(t, model.StatusCanceled, event.Status)

				return nil
			})

		deps.publisher.EXPECT().
			PublishStatusChange(gomock.Any(), int64(42), model.StatusCanceled)

		deps.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		deps.repo.EXPECT().
			GetWithStatus(gomock.Any(), int64(42)).
			Return(bookingFixture(42, "customer-1", model.StatusCanceled), nil)
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "booking not found",
			setupMock: func() {
				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(model.BookingWithStatus{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "cancels a confirmed booking",
			setupMock: func() {
				cancelFlow(model.StatusConfirmed)
			},
			wantErr: false,
		},
		{
			name: "cancels without consulting property ownership",
			setupMock: func() {
				// No property lookup is expected; a booking on any property
				// can be canceled through the tenant route.
				cancelFlow(model.StatusWaitingForConfirmation)
			},
			wantErr: false,
		},
		{
			name: "repeated cancel appends another event and stays canceled",
			setupMock: func() {
				cancelFlow(model.StatusCanceled)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := deps.svc.CancelByTenant(customerCtx("tenant-1"), 42)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, string(model.StatusCanceled), res.Status)
			}
		})
	}
}

func TestBookingService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestDeps(t, ctrl)

	ownedProperty := propertyModel.Property{
		ID:       "property-1",
		TenantID: "tenant-1",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "booking not found",
			setupMock: func() {
				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(model.BookingWithStatus{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking on another tenant's property",
			setupMock: func() {
				other := ownedProperty
				other.TenantID = "tenant-2"

				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(bookingFixture(42, "customer-1", model.StatusWaitingForConfirmation), nil)

				deps.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(other, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "booking not awaiting confirmation",
			setupMock: func() {
				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(bookingFixture(42, "customer-1", model.StatusWaitingForPayment), nil)

				deps.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedProperty, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "confirms a paid booking",
			setupMock: func() {
				deps.repo.EXPECT().
					BeginTx(gomock.Any()).
					DoAndReturn(deps.beginTx)

				deps.repo.EXPECT().
					GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
					Return(bookingFixture(42, "customer-1", model.StatusWaitingForConfirmation), nil)

				deps.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedProperty, nil)

				deps.repo.EXPECT().
					AppendStatusTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, event model.StatusEvent) error {
						assert.Equal(t, model.StatusConfirmed, event.Status)

						return nil
					})

				deps.publisher.EXPECT().
					PublishStatusChange(gomock.Any(), int64(42), model.StatusConfirmed)

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				deps.repo.EXPECT().
					GetWithStatus(gomock.Any(), int64(42)).
					Return(bookingFixture(42, "customer-1", model.StatusConfirmed), nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := deps.svc.Confirm(customerCtx("tenant-1"), 42)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, string(model.StatusConfirmed), res.Status)
			}
		})
	}
}

func TestBookingService_UploadProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestDeps(t, ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "booking not found",
			setupMock: func() {
				deps.repo.EXPECT().
					GetWithStatus(gomock.Any(), int64(42)).
					Return(model.BookingWithStatus{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking belongs to another customer",
			setupMock: func() {
				deps.repo.EXPECT().
					GetWithStatus(gomock.Any(), int64(42)).
					Return(bookingFixture(42, "customer-2", model.StatusWaitingForPayment), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "booking already canceled",
			setupMock: func() {
				deps.repo.EXPECT().
					GetWithStatus(gomock.Any(), int64(42)).
					Return(bookingFixture(42, "customer-1", model.StatusCanceled), nil)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := deps.svc.UploadProof(customerCtx("customer-1"), 42, fakeFile{}, fileHeader("proof.png"))

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := deps.svc.UploadProof(customerCtx("customer-1"), 42, nil, nil)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestDeps(t, ctrl)

	t.Run("booking not found", func(t *testing.T) {
		deps.repo.EXPECT().
			GetWithStatus(gomock.Any(), int64(99)).
			Return(model.BookingWithStatus{}, nil)

		_, err := deps.svc.Get(context.Background(), 99)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("returns booking with derived status", func(t *testing.T) {
		deps.repo.EXPECT().
			GetWithStatus(gomock.Any(), int64(42)).
			Return(bookingFixture(42, "customer-1", model.StatusConfirmed), nil)

		res, err := deps.svc.Get(context.Background(), 42)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), res.ID)
		assert.Equal(t, string(model.StatusConfirmed), res.Status)
	})
}

func TestBookingService_ListForCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestDeps(t, ctrl)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss fetches from repository", func(t *testing.T) {
		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		deps.repo.EXPECT().
			CountWithStatus(gomock.Any(), gomock.Any()).
			Return(1, nil)

		deps.repo.EXPECT().
			ListWithStatus(gomock.Any(), params, gomock.Any()).
			Return([]model.BookingWithStatus{bookingFixture(42, "customer-1", model.StatusWaitingForPayment)}, nil)

		deps.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := deps.svc.ListForCustomer(context.Background(), params, dto.ListOrdersRequest{CustomerID: "customer-1"})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("count error", func(t *testing.T) {
		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		deps.repo.EXPECT().
			CountWithStatus(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := deps.svc.ListForCustomer(context.Background(), params, dto.ListOrdersRequest{CustomerID: "customer-1"})

		assert.Error(t, err)
	})
}

func TestBookingService_ExpireUnpaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestDeps(t, ctrl)

	t.Run("nothing to expire", func(t *testing.T) {
		deps.repo.EXPECT().
			ListExpiredUnpaid(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		expired, err := deps.svc.ExpireUnpaid(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, expired)
	})

	t.Run("expires stale bookings", func(t *testing.T) {
		stale := bookingFixture(42, "customer-1", model.StatusWaitingForPayment)
		stale.CreatedAt = timezone.Now().Add(-2 * time.Hour)

		deps.repo.EXPECT().
			ListExpiredUnpaid(gomock.Any(), gomock.Any()).
			Return([]model.BookingWithStatus{stale}, nil)

		deps.repo.EXPECT().
			BeginTx(gomock.Any()).
			DoAndReturn(deps.beginTx)

		deps.repo.EXPECT().
			GetWithStatusForUpdateTx(gomock.Any(), gomock.Any(), int64(42)).
			Return(stale, nil)

		deps.repo.EXPECT().
			AppendStatusTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		deps.publisher.EXPECT().
			PublishStatusChange(gomock.Any(), int64(42), model.StatusCanceled)

		deps.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		expired, err := deps.svc.ExpireUnpaid(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, expired)
	})

	t.Run("list error", func(t *testing.T) {
		deps.repo.EXPECT().
			ListExpiredUnpaid(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := deps.svc.ExpireUnpaid(context.Background())

		assert.Error(t, err)
	})
}
