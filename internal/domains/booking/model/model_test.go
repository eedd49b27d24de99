package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   Status
		wantOk bool
	}{
		{
			name:   "waiting for payment",
			value:  "WAITING_FOR_PAYMENT",
			want:   StatusWaitingForPayment,
			wantOk: true,
		},
		{
			name:   "waiting for confirmation",
			value:  "WAITING_FOR_CONFIRMATION",
			want:   StatusWaitingForConfirmation,
			wantOk: true,
		},
		{
			name:   "confirmed",
			value:  "CONFIRMED",
			want:   StatusConfirmed,
			wantOk: true,
		},
		{
			name:   "canceled",
			value:  "CANCELED",
			want:   StatusCanceled,
			wantOk: true,
		},
		{
			name:   "unknown value",
			value:  "PAID",
			wantOk: false,
		},
		{
			name:   "lowercase is rejected",
			value:  "confirmed",
			wantOk: false,
		},
		{
			name:   "empty string",
			value:  "",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStatus(tt.value)

			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActiveStatuses(t *testing.T) {
	statuses := ActiveStatuses()

	assert.Len(t, statuses, 3)
	assert.Contains(t, statuses, string(StatusWaitingForPayment))
	assert.Contains(t, statuses, string(StatusWaitingForConfirmation))
	assert.Contains(t, statuses, string(StatusConfirmed))
	assert.NotContains(t, statuses, string(StatusCanceled))
}

func TestCurrentStatus(t *testing.T) {
	base := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		events []StatusEvent
		want   Status
		wantOk bool
	}{
		{
			name:   "empty history",
			events: []StatusEvent{},
			wantOk: false,
		},
		{
			name: "single event",
			events: []StatusEvent{
				{ID: 1, BookingID: 7, Status: StatusWaitingForPayment, CreatedAt: base},
			},
			want:   StatusWaitingForPayment,
			wantOk: true,
		},
		{
			name: "newest created_at wins regardless of order",
			events: []StatusEvent{
				{ID: 3, BookingID: 7, Status: StatusConfirmed, CreatedAt: base.Add(2 * time.Hour)},
				{ID: 1, BookingID: 7, Status: StatusWaitingForPayment, CreatedAt: base},
				{ID: 2, BookingID: 7, Status: StatusWaitingForConfirmation, CreatedAt: base.Add(time.Hour)},
			},
			want:   StatusConfirmed,
			wantOk: true,
		},
		{
			name: "greater id breaks created_at ties",
			events: []StatusEvent{
				{ID: 5, BookingID: 7, Status: StatusCanceled, CreatedAt: base},
				{ID: 4, BookingID: 7, Status: StatusConfirmed, CreatedAt: base},
			},
			want:   StatusCanceled,
			wantOk: true,
		},
		{
			name: "later created_at beats greater id",
			events: []StatusEvent{
				{ID: 9, BookingID: 7, Status: StatusWaitingForPayment, CreatedAt: base},
				{ID: 2, BookingID: 7, Status: StatusCanceled, CreatedAt: base.Add(time.Minute)},
			},
			want:   StatusCanceled,
			wantOk: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurrentStatus(tt.events)

			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "single night",
			checkIn:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "week long stay",
			checkIn:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
			want:     7,
		},
		{
			name:     "stay across a month boundary",
			checkIn:  time.Date(2026, time.January, 30, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{CheckIn: tt.checkIn, CheckOut: tt.checkOut}

			assert.Equal(t, tt.want, booking.Nights())
		})
	}
}
