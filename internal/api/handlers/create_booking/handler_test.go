package create_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcmarket/booking-engine/internal/api/middleware"
	"github.com/svcmarket/booking-engine/internal/domain"
	createBooking "github.com/svcmarket/booking-engine/internal/usecase/create_booking"
)

type stubUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"priceCardId":"card-1","addressId":"address-1","date":"2025-10-07","startTime":"10:00"}`

func doRequest(uc *stubUseCase, userID, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()

	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:              "booking-1",
		BookingRef:      "7XK3MNPQ",
		ProviderID:      "provider-1",
		PriceCardID:     "card-1",
		AddressID:       "address-1",
		ScheduledAt:     time.Date(2025, 10, 7, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Subtotal:        6000,
		Total:           6000,
		Currency:        "CAD",
		Status:          domain.BookingStatusPending,
	}}

	rec := doRequest(uc, "customer-1", validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bookingRef":"7XK3MNPQ"`)
	assert.Contains(t, rec.Body.String(), `"startTime":"10:00"`)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "customer-1", uc.gotReq.CustomerID, "customer id must come from the auth header")
}

func TestHandleWithoutAuth(t *testing.T) {
	rec := doRequest(&stubUseCase{}, "", validBody)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleMalformedBody(t *testing.T) {
	rec := doRequest(&stubUseCase{}, "customer-1", `{"priceCardId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBadDate(t *testing.T) {
	body := `{"priceCardId":"card-1","addressId":"address-1","date":"07.10.2025","startTime":"10:00"}`
	rec := doRequest(&stubUseCase{}, "customer-1", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"price card not found", createBooking.ErrPriceCardNotFound, http.StatusNotFound},
		{"price card inactive", createBooking.ErrPriceCardInactive, http.StatusConflict},
		{"address not found", createBooking.ErrAddressNotFound, http.StatusNotFound},
		{"invalid slot", createBooking.ErrInvalidSlot, http.StatusConflict},
		{"slot conflict", createBooking.ErrSlotConflict, http.StatusConflict},
		{"internal error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(&stubUseCase{err: tt.err}, "customer-1", validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
