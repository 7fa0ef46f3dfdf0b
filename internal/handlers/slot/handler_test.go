package slot_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"scoop/infras/otel/mocks"
	"scoop/internal/domains/slot/model/dto"
	serviceMocks "scoop/internal/domains/slot/service/mocks"
	"scoop/internal/handlers/slot"
	"scoop/shared/failure"
	"scoop/transport/http/response"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*chi.Mux, *serviceMocks.MockSlot) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := serviceMocks.NewMockSlot(ctrl)

	handler := slot.New(service, mocks.NewOtel())

	mux := chi.NewRouter()
	handler.Router(mux)

	return mux, service
}

func TestListOpenSlots(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMock      func(service *serviceMocks.MockSlot)
		expectedStatus int
		expectedSlots  int
	}{
		{
			name:   "open slots for zip",
			target: "/slots/?zip=12345",
			setupMock: func(service *serviceMocks.MockSlot) {
				service.EXPECT().ListOpen(gomock.Any(), "12345").
					Return(dto.ListSlotsResponse{Slots: []dto.SlotResponse{{ID: "s-1"}, {ID: "s-2"}}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedSlots:  2,
		},
		{
			name:           "zip missing",
			target:         "/slots/",
			setupMock:      func(_ *serviceMocks.MockSlot) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "service failure",
			target: "/slots/?zip=12345",
			setupMock: func(service *serviceMocks.MockSlot) {
				service.EXPECT().ListOpen(gomock.Any(), "12345").
					Return(dto.ListSlotsResponse{}, failure.Transient(assert.AnError))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, service := setup(t)
			tt.setupMock(service)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var body response.Data[dto.ListSlotsResponse]
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				require.NotNil(t, body.Data)
				assert.Len(t, body.Data.Slots, tt.expectedSlots)
			}
		})
	}
}

func TestCreateSlot(t *testing.T) {
	valid := `{"is_recurring":false,"date":"2026-11-03","window_start":"09:00","window_end":"11:00","capacity":3,"zip":"12345"}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(service *serviceMocks.MockSlot)
		expectedStatus int
	}{
		{
			name: "created",
			body: valid,
			setupMock: func(service *serviceMocks.MockSlot) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.SlotResponse{ID: "s-1", Capacity: 3}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad window",
			body:           `{"date":"2026-11-03","window_start":"9am","window_end":"11:00","capacity":3,"zip":"12345"}`,
			setupMock:      func(_ *serviceMocks.MockSlot) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero capacity",
			body:           `{"date":"2026-11-03","window_start":"09:00","window_end":"11:00","capacity":0,"zip":"12345"}`,
			setupMock:      func(_ *serviceMocks.MockSlot) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "rejected by service",
			body: valid,
			setupMock: func(service *serviceMocks.MockSlot) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.SlotResponse{}, failure.Validation("window_end must be after window_start"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, service := setup(t)
			tt.setupMock(service)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/slots/", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestDeleteSlot(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedReason string
	}{
		{name: "deleted", expectedStatus: http.StatusOK},
		{name: "not found", err: failure.NotFound("slot"), expectedStatus: http.StatusNotFound, expectedReason: failure.ReasonNotFound},
		{name: "has bookings", err: failure.SlotHasBookings("slot has 2 bookings"), expectedStatus: http.StatusConflict, expectedReason: failure.ReasonSlotHasBookings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, service := setup(t)
			service.EXPECT().Delete(gomock.Any(), "s-1").Return(tt.err)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/slots/s-1", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedReason != "" {
				var body response.Error
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedReason, body.Reason)
			}
		})
	}
}

func TestUpdateSlotStatus(t *testing.T) {
	mux, service := setup(t)
	service.EXPECT().SetStatus(gomock.Any(), "s-1", dto.UpdateSlotStatusRequest{Status: "blocked"}).Return(nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/slots/s-1/status", strings.NewReader(`{"status":"blocked"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/slots/s-1/status", strings.NewReader(`{"status":"gone"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
