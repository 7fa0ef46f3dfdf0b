package lifecycle_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"scoop/infras/otel/mocks"
	"scoop/internal/domains/lifecycle/model/dto"
	serviceMocks "scoop/internal/domains/lifecycle/service/mocks"
	visitDto "scoop/internal/domains/visit/model/dto"
	"scoop/internal/handlers/lifecycle"
	"scoop/shared/failure"
	"scoop/transport/http/response"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*chi.Mux, *serviceMocks.MockLifecycle) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := serviceMocks.NewMockLifecycle(ctrl)

	handler := lifecycle.New(service, mocks.NewOtel())

	mux := chi.NewRouter()
	mux.Route("/visits", handler.Router)

	return mux, service
}

func serve(mux http.Handler, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, path, nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func TestCancelVisit(t *testing.T) {
	mux, service := setup(t)

	service.EXPECT().Cancel(gomock.Any(), "v-1").Return(visitDto.VisitResponse{ID: "v-1", Status: "canceled"}, nil)
	service.EXPECT().Cancel(gomock.Any(), "v-2").Return(visitDto.VisitResponse{}, failure.InvalidTransition("visit is already canceled"))

	rec := serve(mux, "/visits/v-1/cancel", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(mux, "/visits/v-2/cancel", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRescheduleVisit(t *testing.T) {
	mux, service := setup(t)

	service.EXPECT().
		Reschedule(gomock.Any(), "v-1", dto.RescheduleRequest{SlotID: "slot-once"}).
		Return(dto.RescheduleResponse{
			Visit:       visitDto.VisitResponse{ID: "v-1", SlotID: "slot-once"},
			Replacement: &visitDto.VisitResponse{ID: "v-9", SlotID: "slot-fri"},
		}, nil)

	rec := serve(mux, "/visits/v-1/reschedule", `{"slot_id":"slot-once"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body response.Data[dto.RescheduleResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Data)
	require.NotNil(t, body.Data.Replacement)
	assert.Equal(t, "slot-fri", body.Data.Replacement.SlotID)

	rec = serve(mux, "/visits/v-1/reschedule", `{"slot_id":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteVisit(t *testing.T) {
	mux, service := setup(t)

	notes := "filter replaced"

	service.EXPECT().
		Complete(gomock.Any(), "v-1", dto.CompleteRequest{}).
		Return(dto.CompleteResponse{Visit: visitDto.VisitResponse{ID: "v-1"}, Replenished: 1}, nil)
	service.EXPECT().
		Complete(gomock.Any(), "v-2", dto.CompleteRequest{Notes: &notes}).
		Return(dto.CompleteResponse{Visit: visitDto.VisitResponse{ID: "v-2"}}, nil)

	rec := serve(mux, "/visits/v-1/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body response.Data[dto.CompleteResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Data)
	assert.Equal(t, 1, body.Data.Replenished)

	rec = serve(mux, "/visits/v-2/complete", `{"notes":"filter replaced"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMarkVisitNotComplete(t *testing.T) {
	mux, service := setup(t)

	service.EXPECT().
		MarkNotComplete(gomock.Any(), "v-1", dto.NotCompleteRequest{Reason: "gate locked"}).
		Return(visitDto.VisitResponse{ID: "v-1", Status: "not_complete"}, nil)

	rec := serve(mux, "/visits/v-1/not-complete", `{"reason":"gate locked"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(mux, "/visits/v-1/not-complete", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
