package lifecycle

import (
	"net/http"
	"scoop/infras/otel"
	"scoop/internal/domains/lifecycle/model/dto"
	"scoop/internal/domains/lifecycle/service"
	visitDto "scoop/internal/domains/visit/model/dto"
	"scoop/shared/constant"
	"scoop/shared/validator"
	"scoop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Lifecycle
	otel    otel.Otel
}

func New(service service.Lifecycle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers under /visits, which the router shares with the visit handler.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/{id}/cancel", handler.CancelVisit)
	router.Post("/{id}/reschedule", handler.RescheduleVisit)
	router.Post("/{id}/complete", handler.CompleteVisit)
	router.Post("/{id}/not-complete", handler.MarkVisitNotComplete)
}

// CancelVisit cancels one occurrence and frees its slot.
// @Summary Cancel a visit
// @Tags Lifecycle
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} response.Data[visitDto.VisitResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Invalid transition"
// @Failure 503 {object} response.Error "Contention, retry"
// @Router /v1/visits/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelVisit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelVisit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	visit, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("visitID", id).Msg("failed to cancel visit")

		response.WithError(w, err)

		return
	}

	writeVisit(w, visit)
}

// RescheduleVisit moves one occurrence onto another slot.
// @Summary Reschedule a visit
// @Description The moved visit becomes a one-time visit. A recurring series gets a replacement occurrence.
// @Tags Lifecycle
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param request body dto.RescheduleRequest true "Reschedule Request"
// @Success 200 {object} response.Data[dto.RescheduleResponse]
// @Failure 400 {object} response.Error "Validation or same slot"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Slot full or invalid transition"
// @Failure 503 {object} response.Error "Contention, retry"
// @Router /v1/visits/{id}/reschedule [post]
// @Security BearerAuth
func (handler *Handler) RescheduleVisit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleVisit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RescheduleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reschedule(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("visitID", id).Str("slotID", req.SlotID).Msg("failed to reschedule visit")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CompleteVisit marks a visit done and tops up its series.
// @Summary Complete a visit
// @Tags Lifecycle
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param request body dto.CompleteRequest false "Complete Request"
// @Success 200 {object} response.Data[dto.CompleteResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Invalid transition"
// @Failure 503 {object} response.Error "Contention, retry"
// @Router /v1/visits/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteVisit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteVisit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CompleteRequest{}
	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}
	}

	res, err := handler.service.Complete(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("visitID", id).Msg("failed to complete visit")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// MarkVisitNotComplete records why a visit could not be done.
// @Summary Mark a visit not complete
// @Tags Lifecycle
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param request body dto.NotCompleteRequest true "Not Complete Request"
// @Success 200 {object} response.Data[visitDto.VisitResponse]
// @Failure 400 {object} response.Error "Missing reason"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Invalid transition"
// @Router /v1/visits/{id}/not-complete [post]
// @Security BearerAuth
func (handler *Handler) MarkVisitNotComplete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkVisitNotComplete")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.NotCompleteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	visit, err := handler.service.MarkNotComplete(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("visitID", id).Msg("failed to mark visit not complete")

		response.WithError(w, err)

		return
	}

	writeVisit(w, visit)
}

func writeVisit(w http.ResponseWriter, visit visitDto.VisitResponse) {
	response.WithJSON(w, http.StatusOK, visit)
}
