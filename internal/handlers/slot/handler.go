package slot

import (
	"net/http"
	"scoop/infras/otel"
	"scoop/internal/domains/slot/model/dto"
	"scoop/internal/domains/slot/service"
	"scoop/shared/constant"
	"scoop/shared/failure"
	"scoop/shared/validator"
	"scoop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Slot
	otel    otel.Otel
}

func New(service service.Slot, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/slots", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListOpenSlots)
		routerGroup.Post("/", handler.CreateSlot)
		routerGroup.Get("/{id}", handler.GetSlotByID)
		routerGroup.Patch("/{id}/status", handler.UpdateSlotStatus)
		routerGroup.Delete("/{id}", handler.DeleteSlot)
	})
}

// ListOpenSlots lists bookable slots for a zip code.
// @Summary List open slots
// @Description Open slots with spare capacity: recurring slots first by weekday, then future one-time slots by date.
// @Tags Slot
// @Produce json
// @Param zip query string true "Service area zip code"
// @Success 200 {object} response.Data[dto.ListSlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/slots [get]
func (handler *Handler) ListOpenSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListOpenSlots")
	defer scope.End()

	zip := r.URL.Query().Get(constant.RequestParamZip)
	if err := validator.ValidateVar(zip, "required,max=10"); err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("zip is required"))

		return
	}

	slots, err := handler.service.ListOpen(ctx, zip)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("zip", zip).Msg("failed to list open slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, slots)
}

// CreateSlot creates a recurring or one-time slot.
// @Summary Create a slot
// @Tags Slot
// @Accept json
// @Produce json
// @Param request body dto.CreateSlotRequest true "Create Slot Request"
// @Success 201 {object} response.Data[dto.SlotResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/slots [post]
// @Security BearerAuth
func (handler *Handler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSlot")
	defer scope.End()

	req := dto.CreateSlotRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	slot, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create slot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slot created " + slot.ID)

	response.WithJSON(w, http.StatusCreated, slot)
}

// GetSlotByID retrieves a slot.
// @Summary Get a slot by ID
// @Tags Slot
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} response.Data[dto.SlotResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/slots/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSlotByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlotByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	slot, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slotID", id).Msg("failed to get slot")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, slot)
}

// UpdateSlotStatus opens, blocks or holds a slot.
// @Summary Update slot status
// @Tags Slot
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param request body dto.UpdateSlotStatusRequest true "Update Slot Status Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/slots/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSlotStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSlotStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSlotStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slotID", id).Msg("failed to update slot status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Slot status updated successfully")
}

// DeleteSlot removes a slot that nobody has booked.
// @Summary Delete a slot
// @Tags Slot
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Slot has bookings"
// @Failure 500 {object} response.Error
// @Router /v1/slots/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSlot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slotID", id).Msg("failed to delete slot")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Slot deleted successfully")
}
