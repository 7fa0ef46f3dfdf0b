package booking

import (
	"net/http"
	"scoop/infras/otel"
	"scoop/internal/domains/booking/model/dto"
	"scoop/internal/domains/booking/service"
	"scoop/shared"
	"scoop/shared/constant"
	"scoop/shared/validator"
	"scoop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
	})
}

// CreateBooking books a slot for the authenticated customer.
// @Summary Book a slot
// @Description A recurring slot yields a rolling window of weekly visits in a new series; a one-time slot yields one visit.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 402 {object} response.Error "Payment confirmation missing or invalid"
// @Failure 404 {object} response.Error "Slot not found"
// @Failure 409 {object} response.Error "Slot full"
// @Failure 503 {object} response.Error "Contention, retry"
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slotID", req.SlotID).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := shared.Caller(ctx)
	scope.AddEvent("Slot booked successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}
