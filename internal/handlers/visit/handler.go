package visit

import (
	"net/http"
	"scoop/infras/otel"
	"scoop/internal/domains/visit/model/dto"
	"scoop/internal/domains/visit/service"
	"scoop/shared/constant"
	gDto "scoop/shared/dto"
	"scoop/shared/validator"
	"scoop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Visit
	otel    otel.Otel
}

func New(service service.Visit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers under /visits, which the router shares with the lifecycle handler.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.GetVisits)
	router.Get("/mine", handler.GetMyVisits)
	router.Get("/{id}", handler.GetVisitByID)
	router.Patch("/{id}/technician", handler.AssignTechnician)
}

func (handler *Handler) SeriesRouter(router chi.Router) {
	router.Route("/series", func(routerGroup chi.Router) {
		routerGroup.Get("/{group_id}/visits", handler.GetSeriesVisits)
	})
}

// GetVisits is the status board. Technicians only see their own visits.
// @Summary List visits
// @Tags Visit
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param from query string false "First day, inclusive (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetVisitsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits [get]
// @Security BearerAuth
func (handler *Handler) GetVisits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisits")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := dto.VisitQuery{
		Status: r.URL.Query().Get(constant.RequestParamStatus),
		From:   r.URL.Query().Get(constant.RequestParamFrom),
		To:     r.URL.Query().Get(constant.RequestParamTo),
	}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	visits, err := handler.service.List(ctx, query, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list visits")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, visits)
}

// GetMyVisits lists the caller's visits by date.
// @Summary List my visits
// @Tags Visit
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetVisitsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyVisits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyVisits")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	visits, err := handler.service.ListMine(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list customer visits")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, visits)
}

// GetVisitByID retrieves one visit.
// @Summary Get a visit by ID
// @Tags Visit
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} response.Data[dto.VisitResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetVisitByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisitByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	visit, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("visitID", id).Msg("failed to get visit")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, visit)
}

// GetSeriesVisits lists every visit of a recurring series.
// @Summary List series visits
// @Tags Visit
// @Produce json
// @Param group_id path string true "Recurring group ID"
// @Success 200 {object} response.Data[[]dto.VisitResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/series/{group_id}/visits [get]
// @Security BearerAuth
func (handler *Handler) GetSeriesVisits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeriesVisits")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamGroupID)

	visits, err := handler.service.ListSeries(ctx, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("groupID", groupID).Msg("failed to list series visits")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, visits)
}

// AssignTechnician puts a technician on a scheduled visit.
// @Summary Assign a technician
// @Tags Visit
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param request body dto.AssignTechnicianRequest true "Assign Technician Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/visits/{id}/technician [patch]
// @Security BearerAuth
func (handler *Handler) AssignTechnician(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignTechnician")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AssignTechnicianRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.AssignTechnician(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("visitID", id).Msg("failed to assign technician")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Technician assigned successfully")
}
