package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cow-inspection/internal/middleware"
	"cow-inspection/internal/platform/apperr"
	"cow-inspection/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type RouteDeps struct {
	// Authenticated es el gate de sesión (401 JSON).
	Authenticated func(http.Handler) http.Handler
	Logger        logger.Logger
}

func RegisterRoutes(r chi.Router, svc *Service, deps RouteDeps) {
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}

	r.Route("/api/dashboard", func(dr chi.Router) {
		if deps.Authenticated != nil {
			dr.Use(deps.Authenticated)
		}
		dr.Get("/stats", statsHandler(svc, deps))
		dr.Get("/cows", listCowsHandler(svc, deps))
		dr.Get("/timeline", timelineHandler(svc, deps))
	})
}

type statsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}

type timelineResponse struct {
	Success  bool     `json:"success"`
	Timeline Timeline `json:"timeline"`
}

type cowsResponse struct {
	Success    bool         `json:"success"`
	Cows       []CowSummary `json:"cows"`
	Pagination Pagination   `json:"pagination"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// statsHandler godoc
// @Summary Estadísticas de la región del vet
// @Tags dashboard
// @Produce json
// @Success 200 {object} statsResponse
// @Failure 401 {object} errorResponse
// @Router /api/dashboard/stats [get]
func statsHandler(svc *Service, deps RouteDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vet, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			apperr.WriteJSON(w, apperr.Authentication("unauthorized"))
			return
		}

		st, err := svc.Stats(r.Context(), vet.Region)
		if err != nil {
			logIfInternal(deps.Logger, r, "dashboard stats failed", err)
			apperr.WriteJSON(w, err)
			return
		}
		writeJSON(w, http.StatusOK, statsResponse{Success: true, Stats: st})
	}
}

// listCowsHandler godoc
// @Summary Listado paginado de vacas de la región
// @Tags dashboard
// @Produce json
// @Param page query int false "página (default 1)"
// @Param limit query int false "tamaño de página (default 10, máx 100)"
// @Success 200 {object} cowsResponse
// @Failure 401 {object} errorResponse
// @Router /api/dashboard/cows [get]
func listCowsHandler(svc *Service, deps RouteDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vet, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			apperr.WriteJSON(w, apperr.Authentication("unauthorized"))
			return
		}

		q := r.URL.Query()
		res, err := svc.ListCows(r.Context(), vet.Region, queryInt(q.Get("page")), queryInt(q.Get("limit")))
		if err != nil {
			logIfInternal(deps.Logger, r, "dashboard cows failed", err)
			apperr.WriteJSON(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cowsResponse{Success: true, Cows: res.Cows, Pagination: res.Pagination})
	}
}

// timelineHandler godoc
// @Summary Inspecciones por día
// @Tags dashboard
// @Produce json
// @Param days query int false "días hacia atrás (default 30)"
// @Success 200 {object} timelineResponse
// @Failure 401 {object} errorResponse
// @Router /api/dashboard/timeline [get]
func timelineHandler(svc *Service, deps RouteDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vet, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			apperr.WriteJSON(w, apperr.Authentication("unauthorized"))
			return
		}

		tl, err := svc.Timeline(r.Context(), vet.Region, queryInt(r.URL.Query().Get("days")))
		if err != nil {
			logIfInternal(deps.Logger, r, "dashboard timeline failed", err)
			apperr.WriteJSON(w, err)
			return
		}
		writeJSON(w, http.StatusOK, timelineResponse{Success: true, Timeline: tl})
	}
}

// queryInt: vacío o inválido => 0 (el service aplica el default).
func queryInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func logIfInternal(log logger.Logger, r *http.Request, msg string, err error) {
	if apperr.KindOf(err) != apperr.KindInternal {
		return
	}
	log.Error(msg, map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"error":      err,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
