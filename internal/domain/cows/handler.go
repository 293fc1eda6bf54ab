package cows

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cow-inspection/internal/middleware"
	"cow-inspection/internal/platform/apperr"
	"cow-inspection/internal/platform/logger"
	"cow-inspection/internal/platform/metrics"
	"cow-inspection/internal/view"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type RouteDeps struct {
	// RegistrationURL es la página a la que se manda al vet cuando la vaca no existe.
	RegistrationURL string

	// Authenticated: solo sesión (POST /api/cow).
	// CowScoped: sesión + región, responde JSON.
	// Page: sesión + región, redirige a login si no hay sesión.
	Authenticated func(http.Handler) http.Handler
	CowScoped     func(http.Handler) http.Handler
	Page          func(http.Handler) http.Handler

	Renderer *view.Renderer
	Logger   logger.Logger
	Metrics  *metrics.Metrics
}

func RegisterRoutes(r chi.Router, svc *Service, deps RouteDeps) {
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	if deps.Renderer == nil {
		deps.Renderer = view.NewRenderer()
	}

	// Página HTML de la vaca
	r.With(orPass(deps.Page)).Get("/cow/{id}", cowPageHandler(deps))

	r.Route("/api/cow", func(cr chi.Router) {
		cr.With(orPass(deps.Authenticated)).Post("/", createCowHandler(svc, deps))

		cr.Route("/{id}", func(ir chi.Router) {
			ir.Use(orPass(deps.CowScoped))

			ir.Get("/", getCowHandler(deps))
			ir.Post("/vaccination", addVaccinationHandler(svc, deps))
			ir.Get("/vaccinations", listVaccinationsHandler())
			ir.Post("/medical-history", addMedicalEntryHandler(svc, deps))
		})
	})
}

// RegistrationURLFor arma REGISTRATION_URL?cowId=<id>.
func RegistrationURLFor(base, cowID string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("cowId", cowID)
	u.RawQuery = q.Encode()
	return u.String()
}

// CowFromContext devuelve la vaca que resolvió el gate de región.
func CowFromContext(r *http.Request) (Cow, bool) {
	res, ok := middleware.GetResource(r.Context())
	if !ok {
		return Cow{}, false
	}
	c, ok := res.(Cow)
	return c, ok
}

// -------------------------
// Requests / responses
// -------------------------

type vaccinationRequest struct {
	Name    string `json:"name"`
	Date    string `json:"date"`    // RFC3339 o YYYY-MM-DD
	NextDue string `json:"nextDue"` // opcional
}

type medicalEntryRequest struct {
	Date         string `json:"date"`
	Diagnosis    string `json:"diagnosis"`
	Treatment    string `json:"treatment"`
	Veterinarian string `json:"veterinarian"`
}

// createCowRequest: age/weight punteros para detectar campo ausente.
type createCowRequest struct {
	CowID          string                `json:"cowId"`
	Name           string                `json:"name"`
	Breed          string                `json:"breed"`
	Age            *float64              `json:"age"`
	Weight         *float64              `json:"weight"`
	Region         string                `json:"region"`
	HealthStatus   string                `json:"healthStatus"`
	LastInspection string                `json:"lastInspection"`
	Vaccinations   []vaccinationRequest  `json:"vaccinations"`
	MedicalHistory []medicalEntryRequest `json:"medicalHistory"`
}

type vaccinationResponse struct {
	Name    string     `json:"name"`
	Date    time.Time  `json:"date"`
	NextDue *time.Time `json:"nextDue,omitempty"`
}

type medicalEntryResponse struct {
	Date         time.Time `json:"date"`
	Diagnosis    string    `json:"diagnosis"`
	Treatment    string    `json:"treatment"`
	Veterinarian string    `json:"veterinarian"`
}

type cowResponse struct {
	CowID          string                 `json:"cowId"`
	Name           string                 `json:"name"`
	Breed          string                 `json:"breed"`
	Age            float64                `json:"age"`
	Weight         float64                `json:"weight"`
	Region         string                 `json:"region"`
	HealthStatus   HealthStatus           `json:"healthStatus"`
	LastInspection time.Time              `json:"lastInspection"`
	Vaccinations   []vaccinationResponse  `json:"vaccinations"`
	MedicalHistory []medicalEntryResponse `json:"medicalHistory"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

type cowEnvelope struct {
	Success bool        `json:"success"`
	Cow     cowResponse `json:"cow"`
}

type vaccinationsEnvelope struct {
	Success      bool                  `json:"success"`
	Vaccinations []vaccinationResponse `json:"vaccinations"`
}

type medicalHistoryEnvelope struct {
	Success        bool                   `json:"success"`
	MedicalHistory []medicalEntryResponse `json:"medicalHistory"`
}

// errorResponse es la forma de apperr.WriteJSON (solo para la doc).
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type notFoundResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	RegistrationURL string `json:"registrationUrl"`
}

// -------------------------
// Handlers
// -------------------------

// cowPageHandler godoc
// @Summary Página HTML de una vaca
// @Description Si la vaca no existe redirige (303) a la página de registro con el cowId.
// @Tags cows
// @Produce html
// @Param id path string true "cowId"
// @Success 200 {string} string "HTML"
// @Failure 303 {string} string "redirect a registro"
// @Failure 403 {object} errorResponse "vaca de otra región"
// @Router /cow/{id} [get]
func cowPageHandler(deps RouteDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := CowFromContext(r)
		if !ok {
			http.Redirect(w, r, RegistrationURLFor(deps.RegistrationURL, chi.URLParam(r, "id")), http.StatusSeeOther)
			return
		}

		page := toCowPage(c)
		if p, ok := middleware.GetPrincipal(r.Context()); ok {
			page.VetName = p.Name
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := deps.Renderer.RenderCow(w, page); err != nil {
			deps.Logger.Error("render cow page failed", map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"cow_id":     c.CowID,
				"error":      err,
			})
		}
	}
}

// createCowHandler godoc
// @Summary Registrar vaca
// @Description La vaca queda en la región del vet. Si el payload trae otra región responde 403.
// @Tags cows
// @Accept json
// @Produce json
// @Param payload body createCowRequest true "Datos de la vaca"
// @Success 201 {object} cowEnvelope
// @Failure 400 {object} errorResponse "validación"
// @Failure 403 {object} errorResponse "región distinta"
// @Failure 409 {object} errorResponse "cowId duplicado"
// @Router /api/cow [post]
func createCowHandler(svc *Service, deps RouteDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vet, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			apperr.WriteJSON(w, apperr.Authentication("unauthorized"))
			return
		}

		var req createCowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperr.WriteJSON(w, apperr.Validation("invalid json"))
			return
		}

		in, err := req.toInput()
		if err != nil {
			apperr.WriteJSON(w, err)
			return
		}

		c, err := svc.Register(r.Context(), vet, in)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindAuthorization && deps.Metrics != nil {
				deps.Metrics.RegionDenials.Inc()
			}
			logIfInternal(deps.Logger, r, "cow registration failed", err)
			apperr.WriteJSON(w, err)
			return
		}

		if deps.Metrics != nil {
			deps.Metrics.CowsRegistered.Inc()
		}
		deps.Logger.Info("cow registered", map[string]any{
			"request_id": chimw.GetReqID(r.Context()),
			"vet_id":     vet.VetID,
			"cow_id":     c.CowID,
			"region":     c.Region,
		})

		writeJSON(w, http.StatusCreated, cowEnvelope{Success: true, Cow: toCowResponse(c)})
	}
}

// getCowHandler godoc
// @Summary Obtener vaca por cowId
// @Tags cows
// @Produce json
// @Param id path string true "cowId"
// @Success 200 {object} cowEnvelope
// @Failure 403 {object} errorResponse "vaca de otra región"
// @Failure 404 {object} notFoundResponse "no existe; incluye registrationUrl"
// @Router /api/cow/{id} [get]
func getCowHandler(deps RouteDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := CowFromContext(r)
		if !ok {
			writeJSON(w, http.StatusNotFound, notFoundResponse{
				Success:         false,
				Message:         "Cow not found",
				RegistrationURL: RegistrationURLFor(deps.RegistrationURL, chi.URLParam(r, "id")),
			})
			return
		}
		writeJSON(w, http.StatusOK, cowEnvelope{Success: true, Cow: toCowResponse(c)})
	}
}

// addVaccinationHandler godoc
// @Summary Agregar vacuna
// @Description Agrega al final del ledger. Se permiten entradas repetidas.
// @Tags cows
// @Accept json
// @Produce json
// @Param id path string true "cowId"
// @Param payload body vaccinationRequest true "Vacuna"
// @Success 201 {object} vaccinationsEnvelope
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/cow/{id}/vaccination [post]
func addVaccinationHandler(svc *Service, deps RouteDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vet, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			apperr.WriteJSON(w, apperr.Authentication("unauthorized"))
			return
		}

		var req vaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperr.WriteJSON(w, apperr.Validation("invalid json"))
			return
		}
		in, err := req.toInput()
		if err != nil {
			apperr.WriteJSON(w, err)
			return
		}

		c, ok := CowFromContext(r)
		if !ok {
			apperr.WriteJSON(w, ErrNotFound)
			return
		}

		list, err := svc.AddVaccination(r.Context(), vet, c, in)
		if err != nil {
			logIfInternal(deps.Logger, r, "add vaccination failed", err)
			apperr.WriteJSON(w, err)
			return
		}

		if deps.Metrics != nil {
			deps.Metrics.VaccinationsRecorded.Inc()
		}
		writeJSON(w, http.StatusCreated, vaccinationsEnvelope{Success: true, Vaccinations: toVaccinationResponses(list)})
	}
}

// listVaccinationsHandler godoc
// @Summary Listar vacunas
// @Tags cows
// @Produce json
// @Param id path string true "cowId"
// @Success 200 {object} vaccinationsEnvelope
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/cow/{id}/vaccinations [get]
func listVaccinationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := CowFromContext(r)
		if !ok {
			apperr.WriteJSON(w, ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, vaccinationsEnvelope{Success: true, Vaccinations: toVaccinationResponses(c.Vaccinations)})
	}
}

// addMedicalEntryHandler godoc
// @Summary Agregar entrada al historial clínico
// @Description veterinarian es opcional; por defecto el nombre del vet autenticado.
// @Tags cows
// @Accept json
// @Produce json
// @Param id path string true "cowId"
// @Param payload body medicalEntryRequest true "Entrada"
// @Success 201 {object} medicalHistoryEnvelope
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/cow/{id}/medical-history [post]
func addMedicalEntryHandler(svc *Service, deps RouteDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vet, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			apperr.WriteJSON(w, apperr.Authentication("unauthorized"))
			return
		}

		var req medicalEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperr.WriteJSON(w, apperr.Validation("invalid json"))
			return
		}
		in, err := req.toInput()
		if err != nil {
			apperr.WriteJSON(w, err)
			return
		}

		c, ok := CowFromContext(r)
		if !ok {
			apperr.WriteJSON(w, ErrNotFound)
			return
		}

		list, err := svc.AddMedicalEntry(r.Context(), vet, c, in)
		if err != nil {
			logIfInternal(deps.Logger, r, "add medical entry failed", err)
			apperr.WriteJSON(w, err)
			return
		}

		if deps.Metrics != nil {
			deps.Metrics.MedicalEntriesAdded.Inc()
		}
		writeJSON(w, http.StatusCreated, medicalHistoryEnvelope{Success: true, MedicalHistory: toMedicalEntryResponses(list)})
	}
}

// -------------------------
// Mapping
// -------------------------

func (req createCowRequest) toInput() (CreateInput, error) {
	in := CreateInput{
		CowID:        req.CowID,
		Name:         req.Name,
		Breed:        req.Breed,
		Age:          req.Age,
		Weight:       req.Weight,
		Region:       req.Region,
		HealthStatus: req.HealthStatus,
	}

	if strings.TrimSpace(req.LastInspection) != "" {
		t, err := parseDate(req.LastInspection)
		if err != nil {
			return CreateInput{}, apperr.Validation("lastInspection must be RFC3339 or YYYY-MM-DD")
		}
		in.LastInspection = &t
	}

	for _, v := range req.Vaccinations {
		vi, err := v.toInput()
		if err != nil {
			return CreateInput{}, err
		}
		in.Vaccinations = append(in.Vaccinations, Vaccination(vi))
	}
	for _, e := range req.MedicalHistory {
		ei, err := e.toInput()
		if err != nil {
			return CreateInput{}, err
		}
		in.MedicalHistory = append(in.MedicalHistory, MedicalEntry(ei))
	}
	return in, nil
}

func (req vaccinationRequest) toInput() (VaccinationInput, error) {
	in := VaccinationInput{Name: req.Name}
	if strings.TrimSpace(req.Date) != "" {
		t, err := parseDate(req.Date)
		if err != nil {
			return VaccinationInput{}, apperr.Validation("date must be RFC3339 or YYYY-MM-DD")
		}
		in.Date = t
	}
	if strings.TrimSpace(req.NextDue) != "" {
		t, err := parseDate(req.NextDue)
		if err != nil {
			return VaccinationInput{}, apperr.Validation("nextDue must be RFC3339 or YYYY-MM-DD")
		}
		in.NextDue = &t
	}
	return in, nil
}

func (req medicalEntryRequest) toInput() (MedicalEntryInput, error) {
	in := MedicalEntryInput{
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		Veterinarian: req.Veterinarian,
	}
	if strings.TrimSpace(req.Date) != "" {
		t, err := parseDate(req.Date)
		if err != nil {
			return MedicalEntryInput{}, apperr.Validation("date must be RFC3339 or YYYY-MM-DD")
		}
		in.Date = t
	}
	return in, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", s)
}

func toCowResponse(c Cow) cowResponse {
	return cowResponse{
		CowID:          c.CowID,
		Name:           c.Name,
		Breed:          c.Breed,
		Age:            c.Age,
		Weight:         c.Weight,
		Region:         c.Region,
		HealthStatus:   c.HealthStatus,
		LastInspection: c.LastInspection,
		Vaccinations:   toVaccinationResponses(c.Vaccinations),
		MedicalHistory: toMedicalEntryResponses(c.MedicalHistory),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toVaccinationResponses(in []Vaccination) []vaccinationResponse {
	out := make([]vaccinationResponse, 0, len(in))
	for _, v := range in {
		out = append(out, vaccinationResponse(v))
	}
	return out
}

func toMedicalEntryResponses(in []MedicalEntry) []medicalEntryResponse {
	out := make([]medicalEntryResponse, 0, len(in))
	for _, e := range in {
		out = append(out, medicalEntryResponse(e))
	}
	return out
}

func toCowPage(c Cow) view.CowPage {
	page := view.CowPage{
		CowID:          c.CowID,
		Name:           c.Name,
		Breed:          c.Breed,
		Age:            c.Age,
		Weight:         c.Weight,
		Region:         c.Region,
		HealthStatus:   string(c.HealthStatus),
		LastInspection: c.LastInspection,
	}
	for _, v := range c.Vaccinations {
		page.Vaccinations = append(page.Vaccinations, view.VaccinationRow(v))
	}
	for _, e := range c.MedicalHistory {
		page.MedicalHistory = append(page.MedicalHistory, view.MedicalRow(e))
	}
	return page
}

func orPass(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw != nil {
		return mw
	}
	return func(next http.Handler) http.Handler { return next }
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

// writeJSON está duplicado intencionalmente en handlers de distintos módulos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
