package vets

import (
	"encoding/json"
	"net/http"

	"cow-inspection/internal/middleware"
	"cow-inspection/internal/platform/apperr"
	"cow-inspection/internal/platform/logger"
	"cow-inspection/internal/platform/metrics"
	"cow-inspection/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type RouteDeps struct {
	Sessions      auth.SessionIssuer
	SecureCookies bool

	// Authenticated es el gate (solo etapa de autenticación) para /profile.
	Authenticated func(http.Handler) http.Handler

	Logger  logger.Logger
	Metrics *metrics.Metrics
}

func RegisterRoutes(r chi.Router, svc *Service, deps RouteDeps) {
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}

	r.Route("/api/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, deps))
		ar.Post("/login", loginHandler(svc, deps))
		ar.Post("/logout", logoutHandler(deps))
		ar.With(deps.Authenticated).Get("/profile", profileHandler())
	})
}

// registerRequest es el cuerpo para crear una cuenta de veterinario.
type registerRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Name          string `json:"name"`
	Region        string `json:"region"`
	LicenseNumber string `json:"licenseNumber"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type profileResponse struct {
	Success bool    `json:"success"`
	Vet     Profile `json:"vet"`
}

// registerHandler godoc
// @Summary Registrar veterinario
// @Description Crea la cuenta y deja la sesión iniciada (cookie `token`, HTTP-only, 24h).
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos del veterinario"
// @Success 201 {object} successResponse
// @Failure 400 {object} successResponse "validación"
// @Failure 409 {object} successResponse "email o licencia ya registrados"
// @Router /api/auth/register [post]
func registerHandler(svc *Service, deps RouteDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperr.WriteJSON(w, apperr.Validation("invalid json"))
			return
		}

		v, err := svc.Register(r.Context(), RegisterInput{
			Email:         req.Email,
			Password:      req.Password,
			Name:          req.Name,
			Region:        req.Region,
			LicenseNumber: req.LicenseNumber,
		})
		if err != nil {
			logIfInternal(deps.Logger, r, "vet registration failed", err)
			apperr.WriteJSON(w, err)
			return
		}

		if deps.Metrics != nil {
			deps.Metrics.VetsRegistered.Inc()
		}

		if !startSession(w, r, v, deps) {
			return
		}

		deps.Logger.Info("vet registered", map[string]any{
			"request_id": chimw.GetReqID(r.Context()),
			"vet_id":     v.ID,
			"region":     v.Region,
		})
		writeJSON(w, http.StatusCreated, successResponse{Success: true})
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Verifica credenciales y setea la cookie de sesión.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} successResponse
// @Failure 401 {object} successResponse "credenciales inválidas o cuenta inactiva"
// @Router /api/auth/login [post]
func loginHandler(svc *Service, deps RouteDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperr.WriteJSON(w, apperr.Validation("invalid json"))
			return
		}

		v, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindAuthentication && deps.Metrics != nil {
				deps.Metrics.AuthFailures.WithLabelValues("bad_credentials").Inc()
			}
			logIfInternal(deps.Logger, r, "login failed", err)
			apperr.WriteJSON(w, err)
			return
		}

		if !startSession(w, r, v, deps) {
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Borra la cookie. El token no se revoca: sigue siendo válido hasta expirar.
// @Tags auth
// @Produce json
// @Success 200 {object} successResponse
// @Router /api/auth/logout [post]
func logoutHandler(deps RouteDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		middleware.ClearSessionCookie(w, deps.SecureCookies)
		writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "Logged out successfully"})
	}
}

// profileHandler godoc
// @Summary Perfil del veterinario autenticado
// @Tags auth
// @Produce json
// @Success 200 {object} profileResponse
// @Failure 401 {object} successResponse
// @Router /api/auth/profile [get]
func profileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			apperr.WriteJSON(w, apperr.Authentication("unauthorized"))
			return
		}
		writeJSON(w, http.StatusOK, profileResponse{
			Success: true,
			Vet: Profile{
				ID:            p.VetID,
				Email:         p.Email,
				Name:          p.Name,
				Region:        p.Region,
				LicenseNumber: p.LicenseNumber,
			},
		})
	}
}

func startSession(w http.ResponseWriter, r *http.Request, v Vet, deps RouteDeps) bool {
	token, exp, err := deps.Sessions.Issue(r.Context(), auth.Claims{
		VetID:  v.ID,
		Email:  v.Email,
		Region: v.Region,
	})
	if err != nil {
		logIfInternal(deps.Logger, r, "issue session failed", apperr.Internal(err))
		apperr.WriteJSON(w, apperr.Internal(err))
		return false
	}
	middleware.SetSessionCookie(w, token, exp, deps.Sessions.TTL(), deps.SecureCookies)
	return true
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

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
