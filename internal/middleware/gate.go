package middleware

import (
	"net/http"
	"net/url"

	"cow-inspection/internal/platform/apperr"
	"cow-inspection/internal/platform/logger"
	"cow-inspection/internal/platform/metrics"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Stage es una etapa del access gate: recibe el request y devuelve uno
// enriquecido (contexto con claims/principal/recurso) o un error que corta.
type Stage func(r *http.Request) (*http.Request, error)

// Run aplica las etapas de izquierda a derecha. Útil en tests sin router.
func Run(r *http.Request, stages ...Stage) (*http.Request, error) {
	cur := r
	for _, st := range stages {
		next, err := st(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

type GateOptions struct {
	Logger  logger.Logger
	Metrics *metrics.Metrics

	// LoginURL != "" => las fallas de autenticación redirigen (rutas HTML)
	// en vez de responder 401 JSON.
	LoginURL string
}

// Gate compone las etapas en un middleware.
func Gate(opts GateOptions, stages ...Stage) func(http.Handler) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			enriched, err := Run(r, stages...)
			if err == nil {
				next.ServeHTTP(w, enriched)
				return
			}

			fields := map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"path":       r.URL.Path,
				"reason":     failureReason(err),
			}
			if vetID := failureVetID(err); vetID != "" {
				fields["vet_id"] = vetID
			}

			switch apperr.KindOf(err) {
			case apperr.KindAuthentication:
				if opts.Metrics != nil {
					opts.Metrics.AuthFailures.WithLabelValues(failureReason(err)).Inc()
				}
				log.Debug("authentication failed", fields)
				if opts.LoginURL != "" {
					http.Redirect(w, r, LoginRedirectURL(opts.LoginURL, r.URL.RequestURI()), http.StatusFound)
					return
				}
			case apperr.KindAuthorization:
				if opts.Metrics != nil {
					opts.Metrics.RegionDenials.Inc()
				}
				log.Warn("region authorization denied", fields)
			case apperr.KindInternal:
				fields["error"] = err
				log.Error("access gate error", fields)
			}

			apperr.WriteJSON(w, err)
		})
	}
}

// LoginRedirectURL arma LOGIN_URL?redirect=<ruta original>.
func LoginRedirectURL(loginURL, original string) string {
	u, err := url.Parse(loginURL)
	if err != nil {
		return loginURL
	}
	q := u.Query()
	q.Set("redirect", original)
	u.RawQuery = q.Encode()
	return u.String()
}
