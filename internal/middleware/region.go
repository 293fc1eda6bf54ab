package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"cow-inspection/internal/platform/apperr"

	"github.com/go-chi/chi/v5"
)

const ReasonRegionMismatch = "region_mismatch"

// RegionLookup resuelve la región de un recurso por id de ruta.
// found=false si no existe; el handler decide qué hacer en ese caso.
// resource se guarda en el contexto para evitar una segunda lectura.
type RegionLookup interface {
	LookupRegion(ctx context.Context, id string) (resource any, region string, found bool, err error)
}

// AuthorizeRegion es la segunda etapa del gate (rutas por vaca). Requiere que
// Authenticate haya corrido antes.
func AuthorizeRegion(lookup RegionLookup, param string) Stage {
	return func(r *http.Request) (*http.Request, error) {
		p, ok := GetPrincipal(r.Context())
		if !ok {
			return nil, &Failure{Reason: ReasonMissingToken, Err: errUnauthenticated}
		}

		id := strings.TrimSpace(chi.URLParam(r, param))
		if id == "" {
			return r, nil
		}

		res, region, found, err := lookup.LookupRegion(r.Context(), id)
		if err != nil {
			return nil, err
		}
		if !found {
			return r, nil
		}

		if region != p.Region {
			return nil, &Failure{
				Reason: ReasonRegionMismatch,
				VetID:  p.VetID,
				Err: apperr.Authorization(fmt.Sprintf(
					"Access denied. You can only access cows in your region (%s). This cow is in region: %s",
					p.Region, region,
				)),
			}
		}

		return r.WithContext(context.WithValue(r.Context(), resourceKey, res)), nil
	}
}

// GetResource devuelve el recurso que dejó AuthorizeRegion (si existía).
func GetResource(ctx context.Context) (any, bool) {
	v := ctx.Value(resourceKey)
	return v, v != nil
}
