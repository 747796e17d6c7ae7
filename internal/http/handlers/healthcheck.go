package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"hackfest/internal/http/api"
	"hackfest/internal/lib/sl"

	"github.com/go-chi/render"
)

// Pinger reports whether the store is reachable. *sqlx.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const pingTimeout = 2 * time.Second

func Healthcheck(log *slog.Logger, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Error("healthcheck: database unreachable", sl.Err(err))

			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, api.Error(api.ErrInternalErr, "database unreachable"))
			return
		}

		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}
