package middleware

import (
	"net/http"

	apierrors "github.com/gundarsv/FlyIt-AirportsAdministrator/internal/errors"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/session"
)

// RequireSession закрывает защищённые маршруты, пока сессия с апстримом
// не открыта: без неё любой ресурсный запрос всё равно кончился бы
// отказом, так что отвечаем 401 локально, не тратя round-trip.
func RequireSession(sess *session.Session) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sess.Active() {
				apierrors.WriteError(w, r, apierrors.ErrNoSession)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
