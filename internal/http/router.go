// http собирает REST-поверхность админки: chi-роутер, цепочка
// мидлваров и регистрация маршрутов.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/http/handlers"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/http/middleware"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/session"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
//
// Всё, кроме /auth/sign-in, закрыто RequireSession: без открытой сессии
// с апстримом админке нечего показывать.
func NewRouter(h *handlers.Handlers, sess *session.Session, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
		middleware.Metrics(),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}

	// auth — вне сессионной защиты.
	root.Post("/auth/sign-in", h.SignIn)

	root.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(sess))

		r.Post("/auth/sign-out", h.SignOut)

		// airports — таблица и боковая форма.
		r.Get("/airports", h.ListAirports)
		r.Delete("/airports/{id}", h.DeleteAirport)
		r.Post("/airports/form", h.BeginAirportForm)
		r.Post("/airports/{id}/edit", h.BeginAirportEdit)
		r.Put("/airports/edits/{sid}/draft", h.UpdateAirportDraft)
		r.Post("/airports/edits/{sid}/map", h.UploadAirportMap)
		r.Delete("/airports/edits/{sid}/map", h.RemoveAirportFormMap)
		r.Post("/airports/edits/{sid}/commit", h.CommitAirportEdit)
		r.Post("/airports/edits/{sid}/cancel", h.CancelAirportEdit)

		// news — вложенное представление одной строки.
		r.Get("/airports/{id}/news", h.ListNews)
		r.Delete("/airports/{id}/news/{newsID}", h.DeleteNews)
		r.Post("/airports/{id}/news/add", h.BeginNewsAdd)
		r.Post("/airports/{id}/news/{newsID}/edit", h.BeginNewsEdit)
		r.Put("/airports/{id}/news/edits/{sid}/draft", h.UpdateNewsDraft)
		r.Post("/airports/{id}/news/edits/{sid}/image", h.UploadNewsImage)
		r.Post("/airports/{id}/news/edits/{sid}/commit", h.CommitNewsEdit)
		r.Post("/airports/{id}/news/edits/{sid}/cancel", h.CancelNewsEdit)
	})

	return root
}
