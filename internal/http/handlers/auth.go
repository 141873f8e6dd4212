package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/gundarsv/FlyIt-AirportsAdministrator/internal/errors"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

// signInResponse — ответ об открытой сессии; сам токен наружу не отдаём,
// он живёт только внутри процесса.
type signInResponse struct {
	Active    bool   `json:"active"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// SignIn обменивает креденшалы на сессию с апстримом.
// Отказ апстрима (включая 401 на неверные креденшалы) ничего не меняет:
// токен не сохраняется, сессия остаётся в прежнем состоянии.
func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeStrict(r, &creds); err != nil {
		writeBadRequest(w, r)
		return
	}

	token, err := h.Auth.SignIn(r.Context(), creds)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.Session.Open(token.AccessToken)

	resp := signInResponse{Active: true}
	if exp := h.Session.ExpiresAt(); !exp.IsZero() {
		resp.ExpiresAt = exp.UTC().Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, resp)
}

// SignOut — явный выход: сессия закрывается, хук инвалидизации
// срабатывает так же, как при 401.
func (h *Handlers) SignOut(w http.ResponseWriter, _ *http.Request) {
	h.Session.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}
