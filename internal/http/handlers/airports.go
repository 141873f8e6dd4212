package handlers

import (
	"net/http"

	apierrors "github.com/gundarsv/FlyIt-AirportsAdministrator/internal/errors"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

// editSessionResponse — ответ на открытие edit-сессии.
type editSessionResponse struct {
	SessionID string         `json:"session_id"`
	Draft     models.Airport `json:"draft"`
}

// ListAirports перечитывает коллекцию с апстрима.
func (h *Handlers) ListAirports(w http.ResponseWriter, r *http.Request) {
	airports, err := h.Airports.Load(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, airports)
}

// DeleteAirport удаляет строку таблицы.
func (h *Handlers) DeleteAirport(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	if _, err := h.Airports.Remove(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BeginAirportForm открывает сессию боковой формы "добавить аэропорт".
func (h *Handlers) BeginAirportForm(w http.ResponseWriter, _ *http.Request) {
	s := h.Airports.BeginForm()
	writeJSON(w, http.StatusCreated, editSessionResponse{SessionID: s.ID().String(), Draft: s.Draft()})
}

// BeginAirportEdit открывает строчное редактирование.
func (h *Handlers) BeginAirportEdit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	s, err := h.Airports.BeginEdit(id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, editSessionResponse{SessionID: s.ID().String(), Draft: s.Draft()})
}

// UpdateAirportDraft применяет правки строки к черновику сессии.
// Id записи неизменяем: значение из черновика сохраняется.
func (h *Handlers) UpdateAirportDraft(w http.ResponseWriter, r *http.Request) {
	sid, err := sidParam(r)
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	var in models.Airport
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequest(w, r)
		return
	}

	s, err := h.Airports.Session(sid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := s.UpdateDraft(func(draft *models.Airport) {
		in.ID = draft.ID
		*draft = in
	}); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, s.Draft())
}

// UploadAirportMap принимает PDF-карту во время сессии (multipart, поле "file").
func (h *Handlers) UploadAirportMap(w http.ResponseWriter, r *http.Request) {
	sid, err := sidParam(r)
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	file, header, err := formFile(r, "file")
	if err != nil {
		writeBadRequest(w, r)
		return
	}
	defer file.Close()

	stored, err := h.Airports.UploadMap(r.Context(), sid, header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

// RemoveAirportFormMap — кнопка "убрать карту" боковой формы.
func (h *Handlers) RemoveAirportFormMap(w http.ResponseWriter, r *http.Request) {
	sid, err := sidParam(r)
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	if err := h.Airports.RemoveFormMap(r.Context(), sid); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CommitAirportEdit подтверждает сессию (create для формы, update для строки).
func (h *Handlers) CommitAirportEdit(w http.ResponseWriter, r *http.Request) {
	sid, err := sidParam(r)
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	airport, err := h.Airports.Commit(r.Context(), sid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, airport)
}

// CancelAirportEdit отменяет сессию (в том числе закрытие формы без отправки).
func (h *Handlers) CancelAirportEdit(w http.ResponseWriter, r *http.Request) {
	sid, err := sidParam(r)
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	if err := h.Airports.Cancel(r.Context(), sid); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
