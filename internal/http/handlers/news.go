package handlers

import (
	"net/http"

	apierrors "github.com/gundarsv/FlyIt-AirportsAdministrator/internal/errors"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

// newsSessionResponse — открытая edit-сессия новости.
type newsSessionResponse struct {
	SessionID string      `json:"session_id"`
	Draft     models.News `json:"draft"`
}

// ListNews перечитывает новости аэропорта с апстрима.
func (h *Handlers) ListNews(w http.ResponseWriter, r *http.Request) {
	airportID, err := idParam(r, "id")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	news, err := h.newsWorkspace(airportID).Load(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, news)
}

// BeginNewsAdd открывает строчное добавление новости.
func (h *Handlers) BeginNewsAdd(w http.ResponseWriter, r *http.Request) {
	airportID, err := idParam(r, "id")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	s := h.newsWorkspace(airportID).BeginAdd()
	writeJSON(w, http.StatusCreated, newsSessionResponse{SessionID: s.ID().String(), Draft: s.Draft()})
}

// BeginNewsEdit открывает строчное редактирование новости.
func (h *Handlers) BeginNewsEdit(w http.ResponseWriter, r *http.Request) {
	airportID, err := idParam(r, "id")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	newsID, err := idParam(r, "newsID")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	s, err := h.newsWorkspace(airportID).BeginEdit(newsID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newsSessionResponse{SessionID: s.ID().String(), Draft: s.Draft()})
}

// UpdateNewsDraft применяет правки строки к черновику.
// Id и привязка к аэропорту неизменяемы.
func (h *Handlers) UpdateNewsDraft(w http.ResponseWriter, r *http.Request) {
	airportID, err := idParam(r, "id")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	sid, err := sidParam(r)
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	var in models.News
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequest(w, r)
		return
	}

	s, err := h.newsWorkspace(airportID).Session(sid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := s.UpdateDraft(func(draft *models.News) {
		in.ID = draft.ID
		in.AirportID = draft.AirportID
		*draft = in
	}); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, s.Draft())
}

// UploadNewsImage принимает изображение во время сессии (multipart, поле "image").
func (h *Handlers) UploadNewsImage(w http.ResponseWriter, r *http.Request) {
	airportID, err := idParam(r, "id")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	sid, err := sidParam(r)
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	file, header, err := formFile(r, "image")
	if err != nil {
		writeBadRequest(w, r)
		return
	}
	defer file.Close()

	stored, err := h.newsWorkspace(airportID).UploadImage(r.Context(), sid, header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

// CommitNewsEdit подтверждает сессию (create для добавления, update для строки).
func (h *Handlers) CommitNewsEdit(w http.ResponseWriter, r *http.Request) {
	airportID, err := idParam(r, "id")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	sid, err := sidParam(r)
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	news, err := h.newsWorkspace(airportID).Commit(r.Context(), sid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, news)
}

// CancelNewsEdit отменяет сессию.
func (h *Handlers) CancelNewsEdit(w http.ResponseWriter, r *http.Request) {
	airportID, err := idParam(r, "id")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	sid, err := sidParam(r)
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	if err := h.newsWorkspace(airportID).Cancel(r.Context(), sid); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteNews удаляет новость.
func (h *Handlers) DeleteNews(w http.ResponseWriter, r *http.Request) {
	airportID, err := idParam(r, "id")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	newsID, err := idParam(r, "newsID")
	if err != nil {
		writeBadRequest(w, r)
		return
	}

	if err := h.newsWorkspace(airportID).Remove(r.Context(), newsID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
