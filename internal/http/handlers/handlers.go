// handlers — REST-хендлеры админки поверх воркспейсов и клиентов.
//
// Хендлеры не содержат бизнес-логики: декодируют вход, зовут воркспейс
// или клиент, пишут единый JSON-ответ либо конверт ошибки. Вложенные
// новостные воркспейсы создаются лениво по airportID и живут, пока
// живёт процесс: их edit-сессии должны переживать отдельные HTTP-запросы.
package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/client"
	apierrors "github.com/gundarsv/FlyIt-AirportsAdministrator/internal/errors"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/session"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/workspace"
)

// maxMultipartMemory — буфер разбора multipart-форм в памяти.
const maxMultipartMemory = 10 << 20

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	Session  *session.Session
	Auth     *client.AuthClient
	Airports *workspace.Airports

	mu   sync.Mutex
	news map[int64]*workspace.News
}

func New(sess *session.Session, auth *client.AuthClient, airports *workspace.Airports) *Handlers {
	return &Handlers{
		Session:  sess,
		Auth:     auth,
		Airports: airports,
		news:     make(map[int64]*workspace.News),
	}
}

// newsWorkspace лениво открывает вложенный воркспейс новостей аэропорта.
func (h *Handlers) newsWorkspace(airportID int64) *workspace.News {
	h.mu.Lock()
	defer h.mu.Unlock()

	ws, ok := h.news[airportID]
	if !ok {
		ws = h.Airports.News(airportID)
		h.news[airportID] = ws
	}

	return ws
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errBadRequest — локальная ошибка разбора входа.
var errBadRequest = errors.New("bad request")

// idParam достаёт числовой параметр маршрута.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadRequest
	}

	return id, nil
}

// sidParam достаёт uuid edit-сессии из маршрута.
func sidParam(r *http.Request) (uuid.UUID, error) {
	sid, err := uuid.Parse(chi.URLParam(r, "sid"))
	if err != nil {
		return uuid.Nil, errBadRequest
	}

	return sid, nil
}

// formFile достаёт единственный файл multipart-формы.
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, nil, errBadRequest
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, errBadRequest
	}

	return file, header, nil
}

// writeBadRequest — 400 с единым конвертом для локальных ошибок разбора.
func writeBadRequest(w http.ResponseWriter, r *http.Request) {
	status := http.StatusBadRequest
	resp := apierrors.ErrorResponse{Error: apierrors.APIError{Code: "invalid_argument", Message: "invalid argument"}}

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	writeJSON(w, status, resp)
}
