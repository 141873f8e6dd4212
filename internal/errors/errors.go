// errors стандартизирует ответы об ошибках HTTP-слоя админки.
//
// На вход — ошибка нижних слоёв (воркспейс, ресурсные клиенты,
// загрузчик), на выход — корректный HTTP-статус и единый конверт
// {"error": {code, message, request_id, fields?}}.
//
// Таксономия:
//   - ошибки валидации формы — 400 с пер-полевыми сообщениями, в сеть
//     такие попытки не ходили;
//   - 401 апстрима — сессия уже инвалидирована клиентским слоем, наружу
//     уходит 401/unauthenticated (сигнал "перезайди");
//   - прочие ошибки апстрима — его статус и первое сообщение из массива
//     (или fallback-текст, если тело битое);
//   - всё неопознанное — 500/internal без утечки деталей.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/client"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/upload"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/workspace"
)

// ErrNoSession — запрос к защищённому маршруту без открытой сессии.
var ErrNoSession = errors.New("no active session")

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// Fields — пер-полевые сообщения валидации (только для code=validation).
// RequestID — прокидывается из X-Request-Id, если есть.
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку нижних слоёв в HTTP-статус и конверт.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		// Программная ошибка вызова: не маскируем багом "200 с телом ошибки".
		return http.StatusInternalServerError, envelope("internal", "internal error", nil)
	}

	var fieldErrs workspace.FieldErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest, envelope("validation", "validation failed", fieldErrs)
	}

	var remote *client.RemoteError
	if errors.As(err, &remote) {
		return remote.StatusCode, envelope("upstream", remote.Message(), nil)
	}

	switch {
	case errors.Is(err, client.ErrUnauthenticated), errors.Is(err, ErrNoSession):
		return http.StatusUnauthorized, envelope("unauthenticated", "sign in required", nil)
	case errors.Is(err, workspace.ErrNoSuchEntity):
		return http.StatusNotFound, envelope("not_found", "not found", nil)
	case errors.Is(err, workspace.ErrNoSuchSession):
		return http.StatusNotFound, envelope("no_session", "edit session not found", nil)
	case errors.Is(err, workspace.ErrSessionState):
		return http.StatusConflict, envelope("session_state", "edit session already completed", nil)
	case errors.Is(err, upload.ErrEmptyFile):
		return http.StatusBadRequest, envelope("empty_file", "file is empty", nil)
	case errors.Is(err, upload.ErrFileTooLarge):
		return http.StatusBadRequest, envelope("file_too_large", "file exceeds the size limit", nil)
	case errors.Is(err, upload.ErrUnsupportedType):
		return http.StatusBadRequest, envelope("unsupported_type", "unsupported file type", nil)
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, envelope("deadline_exceeded", "deadline exceeded", nil)
	default:
		return http.StatusInternalServerError, envelope("internal", "internal error", nil)
	}
}

// WriteError — хелпер для HTTP-хендлеров: статус, тело, request_id.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func envelope(code, message string, fields map[string]string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: message, Fields: fields}}
}
