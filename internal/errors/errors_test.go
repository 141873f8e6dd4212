package errors

// Тесты маппинга ошибок в HTTP (internal/errors/errors.go).
//
// Подготовка окружения:
//   go test ./internal/errors -v -race -count=1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/client"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/upload"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/workspace"
)

// Табличный маппинг: ошибка нижнего слоя -> статус + код.
func TestToHTTP_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unauthenticated", client.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"no_session", ErrNoSession, http.StatusUnauthorized, "unauthenticated"},
		{"not_found", workspace.ErrNoSuchEntity, http.StatusNotFound, "not_found"},
		{"edit_session_gone", workspace.ErrNoSuchSession, http.StatusNotFound, "no_session"},
		{"session_state", workspace.ErrSessionState, http.StatusConflict, "session_state"},
		{"empty_file", upload.ErrEmptyFile, http.StatusBadRequest, "empty_file"},
		{"file_too_large", upload.ErrFileTooLarge, http.StatusBadRequest, "file_too_large"},
		{"unsupported_type", upload.ErrUnsupportedType, http.StatusBadRequest, "unsupported_type"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
		{"nil", nil, http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

// Обёрнутые ошибки распознаются через errors.Is/As.
func TestToHTTP_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("workspace/airports/Remove: %w", workspace.ErrNoSuchEntity)
	status, resp := ToHTTP(err)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "not_found", resp.Error.Code)
}

// Валидация формы: 400 с пер-полевыми сообщениями.
func TestToHTTP_FieldErrors(t *testing.T) {
	t.Parallel()

	errs := workspace.FieldErrors{"iata": "Add Iata", "icao": "Add Icao"}

	status, resp := ToHTTP(errs)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "validation", resp.Error.Code)
	require.Equal(t, "Add Iata", resp.Error.Fields["iata"])
	require.Equal(t, "Add Icao", resp.Error.Fields["icao"])
}

// Ошибка апстрима транслируется со своим статусом и первым сообщением.
func TestToHTTP_RemoteError(t *testing.T) {
	t.Parallel()

	remote := &client.RemoteError{StatusCode: http.StatusConflict, Messages: []string{"Airport already exists"}}

	status, resp := ToHTTP(fmt.Errorf("client/airports/Create: %w", remote))
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "upstream", resp.Error.Code)
	require.Equal(t, "Airport already exists", resp.Error.Message)
}

// Неопознанная ошибка не утекает наружу текстом.
func TestToHTTP_InternalHidesDetails(t *testing.T) {
	t.Parallel()

	_, resp := ToHTTP(errors.New("pg: password authentication failed"))
	require.Equal(t, "internal error", resp.Error.Message)
	require.NotContains(t, resp.Error.Message, "password")
}

// WriteError: корректный статус, JSON-конверт, request_id из заголовка.
func TestWriteError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/airports", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()

	WriteError(rec, req, workspace.ErrNoSuchEntity)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "not_found", resp.Error.Code)
	require.Equal(t, "req-42", resp.Error.RequestID)
}
