// client — типизированные REST-клиенты к FlyIt-бэкенду.
//
// Один базовый клиент (авторизация, единая обработка 401, разбор ошибок
// апстрима) и фасады по ресурсам: /Airport, /News, /File, /Image, /Auth.
// Каждая операция — ровно один сетевой вызов, без ретраев: повтор — это
// решение пользователя, а не транспорта.
//
// Политика 401 сквозная и одинакова для всех ресурсов: прежде чем отдать
// ошибку вызывающему, клиент закрывает сессию (Session.Invalidate), что
// поднимает наверх сигнал "разлогин + перезагрузка UI". Исключение —
// SignIn: он ходит без сессии, и его 401 означает лишь неверные
// креденшалы.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/config"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/session"
)

// ErrUnauthenticated — апстрим ответил 401; сессия уже инвалидирована.
var ErrUnauthenticated = errors.New("unauthenticated")

// fallbackMessage — текст для битого/пустого тела ошибки апстрима.
// Апстрим обещает массив строк, но полагаться на это нельзя.
const fallbackMessage = "upstream error"

// RemoteError — структурированная ошибка апстрима (не-401).
// Messages — сырой массив сообщений из тела ответа; может быть пуст.
type RemoteError struct {
	StatusCode int
	Messages   []string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message())
}

// Message возвращает первый элемент массива сообщений или fallback-текст,
// если тело отсутствовало либо не разобралось.
func (e *RemoteError) Message() string {
	if len(e.Messages) > 0 && e.Messages[0] != "" {
		return e.Messages[0]
	}

	return fallbackMessage
}

// Clients агрегирует все ресурсные клиенты апстрима.
type Clients struct {
	Airports *AirportsClient
	News     *NewsClient
	Files    *FilesClient
	Images   *ImagesClient
	Auth     *AuthClient
}

// New собирает базовый клиент и фасады над ним.
func New(cfg config.UpstreamConfig, sess *session.Session) *Clients {
	base := &base{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		tenant:  cfg.Tenant,
		session: sess,
		http:    &http.Client{Timeout: cfg.Timeout},
	}

	return &Clients{
		Airports: &AirportsClient{base: base},
		News:     &NewsClient{base: base},
		Files:    &FilesClient{base: base},
		Images:   &ImagesClient{base: base},
		Auth:     &AuthClient{base: base},
	}
}

// base — общий транспорт ресурсных клиентов.
type base struct {
	baseURL string
	tenant  string
	session *session.Session
	http    *http.Client
}

// do выполняет один JSON-запрос с политикой авторизации.
// body == nil — без тела; out == nil — тело ответа не разбираем.
func (b *base) do(ctx context.Context, method, path string, body, out any) error {
	const op = "client/do"

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return b.roundTrip(req, out, true)
}

// upload выполняет один multipart-запрос (поле field, файл name).
func (b *base) upload(ctx context.Context, path, field, name string, file io.Reader, out any) error {
	const op = "client/upload"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, name)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())

	return b.roundTrip(req, out, true)
}

// roundTrip — общий хвост запроса: заголовок авторизации, отправка,
// политика 401, разбор ошибки либо результата.
//
// authPolicy=false используется SignIn: заголовок не ставим, 401 не
// трогает сессию и превращается в обычный RemoteError.
func (b *base) roundTrip(req *http.Request, out any, authPolicy bool) error {
	const op = "client/roundTrip"

	if authPolicy {
		if token := b.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && authPolicy {
		// Сквозная политика: сначала гасим сессию, потом отдаём отказ.
		b.session.Invalidate()

		return fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return remoteError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode: %w", op, err)
		}
	}

	return nil
}

// remoteError разбирает тело ошибки апстрима: ожидаемая форма — массив
// строк; всё прочее даёт RemoteError с пустыми Messages и fallback-текстом.
func remoteError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return &RemoteError{StatusCode: resp.StatusCode}
	}

	var messages []string
	if err := json.Unmarshal(raw, &messages); err != nil {
		return &RemoteError{StatusCode: resp.StatusCode}
	}

	return &RemoteError{StatusCode: resp.StatusCode, Messages: messages}
}
