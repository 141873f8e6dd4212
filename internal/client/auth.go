package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

// AuthClient — вход в систему: POST /Auth/{tenant}/SignIn.
//
// Единственный клиент вне сквозной политики 401: запрос уходит без
// заголовка авторизации, а 401 здесь значит "неверные креденшалы" и
// не должен трогать (ещё не открытую) сессию.
type AuthClient struct {
	base *base
}

// SignIn обменивает email+пароль на access-токен. Токен НЕ сохраняется
// в сессию — это решение вызывающего: при отказе ничего не должно
// измениться.
func (c *AuthClient) SignIn(ctx context.Context, creds models.Credentials) (*models.Token, error) {
	const op = "client/auth/SignIn"

	raw, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal: %w", op, err)
	}

	url := fmt.Sprintf("%s/Auth/%s/SignIn", c.base.baseURL, c.base.tenant)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")

	var out models.Token
	if err := c.base.roundTrip(req, &out, false); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}
