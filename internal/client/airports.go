package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

// AirportsClient — CRUD по ресурсу /Airport.
type AirportsClient struct {
	base *base
}

// List возвращает все аэропорты.
func (c *AirportsClient) List(ctx context.Context) ([]models.Airport, error) {
	const op = "client/airports/List"

	var out []models.Airport
	if err := c.base.do(ctx, http.MethodGet, "/Airport", nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Create создаёт аэропорт и возвращает каноническую запись сервера
// (с назначенным id).
func (c *AirportsClient) Create(ctx context.Context, airport models.Airport) (*models.Airport, error) {
	const op = "client/airports/Create"

	var out models.Airport
	if err := c.base.do(ctx, http.MethodPost, "/Airport", airport, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// Update отправляет полную отредактированную запись и возвращает
// подтверждённую сервером версию.
func (c *AirportsClient) Update(ctx context.Context, airport models.Airport) (*models.Airport, error) {
	const op = "client/airports/Update"

	var out models.Airport
	if err := c.base.do(ctx, http.MethodPut, fmt.Sprintf("/Airport/%d", airport.ID), airport, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// Delete удаляет аэропорт по id.
func (c *AirportsClient) Delete(ctx context.Context, id int64) error {
	const op = "client/airports/Delete"

	if err := c.base.do(ctx, http.MethodDelete, fmt.Sprintf("/Airport/%d", id), nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
