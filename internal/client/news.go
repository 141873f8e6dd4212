package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

// NewsClient — CRUD по ресурсу /News.
// Новости живут только в привязке к аэропорту: список и создание
// адресуются его id.
type NewsClient struct {
	base *base
}

// newsFields — тело create/update: id и привязка не передаются,
// их назначает сервер (id — всегда, airportId — из пути при создании).
type newsFields struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageURL  string `json:"imageurl"`
	ImageName string `json:"imageName"`
}

func fieldsOf(n models.News) newsFields {
	return newsFields{
		Title:     n.Title,
		Body:      n.Body,
		ImageURL:  n.ImageURL,
		ImageName: n.ImageName,
	}
}

// ByAirport возвращает новости одного аэропорта.
func (c *NewsClient) ByAirport(ctx context.Context, airportID int64) ([]models.News, error) {
	const op = "client/news/ByAirport"

	var out []models.News
	if err := c.base.do(ctx, http.MethodGet, fmt.Sprintf("/News/airport/%d", airportID), nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Create создаёт новость у аэропорта airportID и возвращает каноническую
// запись сервера.
func (c *NewsClient) Create(ctx context.Context, airportID int64, news models.News) (*models.News, error) {
	const op = "client/news/Create"

	var out models.News
	if err := c.base.do(ctx, http.MethodPost, fmt.Sprintf("/News/%d", airportID), fieldsOf(news), &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// Update отправляет полную отредактированную новость.
func (c *NewsClient) Update(ctx context.Context, news models.News) (*models.News, error) {
	const op = "client/news/Update"

	var out models.News
	if err := c.base.do(ctx, http.MethodPut, fmt.Sprintf("/News/%d", news.ID), fieldsOf(news), &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// Delete удаляет новость по id.
func (c *NewsClient) Delete(ctx context.Context, id int64) error {
	const op = "client/news/Delete"

	if err := c.base.do(ctx, http.MethodDelete, fmt.Sprintf("/News/%d", id), nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
