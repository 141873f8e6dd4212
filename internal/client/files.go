package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

// FilesClient — загрузка и удаление PDF-карт (/File).
//
// Контракт загрузки: сервер всегда возвращает пару {url, fileName};
// имя выбирает сервер, клиентское имя файла — только подсказка.
type FilesClient struct {
	base *base
}

// Upload отправляет файл multipart-формой (поле "file").
func (c *FilesClient) Upload(ctx context.Context, name string, file io.Reader) (*models.StoredFile, error) {
	const op = "client/files/Upload"

	var out models.StoredFile
	if err := c.base.upload(ctx, "/File", "file", name, file, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// Delete удаляет сохранённый файл по серверному имени.
func (c *FilesClient) Delete(ctx context.Context, fileName string) error {
	const op = "client/files/Delete"

	if err := c.base.do(ctx, http.MethodDelete, "/File/"+url.PathEscape(fileName), nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ImagesClient — загрузка и удаление изображений новостей (/Image).
// Контракт идентичен FilesClient, отличается только имя multipart-поля.
type ImagesClient struct {
	base *base
}

// Upload отправляет изображение multipart-формой (поле "image").
func (c *ImagesClient) Upload(ctx context.Context, name string, file io.Reader) (*models.StoredFile, error) {
	const op = "client/images/Upload"

	var out models.StoredFile
	if err := c.base.upload(ctx, "/Image", "image", name, file, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// Delete удаляет сохранённое изображение по серверному имени.
func (c *ImagesClient) Delete(ctx context.Context, fileName string) error {
	const op = "client/images/Delete"

	if err := c.base.do(ctx, http.MethodDelete, "/Image/"+url.PathEscape(fileName), nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
