// upload — одиночный загрузчик файлов (виджет "выбери файл и загрузи").
//
// Загрузчик настраивается допустимым MIME-шаблоном и максимальным
// размером, за один вызов принимает ровно один файл и ничего не помнит
// между вызовами: учёт незакоммиченных загрузок — обязанность
// вызывающего (edit-сессия воркспейса). Валидация выполняется ДО
// какого-либо сетевого запроса: отклонённый файл не стоит ни одного
// обращения к апстриму.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

// Ошибки локальной валидации: запрос при них не выполняется.
var (
	ErrEmptyFile       = errors.New("empty file")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported content type")
)

// Store — пункт назначения загрузки (FilesClient или ImagesClient).
type Store interface {
	Upload(ctx context.Context, name string, file io.Reader) (*models.StoredFile, error)
}

// Uploader — преднастроенный загрузчик одного вида файлов.
type Uploader struct {
	accept  string // MIME-шаблон: точный ("application/pdf") или семейство ("image/*").
	maxSize int64
	store   Store
}

// NewMapUploader — загрузчик PDF-карт аэропортов.
func NewMapUploader(maxSize int64, store Store) *Uploader {
	return &Uploader{accept: "application/pdf", maxSize: maxSize, store: store}
}

// NewImageUploader — загрузчик изображений новостей.
func NewImageUploader(maxSize int64, store Store) *Uploader {
	return &Uploader{accept: "image/*", maxSize: maxSize, store: store}
}

// Upload валидирует файл и отправляет его в Store.
// size — заявленный размер в байтах; contentType — MIME-тип файла.
func (u *Uploader) Upload(ctx context.Context, name, contentType string, size int64, file io.Reader) (*models.StoredFile, error) {
	const op = "upload/Upload"

	if size <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyFile)
	}

	if size > u.maxSize {
		return nil, fmt.Errorf("%s: %w", op, ErrFileTooLarge)
	}

	if !accepts(u.accept, contentType) {
		return nil, fmt.Errorf("%s: %w", op, ErrUnsupportedType)
	}

	stored, err := u.store.Upload(ctx, name, io.LimitReader(file, u.maxSize))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stored, nil
}

// accepts сверяет MIME-тип с шаблоном: точное совпадение либо
// совпадение семейства ("image/*" принимает любой image/...).
func accepts(pattern, contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))

	if family, ok := strings.CutSuffix(pattern, "/*"); ok {
		return strings.HasPrefix(contentType, family+"/")
	}

	return contentType == pattern
}
