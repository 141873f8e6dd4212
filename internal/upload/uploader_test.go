package upload

// Тесты загрузчика (internal/upload/uploader.go).
//
//  Проверяем:
//  - локальную валидацию ДО сети: пустой файл, превышение размера,
//    неподдерживаемый MIME-тип — Store не вызывается;
//  - сверку MIME-шаблонов (точный тип и семейство image/*);
//  - happy-path: файл доходит до Store с тем же именем.
//
// Подготовка окружения:
//   go test ./internal/upload -v -race -count=1

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

// fakeStore — счётный стаб назначения загрузки.
type fakeStore struct {
	calls int
	name  string
	body  string
	err   error
}

func (f *fakeStore) Upload(_ context.Context, name string, file io.Reader) (*models.StoredFile, error) {
	f.calls++
	f.name = name

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	f.body = string(raw)

	if f.err != nil {
		return nil, f.err
	}

	return &models.StoredFile{URL: "https://blob/" + name, FileName: name}, nil
}

// Пустой файл (size <= 0) -> ErrEmptyFile, сеть не трогается.
func TestUploader_EmptyFile(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	u := NewMapUploader(100, store)

	_, err := u.Upload(context.Background(), "map.pdf", "application/pdf", 0, strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyFile)
	require.Zero(t, store.calls)
}

// Превышение максимального размера -> ErrFileTooLarge, сеть не трогается.
func TestUploader_FileTooLarge(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	u := NewMapUploader(10, store)

	_, err := u.Upload(context.Background(), "map.pdf", "application/pdf", 11, strings.NewReader("..."))
	require.ErrorIs(t, err, ErrFileTooLarge)
	require.Zero(t, store.calls)
}

// Неподдерживаемый тип -> ErrUnsupportedType, сеть не трогается.
func TestUploader_UnsupportedType(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	u := NewMapUploader(100, store)

	_, err := u.Upload(context.Background(), "map.docx", "application/msword", 5, strings.NewReader("doc"))
	require.ErrorIs(t, err, ErrUnsupportedType)
	require.Zero(t, store.calls)
}

// Загрузчик карт принимает ровно application/pdf.
func TestUploader_MapAcceptsPDFOnly(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	u := NewMapUploader(100, store)

	_, err := u.Upload(context.Background(), "pic.png", "image/png", 4, strings.NewReader("png!"))
	require.ErrorIs(t, err, ErrUnsupportedType)

	_, err = u.Upload(context.Background(), "map.pdf", "application/pdf", 4, strings.NewReader("pdf!"))
	require.NoError(t, err)
}

// Загрузчик изображений принимает всё семейство image/*.
func TestUploader_ImageAcceptsFamily(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	u := NewImageUploader(100, store)

	for _, ct := range []string{"image/png", "image/jpeg", "IMAGE/GIF", " image/webp "} {
		_, err := u.Upload(context.Background(), "pic", ct, 4, strings.NewReader("data"))
		require.NoError(t, err, ct)
	}

	_, err := u.Upload(context.Background(), "map.pdf", "application/pdf", 4, strings.NewReader("pdf!"))
	require.ErrorIs(t, err, ErrUnsupportedType)
}

// Happy-path: файл доходит до Store с исходным именем и содержимым.
func TestUploader_Upload_OK(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	u := NewMapUploader(100, store)

	stored, err := u.Upload(context.Background(), "map.pdf", "application/pdf", 8, strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	require.Equal(t, "map.pdf", stored.FileName)
	require.Equal(t, 1, store.calls)
	require.Equal(t, "map.pdf", store.name)
	require.Equal(t, "%PDF-1.4", store.body)
}

// Ошибка Store уходит наружу обёрнутой.
func TestUploader_StoreError(t *testing.T) {
	t.Parallel()

	want := errors.New("upstream down")
	store := &fakeStore{err: want}
	u := NewImageUploader(100, store)

	_, err := u.Upload(context.Background(), "pic.png", "image/png", 4, strings.NewReader("png!"))
	require.ErrorIs(t, err, want)
}
