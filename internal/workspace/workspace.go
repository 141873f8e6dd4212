// workspace — редактируемые коллекции админки.
//
// Пакет держит то, что оригинальный дашборд держал в памяти вкладки:
// подтверждённое состояние коллекций (аэропорты, новости одного
// аэропорта) и живые edit-сессии с учётом незакоммиченных загрузок.
//
// Дисциплина репликации: коллекция отражает ТОЛЬКО подтверждённые
// ответы сервера. Ни одна локальная мутация не происходит до ack:
// add — это append записи, которую вернул сервер; update — замена по id
// серверной версией; delete — фильтрация после успешного удаления.
// Спекулятивный UI намеренно не делаем, чтобы не маскировать отказы.
//
// Незакоммиченные загрузки: файл, залитый во время редактирования, но
// ещё не привязанный к сохранённой записи, отслеживается edit-сессией.
// На commit выживает только последний загруженный файл (остальные
// удаляются с апстрима), на cancel удаляются все. Ошибки этих удалений
// логируются и не блокируют исход — осиротевший блоб хуже, чем
// сорванный commit.
package workspace

import (
	"context"
	"errors"
	"io"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

var (
	// ErrNoSuchEntity — записи с таким id нет в подтверждённой коллекции.
	ErrNoSuchEntity = errors.New("no such entity")
	// ErrNoSuchSession — edit-сессия не найдена (или уже завершена).
	ErrNoSuchSession = errors.New("no such edit session")
	// ErrSessionState — операция не согласуется с состоянием сессии.
	ErrSessionState = errors.New("invalid edit session state")
)

// AirportsAPI — операции апстрима по ресурсу /Airport.
type AirportsAPI interface {
	List(ctx context.Context) ([]models.Airport, error)
	Create(ctx context.Context, airport models.Airport) (*models.Airport, error)
	Update(ctx context.Context, airport models.Airport) (*models.Airport, error)
	Delete(ctx context.Context, id int64) error
}

// NewsAPI — операции апстрима по ресурсу /News.
type NewsAPI interface {
	ByAirport(ctx context.Context, airportID int64) ([]models.News, error)
	Create(ctx context.Context, airportID int64, news models.News) (*models.News, error)
	Update(ctx context.Context, news models.News) (*models.News, error)
	Delete(ctx context.Context, id int64) error
}

// FileStore — удаление незакоммиченных блобов при сверке загрузок.
type FileStore interface {
	Delete(ctx context.Context, fileName string) error
}

// FileUploader — преднастроенный загрузчик (upload.Uploader).
type FileUploader interface {
	Upload(ctx context.Context, name, contentType string, size int64, file io.Reader) (*models.StoredFile, error)
}
