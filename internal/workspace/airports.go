package workspace

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
	logctx "github.com/gundarsv/FlyIt-AirportsAdministrator/internal/pkg/log"
)

// NewsDeps — зависимости новостного воркспейса (передаются при
// открытии вложенного представления).
type NewsDeps struct {
	API    NewsAPI
	Images FileUploader
	Store  FileStore
}

// AirportsDeps — зависимости воркспейса аэропортов.
type AirportsDeps struct {
	API   AirportsAPI
	Maps  FileUploader
	Store FileStore
	News  NewsDeps
}

// Airports — редактируемая коллекция аэропортов: таблица со строчными
// операциями плюс боковая форма "добавить аэропорт".
type Airports struct {
	deps AirportsDeps
	coll Collection[models.Airport]

	mu    sync.Mutex
	edits map[uuid.UUID]*EditSession[models.Airport]
}

func NewAirports(deps AirportsDeps) *Airports {
	return &Airports{
		deps:  deps,
		edits: make(map[uuid.UUID]*EditSession[models.Airport]),
	}
}

// Load запрашивает список с апстрима и замещает подтверждённое состояние.
func (a *Airports) Load(ctx context.Context) ([]models.Airport, error) {
	const op = "workspace/airports/Load"

	items, err := a.deps.API.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a.coll.ReplaceAll(items)

	return a.coll.Snapshot(), nil
}

// Snapshot — текущее подтверждённое состояние коллекции.
func (a *Airports) Snapshot() []models.Airport {
	return a.coll.Snapshot()
}

// Remove удаляет аэропорт: сначала подтверждение сервера, потом
// фильтрация локальной коллекции. Возвращает удалённую запись.
func (a *Airports) Remove(ctx context.Context, id int64) (*models.Airport, error) {
	const op = "workspace/airports/Remove"

	airport, ok := a.coll.ByID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSuchEntity)
	}

	if err := a.deps.API.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a.coll.RemoveByID(id)
	logctx.From(ctx).Info("airport removed", "id", id, "iata", airport.Iata)

	return &airport, nil
}

// BeginForm открывает сессию боковой формы: черновик пуст, id появится
// только после подтверждённого создания.
func (a *Airports) BeginForm() *EditSession[models.Airport] {
	s := newEditSession(models.Airport{})

	a.mu.Lock()
	a.edits[s.ID()] = s
	a.mu.Unlock()

	return s
}

// BeginEdit открывает строчное редактирование существующей записи.
func (a *Airports) BeginEdit(id int64) (*EditSession[models.Airport], error) {
	const op = "workspace/airports/BeginEdit"

	airport, ok := a.coll.ByID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSuchEntity)
	}

	s := newEditSession(airport)

	a.mu.Lock()
	a.edits[s.ID()] = s
	a.mu.Unlock()

	return s, nil
}

// Session возвращает живую edit-сессию по id.
func (a *Airports) Session(sid uuid.UUID) (*EditSession[models.Airport], error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.edits[sid]
	if !ok {
		return nil, ErrNoSuchSession
	}

	return s, nil
}

// UploadMap загружает новую карту в течение сессии: файл уходит на
// апстрим сразу, имя попадает в учёт незакоммиченных, черновик получает
// новую пару url+имя. Привязка к записи произойдёт только на commit.
func (a *Airports) UploadMap(ctx context.Context, sid uuid.UUID, name, contentType string, size int64, file io.Reader) (*models.StoredFile, error) {
	const op = "workspace/airports/UploadMap"

	s, err := a.Session(sid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.State() != StateEditing {
		return nil, fmt.Errorf("%s: %w", op, ErrSessionState)
	}

	stored, err := a.deps.Maps.Upload(ctx, name, contentType, size, file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.Track(stored.FileName)

	if err := s.UpdateDraft(func(draft *models.Airport) {
		draft.MapURL = stored.URL
		draft.MapName = stored.FileName
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stored, nil
}

// RemoveFormMap — кнопка "убрать карту" в боковой форме: ВСЕ
// загруженные за сессию файлы удаляются с апстрима немедленно
// (best-effort), пара в черновике и учёт незакоммиченных очищаются.
//
// Только для формы (черновик без id): в строчном редактировании пара
// черновика указывает на файл подтверждённой записи, и трогать его
// до commit нельзя.
func (a *Airports) RemoveFormMap(ctx context.Context, sid uuid.UUID) error {
	const op = "workspace/airports/RemoveFormMap"

	s, err := a.Session(sid)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	draft := s.Draft()
	if s.State() != StateEditing || draft.ID != 0 {
		return fmt.Errorf("%s: %w", op, ErrSessionState)
	}

	if draft.MapName == "" {
		return fmt.Errorf("%s: %w", op, ErrNoSuchEntity)
	}

	deleteFiles(ctx, a.deps.Store, s.takeUnsaved())

	if err := s.UpdateDraft(func(draft *models.Airport) {
		draft.MapURL = ""
		draft.MapName = ""
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Commit подтверждает сессию.
//
// Черновик без id — это боковая форма: сначала валидация обязательных
// полей (при провале — FieldErrors, ни одного запроса в сеть), затем
// create и append подтверждённой записи. Черновик с id — строчное
// редактирование: update и замена по id. В обоих случаях при успехе
// выживает только последний незакоммиченный файл; при отказе сервера
// локальное состояние остаётся нетронутым, сессия возвращается в
// editing.
func (a *Airports) Commit(ctx context.Context, sid uuid.UUID) (*models.Airport, error) {
	const op = "workspace/airports/Commit"

	s, err := a.Session(sid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	draft, err := s.beginCommit()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if draft.ID == 0 {
		if errs := ValidateAirport(draft); errs != nil {
			s.failCommit()
			return nil, errs
		}

		created, err := a.deps.API.Create(ctx, draft)
		if err != nil {
			s.failCommit()
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		a.coll.Append(*created)
		s.finishCommit(ctx, a.deps.Store)
		a.drop(sid)
		logctx.From(ctx).Info("airport added", "id", created.ID, "iata", created.Iata)

		return created, nil
	}

	updated, err := a.deps.API.Update(ctx, draft)
	if err != nil {
		s.failCommit()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a.coll.ReplaceByID(*updated)
	s.finishCommit(ctx, a.deps.Store)
	a.drop(sid)
	logctx.From(ctx).Info("airport updated", "id", updated.ID)

	return updated, nil
}

// Cancel отменяет сессию: все незакоммиченные файлы удаляются с
// апстрима, локальная коллекция не меняется. Закрытие боковой формы без
// отправки — тот же путь.
func (a *Airports) Cancel(ctx context.Context, sid uuid.UUID) error {
	const op = "workspace/airports/Cancel"

	s, err := a.Session(sid)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cancel(ctx, a.deps.Store); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.drop(sid)

	return nil
}

// News открывает вложенный воркспейс новостей одной строки таблицы.
func (a *Airports) News(airportID int64) *News {
	return NewNews(airportID, a.deps.News)
}

func (a *Airports) drop(sid uuid.UUID) {
	a.mu.Lock()
	delete(a.edits, sid)
	a.mu.Unlock()
}
