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

// News — вложенный воркспейс: новости одного аэропорта.
//
// Область видимости жёстко ограничена airportID, заданным при открытии:
// список грузится по нему, создание адресуется ему, привязка новости к
// аэропорту после создания неизменна. Строчное добавление (onRowAdd в
// оригинале) и строчное редактирование проходят через одинаковые
// edit-сессии с той же сверкой незакоммиченных загрузок, что и у
// аэропортов.
type News struct {
	airportID int64
	deps      NewsDeps
	coll      Collection[models.News]

	mu    sync.Mutex
	edits map[uuid.UUID]*EditSession[models.News]
}

func NewNews(airportID int64, deps NewsDeps) *News {
	return &News{
		airportID: airportID,
		deps:      deps,
		edits:     make(map[uuid.UUID]*EditSession[models.News]),
	}
}

// AirportID — аэропорт, которому принадлежит представление.
func (n *News) AirportID() int64 { return n.airportID }

// Load запрашивает новости аэропорта и замещает подтверждённое состояние.
func (n *News) Load(ctx context.Context) ([]models.News, error) {
	const op = "workspace/news/Load"

	items, err := n.deps.API.ByAirport(ctx, n.airportID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n.coll.ReplaceAll(items)

	return n.coll.Snapshot(), nil
}

// Snapshot — текущее подтверждённое состояние.
func (n *News) Snapshot() []models.News {
	return n.coll.Snapshot()
}

// Remove удаляет новость после подтверждения сервера.
func (n *News) Remove(ctx context.Context, id int64) error {
	const op = "workspace/news/Remove"

	if _, ok := n.coll.ByID(id); !ok {
		return fmt.Errorf("%s: %w", op, ErrNoSuchEntity)
	}

	if err := n.deps.API.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n.coll.RemoveByID(id)
	logctx.From(ctx).Info("news removed", "id", id, "airport_id", n.airportID)

	return nil
}

// BeginAdd открывает строчное добавление: пустой черновик, привязанный
// к аэропорту представления.
func (n *News) BeginAdd() *EditSession[models.News] {
	s := newEditSession(models.News{AirportID: n.airportID})

	n.mu.Lock()
	n.edits[s.ID()] = s
	n.mu.Unlock()

	return s
}

// BeginEdit открывает строчное редактирование существующей новости.
func (n *News) BeginEdit(id int64) (*EditSession[models.News], error) {
	const op = "workspace/news/BeginEdit"

	news, ok := n.coll.ByID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSuchEntity)
	}

	s := newEditSession(news)

	n.mu.Lock()
	n.edits[s.ID()] = s
	n.mu.Unlock()

	return s, nil
}

// Session возвращает живую edit-сессию по id.
func (n *News) Session(sid uuid.UUID) (*EditSession[models.News], error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	s, ok := n.edits[sid]
	if !ok {
		return nil, ErrNoSuchSession
	}

	return s, nil
}

// UploadImage загружает изображение в течение сессии: немедленная
// отправка на апстрим, учёт в незакоммиченных, обновление пары в
// черновике.
func (n *News) UploadImage(ctx context.Context, sid uuid.UUID, name, contentType string, size int64, file io.Reader) (*models.StoredFile, error) {
	const op = "workspace/news/UploadImage"

	s, err := n.Session(sid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.State() != StateEditing {
		return nil, fmt.Errorf("%s: %w", op, ErrSessionState)
	}

	stored, err := n.deps.Images.Upload(ctx, name, contentType, size, file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.Track(stored.FileName)

	if err := s.UpdateDraft(func(draft *models.News) {
		draft.ImageURL = stored.URL
		draft.ImageName = stored.FileName
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stored, nil
}

// Commit подтверждает сессию: черновик без id — create с append
// серверной записи, с id — update с заменой по id. При успехе выживает
// только последний незакоммиченный файл; при отказе локальное состояние
// не меняется.
func (n *News) Commit(ctx context.Context, sid uuid.UUID) (*models.News, error) {
	const op = "workspace/news/Commit"

	s, err := n.Session(sid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	draft, err := s.beginCommit()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if draft.ID == 0 {
		created, err := n.deps.API.Create(ctx, n.airportID, draft)
		if err != nil {
			s.failCommit()
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		n.coll.Append(*created)
		s.finishCommit(ctx, n.deps.Store)
		n.drop(sid)
		logctx.From(ctx).Info("news added", "id", created.ID, "airport_id", n.airportID)

		return created, nil
	}

	updated, err := n.deps.API.Update(ctx, draft)
	if err != nil {
		s.failCommit()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n.coll.ReplaceByID(*updated)
	s.finishCommit(ctx, n.deps.Store)
	n.drop(sid)
	logctx.From(ctx).Info("news updated", "id", updated.ID)

	return updated, nil
}

// Cancel отменяет сессию и удаляет все незакоммиченные изображения.
func (n *News) Cancel(ctx context.Context, sid uuid.UUID) error {
	const op = "workspace/news/Cancel"

	s, err := n.Session(sid)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cancel(ctx, n.deps.Store); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n.drop(sid)

	return nil
}

func (n *News) drop(sid uuid.UUID) {
	n.mu.Lock()
	delete(n.edits, sid)
	n.mu.Unlock()
}
