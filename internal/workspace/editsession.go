package workspace

import (
	"context"
	"sync"

	"github.com/google/uuid"

	logctx "github.com/gundarsv/FlyIt-AirportsAdministrator/internal/pkg/log"
)

// SessionState — состояние edit-сессии.
//
// Машина состояний явная (вместо замыкания над мутабельным массивом
// в оригинале): editing -> committing -> closed при успехе,
// committing -> editing при отказе сервера, editing -> cancelling ->
// closed при отмене. Повторное использование закрытой сессии — ошибка.
type SessionState int

const (
	StateEditing SessionState = iota
	StateCommitting
	StateCancelling
	StateClosed
)

// EditSession — одна add/edit-операция над записью T.
//
// Черновик (draft) — локальная копия записи, которую правит пользователь;
// unsaved — упорядоченный список имён файлов, загруженных в течение
// сессии и ещё не принадлежащих ни одной сохранённой записи.
type EditSession[T Entity] struct {
	id uuid.UUID

	mu      sync.Mutex
	state   SessionState
	draft   T
	unsaved []string
}

func newEditSession[T Entity](draft T) *EditSession[T] {
	return &EditSession[T]{
		id:    uuid.New(),
		state: StateEditing,
		draft: draft,
	}
}

// ID — идентификатор сессии.
func (s *EditSession[T]) ID() uuid.UUID { return s.id }

// State — текущее состояние.
func (s *EditSession[T]) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Draft возвращает текущий черновик.
func (s *EditSession[T]) Draft() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draft
}

// UpdateDraft применяет правку к черновику. Разрешено только в editing.
func (s *EditSession[T]) UpdateDraft(fn func(*T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return ErrSessionState
	}

	fn(&s.draft)

	return nil
}

// Track дописывает имя загруженного файла в хвост списка незакоммиченных.
func (s *EditSession[T]) Track(fileName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unsaved = append(s.unsaved, fileName)
}

// Unsaved — копия списка незакоммиченных файлов (для тестов и отладки).
func (s *EditSession[T]) Unsaved() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.unsaved))
	copy(out, s.unsaved)

	return out
}

// takeUnsaved атомарно забирает список незакоммиченных файлов и
// сбрасывает учёт; удаление с апстрима — забота вызывающего.
func (s *EditSession[T]) takeUnsaved() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.unsaved
	s.unsaved = nil

	return out
}

// beginCommit переводит editing -> committing.
func (s *EditSession[T]) beginCommit() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if s.state != StateEditing {
		return zero, ErrSessionState
	}

	s.state = StateCommitting

	return s.draft, nil
}

// failCommit откатывает committing -> editing: сервер отказал, сессия
// живёт дальше, незакоммиченные файлы остаются под учётом.
func (s *EditSession[T]) failCommit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateCommitting {
		s.state = StateEditing
	}
}

// finishCommit завершает успешный commit: удаляет с апстрима все
// незакоммиченные файлы, кроме последнего (именно он попал в запись),
// чистит учёт и закрывает сессию.
func (s *EditSession[T]) finishCommit(ctx context.Context, store FileStore) {
	s.mu.Lock()
	pending := s.unsaved
	s.unsaved = nil
	s.state = StateClosed
	s.mu.Unlock()

	if len(pending) > 1 {
		deleteFiles(ctx, store, pending[:len(pending)-1])
	}
}

// cancel завершает сессию отменой: удаляет с апстрима ВСЕ
// незакоммиченные файлы. Отмена без загрузок — no-op по сети.
func (s *EditSession[T]) cancel(ctx context.Context, store FileStore) error {
	s.mu.Lock()

	if s.state != StateEditing {
		s.mu.Unlock()
		return ErrSessionState
	}

	s.state = StateCancelling
	pending := s.unsaved
	s.unsaved = nil
	s.mu.Unlock()

	deleteFiles(ctx, store, pending)

	s.mu.Lock()
	s.state = StateClosed
	s.mu.Unlock()

	return nil
}

// deleteFiles удаляет файлы по одному, best-effort: отказ одного
// удаления не останавливает остальные и не меняет исход операции.
func deleteFiles(ctx context.Context, store FileStore, names []string) {
	lg := logctx.From(ctx)

	for _, name := range names {
		if err := store.Delete(ctx, name); err != nil {
			lg.Warn("unsaved upload cleanup failed", "file", name, "err", err)
		}
	}
}
