// session — явный объект сессии с апстримом (Session/Auth Gate).
//
// Токен не хранится в глобальном состоянии: Session создаётся при старте
// процесса, открывается по факту SignIn и закрывается либо явным
// SignOut, либо первым 401 от любого ресурсного клиента. Хук
// OnInvalidate — сигнал "перезагрузи UI": срабатывает ровно один раз
// на одну инвалидизацию, независимо от того, сколько клиентов поймали
// 401 одновременно.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session — процессный держатель bearer-токена апстрима.
// Безопасен для конкурентного использования.
type Session struct {
	mu           sync.Mutex
	token        string
	onInvalidate func()
}

// New возвращает закрытую сессию.
// onInvalidate может быть nil; вызывается без удержания мьютекса.
func New(onInvalidate func()) *Session {
	return &Session{onInvalidate: onInvalidate}
}

// Open сохраняет access-токен после успешного SignIn.
// Повторный Open заменяет токен (повторный вход).
func (s *Session) Open(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Token возвращает текущий токен или пустую строку, если сессии нет.
// Пустая строка означает "заголовок Authorization не ставим".
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

// Active сообщает, открыта ли сессия.
func (s *Session) Active() bool {
	return s.Token() != ""
}

// Invalidate вычищает токен и один раз дёргает хук OnInvalidate.
// Идемпотентен: повторный вызов на уже закрытой сессии — no-op.
func (s *Session) Invalidate() {
	s.mu.Lock()

	if s.token == "" {
		s.mu.Unlock()
		return
	}

	s.token = ""
	hook := s.onInvalidate
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// ExpiresAt достаёт exp-claim из JWT без проверки подписи: админка не
// владеет секретом апстрима, ей нужен только срок жизни. Возвращает
// нулевое время, если сессии нет или токен не разбирается как JWT.
func (s *Session) ExpiresAt() time.Time {
	token := s.Token()
	if token == "" {
		return time.Time{}
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}

	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}
