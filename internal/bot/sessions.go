package bot

import (
	"errors"
	"sync"
	"time"

	"github.com/jagami/tarkovbot/internal/resolve"
)

var (
	// ErrNoSession — числовой ответ пришёл, а уточнение не открыто
	// (или уже протухло).
	ErrNoSession = errors.New("нет открытого уточнения")
	// ErrBadChoice — номер вне списка кандидатов; сессия остаётся открытой.
	ErrBadChoice = errors.New("номер вне списка")
)

// sessionKey — уточнение живёт на пару (канал, пользователь).
type sessionKey struct {
	channelID string
	userID    string
}

type pending struct {
	query      string
	candidates []resolve.Candidate
	created    time.Time
}

// sessionStore — открытые уточнения. На ключ не больше одной сессии:
// новый запрос того же пользователя молча заменяет старую (last-query-wins).
type sessionStore struct {
	mu  sync.Mutex
	m   map[sessionKey]*pending
	ttl time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &sessionStore{m: map[sessionKey]*pending{}, ttl: ttl}
}

// open создаёт/заменяет сессию для ключа.
func (ss *sessionStore) open(key sessionKey, query string, cands []resolve.Candidate) {
	ss.mu.Lock()
	ss.m[key] = &pending{query: query, candidates: cands, created: time.Now()}
	ss.mu.Unlock()
}

// drop снимает сессию (новый не-числовой запрос вытесняет уточнение).
func (ss *sessionStore) drop(key sessionKey) {
	ss.mu.Lock()
	delete(ss.m, key)
	ss.mu.Unlock()
}

// active — есть ли живая сессия для ключа.
func (ss *sessionStore) active(key sessionKey) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	p, ok := ss.m[key]
	if !ok {
		return false
	}
	if time.Since(p.created) > ss.ttl {
		delete(ss.m, key)
		return false
	}
	return true
}

// resolveSelection проверяет номер из [1..N]. Валидный номер закрывает
// сессию и возвращает имя; невалидный оставляет её открытой, чтобы
// пользователь мог попробовать ещё раз.
func (ss *sessionStore) resolveSelection(key sessionKey, n int) (string, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	p, ok := ss.m[key]
	if !ok {
		return "", ErrNoSession
	}
	if time.Since(p.created) > ss.ttl {
		delete(ss.m, key)
		return "", ErrNoSession
	}
	if n < 1 || n > len(p.candidates) {
		return "", ErrBadChoice
	}
	delete(ss.m, key)
	return p.candidates[n-1].Name, nil
}

// sweep убирает протухшие сессии; вызывается по тикеру из бота.
func (ss *sessionStore) sweep(now time.Time) {
	ss.mu.Lock()
	for k, p := range ss.m {
		if now.Sub(p.created) > ss.ttl {
			delete(ss.m, k)
		}
	}
	ss.mu.Unlock()
}

func (ss *sessionStore) len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.m)
}
