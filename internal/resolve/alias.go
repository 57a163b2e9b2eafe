package resolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// AliasEntry — одна пара «псевдоним -> каноничное имя».
// Один и тот же псевдоним может встречаться несколько раз с разными
// именами — тогда он считается неоднозначным.
type AliasEntry struct {
	Alias string `json:"alias"`
	Name  string `json:"name"`
}

// AliasStore хранит словарь псевдонимов. Ключи нормализованы (Normalize),
// порядок вставки сохраняется — это даёт детерминированный порядок
// кандидатов при fuzzy-переборе.
type AliasStore struct {
	mu    sync.RWMutex
	keys  []string            // порядок первого появления ключа
	byKey map[string][]string // ключ -> каноничные имена
}

func NewAliasStore() *AliasStore {
	return &AliasStore{byKey: map[string][]string{}}
}

// DefaultAliasStore — стор со встроенным словарём (см. aliasdata.go).
func DefaultAliasStore() *AliasStore {
	s := NewAliasStore()
	s.Replace(defaultAliases)
	return s
}

// Replace целиком заменяет таблицу. Новая таблица собирается отдельно и
// подставляется под локом одним присваиванием — читатели никогда не видят
// частично заполненный словарь.
func (s *AliasStore) Replace(entries []AliasEntry) {
	keys, byKey := buildAliasTable(entries)
	s.mu.Lock()
	s.keys, s.byKey = keys, byKey
	s.mu.Unlock()
}

// Add добавляет пару в рантайме (команда !alias add).
func (s *AliasStore) Add(alias, name string) {
	key := Normalize(alias)
	if key == "" || name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	names, ok := s.byKey[key]
	if !ok {
		s.keys = append(s.keys, key)
	}
	for _, n := range names {
		if n == name {
			return
		}
	}
	s.byKey[key] = append(names, name)
}

// Remove удаляет псевдоним целиком (все его имена).
func (s *AliasStore) Remove(alias string) {
	key := Normalize(alias)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byKey[key]; !ok {
		return
	}
	delete(s.byKey, key)
	out := s.keys[:0]
	for _, k := range s.keys {
		if k != key {
			out = append(out, k)
		}
	}
	s.keys = out
}

// LookupExact возвращает все каноничные имена для нормализованного ключа.
func (s *AliasStore) LookupExact(key string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := s.byKey[key]
	if len(names) == 0 {
		return nil
	}
	cp := make([]string, len(names))
	copy(cp, names)
	return cp
}

// Keys — все ключи в порядке вставки (для fuzzy-перебора).
func (s *AliasStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]string, len(s.keys))
	copy(cp, s.keys)
	return cp
}

func (s *AliasStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// ReloadFromURL забирает JSON-документ со списком AliasEntry и заменяет
// таблицу целиком. Любая ошибка (сеть, не-2xx, битый JSON) оставляет
// прежнюю таблицу нетронутой.
func (s *AliasStore) ReloadFromURL(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	cl := &http.Client{Timeout: 10 * time.Second}
	resp, err := cl.Do(req)
	if err != nil {
		return fmt.Errorf("alias doc: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.New("alias doc: non-2xx status")
	}

	var entries []AliasEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return fmt.Errorf("alias doc: %w", err)
	}

	s.Replace(entries)
	return nil
}

func buildAliasTable(entries []AliasEntry) ([]string, map[string][]string) {
	keys := make([]string, 0, len(entries))
	byKey := make(map[string][]string, len(entries))
	for _, e := range entries {
		key := Normalize(e.Alias)
		if key == "" || e.Name == "" {
			continue
		}
		names, seen := byKey[key]
		if !seen {
			keys = append(keys, key)
		}
		dup := false
		for _, n := range names {
			if n == e.Name {
				dup = true
				break
			}
		}
		if !dup {
			byKey[key] = append(names, e.Name)
		}
	}
	return keys, byKey
}
