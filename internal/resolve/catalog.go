package resolve

import "sync"

// Meta — метаданные предмета из каталога. Заполняются при загрузке,
// используются презентационным слоем (ссылка на вики, иконка, краткое имя).
type Meta struct {
	ShortName string
	WikiLink  string
	Icon      string
}

// CatalogItem — один предмет каталога при загрузке.
type CatalogItem struct {
	Name string
	Meta Meta
}

// Catalog — in-memory кэш каноничных имён и метаданных. Заполняется из
// удалённого каталога при старте (и по тикеру), заменяется целиком.
// Пустой каталог — деградация, а не ошибка: резолвер тогда работает
// только по словарю псевдонимов.
type Catalog struct {
	mu    sync.RWMutex
	names []string // порядок, как пришёл из каталога
	meta  map[string]Meta
}

func NewCatalog() *Catalog {
	return &Catalog{meta: map[string]Meta{}}
}

// Replace заменяет содержимое целиком. Дубликаты имён схлопываются
// (каноничные имена в кэше уникальны), выигрывает первое вхождение.
func (c *Catalog) Replace(items []CatalogItem) {
	names := make([]string, 0, len(items))
	meta := make(map[string]Meta, len(items))
	for _, it := range items {
		if it.Name == "" {
			continue
		}
		if _, seen := meta[it.Name]; seen {
			continue
		}
		names = append(names, it.Name)
		meta[it.Name] = it.Meta
	}
	c.mu.Lock()
	c.names, c.meta = names, meta
	c.mu.Unlock()
}

// AllNames возвращает копию списка имён в стабильном порядке.
func (c *Catalog) AllNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cp := make([]string, len(c.names))
	copy(cp, c.names)
	return cp
}

// Meta возвращает метаданные по каноничному имени.
func (c *Catalog) Meta(name string) (Meta, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.meta[name]
	return m, ok
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}
