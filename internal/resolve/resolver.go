package resolve

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Config — пороги резолвера. Все значения задаются оператором через
// конфиг бота; нули заполняются дефолтами (см. DefaultConfig).
type Config struct {
	// Общий порог для fuzzy-поиска по каталогу.
	GeneralThreshold int `json:"general_threshold"`
	// Порог для fuzzy-поиска по словарю псевдонимов. Выше общего:
	// совпадение с псевдонимом значит больше, чем с длинным именем.
	AliasThreshold int `json:"alias_threshold"`
	// Отрыв лидера от второго места, при котором уточнение не нужно.
	AcceptMargin int `json:"accept_margin"`
	// Чисто числовой запрос короче этой длины не ищется по каталогу.
	NumericGuardLen int `json:"numeric_guard_len"`
	// Очки за вхождение подстрокой в имя каталога.
	SubstringScore int `json:"substring_score"`
	// Сколько fuzzy-совпадений каталога берём в слияние.
	CatalogTopK int `json:"catalog_top_k"`
	// Сколько кандидатов показываем при уточнении.
	MaxCandidates int `json:"max_candidates"`
}

func DefaultConfig() Config {
	return Config{
		GeneralThreshold: 65,
		AliasThreshold:   80,
		AcceptMargin:     15,
		NumericGuardLen:  3,
		SubstringScore:   90,
		CatalogTopK:      15,
		MaxCandidates:    5,
	}
}

// withDefaults заполняет незаданные поля дефолтами.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.GeneralThreshold <= 0 {
		c.GeneralThreshold = d.GeneralThreshold
	}
	if c.AliasThreshold <= 0 {
		c.AliasThreshold = d.AliasThreshold
	}
	if c.AcceptMargin <= 0 {
		c.AcceptMargin = d.AcceptMargin
	}
	if c.NumericGuardLen <= 0 {
		c.NumericGuardLen = d.NumericGuardLen
	}
	if c.SubstringScore <= 0 {
		c.SubstringScore = d.SubstringScore
	}
	if c.CatalogTopK <= 0 {
		c.CatalogTopK = d.CatalogTopK
	}
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = d.MaxCandidates
	}
	return c
}

// Kind — исход резолва.
type Kind int

const (
	NotFound  Kind = iota // ни один кандидат не прошёл порог
	Confident             // единственный уверенный ответ
	Ambiguous             // несколько кандидатов, нужно уточнение
)

// Candidate — каноничное имя с очками похожести 0..100.
type Candidate struct {
	Name  string
	Score int
}

// Resolution — результат Resolve. Для Confident заполнены Name/Score,
// для Ambiguous — Candidates (по убыванию очков), Query всегда исходный.
type Resolution struct {
	Kind       Kind
	Name       string
	Score      int
	Candidates []Candidate
	Query      string
}

// Resolver превращает свободный ввод пользователя в каноничное имя
// предмета (или список кандидатов). Источники: словарь псевдонимов и
// каталог; оба опрашиваются, очки сливаются по максимуму.
type Resolver struct {
	aliases *AliasStore
	catalog *Catalog
	cfg     Config
}

func NewResolver(aliases *AliasStore, catalog *Catalog, cfg Config) *Resolver {
	return &Resolver{aliases: aliases, catalog: catalog, cfg: cfg.withDefaults()}
}

func (r *Resolver) Config() Config { return r.cfg }

// Resolve — основной алгоритм. Порядок правил:
//  1. точное совпадение с ключом словаря (очки 100);
//  2. отсечка коротких числовых запросов;
//  3. fuzzy по ключам словаря (порог AliasThreshold);
//  4. подстрока в имени каталога (SubstringScore);
//  5. fuzzy по именам каталога (порог GeneralThreshold, top-K);
//  6. слияние по максимуму очков, порядок — очки, затем первое появление;
//  7. решение: пусто -> NotFound, явный лидер -> Confident, иначе Ambiguous.
func (r *Resolver) Resolve(raw string) Resolution {
	key := Normalize(raw)
	if key == "" {
		return Resolution{Kind: NotFound, Query: raw}
	}

	// 1) точный псевдоним
	if names := r.aliases.LookupExact(key); len(names) > 0 {
		if len(names) == 1 {
			return Resolution{Kind: Confident, Name: names[0], Score: 100, Query: raw}
		}
		cands := make([]Candidate, 0, len(names))
		for _, n := range names {
			cands = append(cands, Candidate{Name: n, Score: 100})
		}
		return Resolution{Kind: Ambiguous, Candidates: truncate(cands, r.cfg.MaxCandidates), Query: raw}
	}

	// 2) короткие числа ("74", "5") совпадают с половиной калибров —
	// в каталог их не пускаем
	if isDigits(key) && len(key) < r.cfg.NumericGuardLen {
		return Resolution{Kind: NotFound, Query: raw}
	}

	m := newMerger()

	// 3) fuzzy по словарю
	for _, ak := range r.aliases.Keys() {
		score := fuzzy.TokenSortRatio(key, ak)
		if score < r.cfg.AliasThreshold {
			continue
		}
		for _, n := range r.aliases.LookupExact(ak) {
			m.add(n, score)
		}
	}

	// 4)+5) каталог: подстрока либо fuzzy
	var fuzzyHits []Candidate
	for _, name := range r.catalog.AllNames() {
		nk := Normalize(name)
		if strings.Contains(nk, key) {
			m.add(name, r.cfg.SubstringScore)
			continue
		}
		if s := fuzzy.TokenSortRatio(key, nk); s >= r.cfg.GeneralThreshold {
			fuzzyHits = append(fuzzyHits, Candidate{Name: name, Score: s})
		}
	}
	sort.SliceStable(fuzzyHits, func(i, j int) bool { return fuzzyHits[i].Score > fuzzyHits[j].Score })
	if len(fuzzyHits) > r.cfg.CatalogTopK {
		fuzzyHits = fuzzyHits[:r.cfg.CatalogTopK]
	}
	for _, h := range fuzzyHits {
		m.add(h.Name, h.Score)
	}

	// 6) слияние
	cands := m.ranked()

	// 7) решение
	switch {
	case len(cands) == 0:
		return Resolution{Kind: NotFound, Query: raw}
	case len(cands) == 1:
		if cands[0].Score >= r.cfg.GeneralThreshold {
			return Resolution{Kind: Confident, Name: cands[0].Name, Score: cands[0].Score, Query: raw}
		}
		return Resolution{Kind: NotFound, Query: raw}
	default:
		top, next := cands[0], cands[1]
		if top.Score >= r.cfg.GeneralThreshold && top.Score-next.Score >= r.cfg.AcceptMargin {
			return Resolution{Kind: Confident, Name: top.Name, Score: top.Score, Query: raw}
		}
		return Resolution{Kind: Ambiguous, Candidates: truncate(cands, r.cfg.MaxCandidates), Query: raw}
	}
}

// merger сливает кандидатов из разных шагов: по имени оставляет максимум
// очков, порядок первого появления запоминает для стабильных ничьих.
type merger struct {
	order []string
	best  map[string]int
}

func newMerger() *merger {
	return &merger{best: map[string]int{}}
}

func (m *merger) add(name string, score int) {
	if prev, ok := m.best[name]; ok {
		if score > prev {
			m.best[name] = score
		}
		return
	}
	m.order = append(m.order, name)
	m.best[name] = score
}

func (m *merger) ranked() []Candidate {
	out := make([]Candidate, 0, len(m.order))
	for _, n := range m.order {
		out = append(out, Candidate{Name: n, Score: m.best[n]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func truncate(cands []Candidate, max int) []Candidate {
	if max > 0 && len(cands) > max {
		return cands[:max]
	}
	return cands
}
