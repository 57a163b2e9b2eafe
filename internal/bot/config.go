package bot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// AliasConf — операторская пара «псевдоним -> имя», живёт поверх
// встроенного словаря и переживает рестарт.
type AliasConf struct {
	Alias string `json:"alias"`
	Name  string `json:"name"`
}

type BotConfig struct {
	Aliases []AliasConf `json:"aliases"`
}

type configStore struct {
	mu   sync.Mutex
	path string
	data BotConfig
}

// UseConfig подключает персистентный конфиг и применяет операторские
// псевдонимы к стору.
func (bot *TarkovBot) UseConfig(path string) error {
	bot.cfg = newConfigStore(path)
	if err := bot.cfg.Load(); err != nil {
		return err
	}
	bot.applyConfigAliases()
	return nil
}

// applyConfigAliases накатывает операторские пары поверх текущего словаря.
// Вызывается при загрузке конфига и после перезагрузки удалённого словаря
// (replace стирает добавленное в рантайме).
func (bot *TarkovBot) applyConfigAliases() {
	if bot.cfg == nil {
		return
	}
	bot.cfg.mu.Lock()
	defer bot.cfg.mu.Unlock()
	for _, a := range bot.cfg.data.Aliases {
		bot.aliases.Add(a.Alias, a.Name)
	}
}

func (cs *configStore) Load() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	f := cs.path
	_ = os.MkdirAll(filepath.Dir(f), 0755)
	b, err := os.ReadFile(f)
	if err != nil {
		if os.IsNotExist(err) {
			return cs.save() // создаём пустой
		}
		return err
	}
	return json.Unmarshal(b, &cs.data)
}

func (cs *configStore) Save() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.save()
}

func (cs *configStore) save() error {
	b, err := json.MarshalIndent(&cs.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(cs.path, b, 0644)
}

func newConfigStore(path string) *configStore {
	return &configStore{path: path}
}
