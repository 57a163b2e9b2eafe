package bot

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jagami/tarkovbot/internal/market"
	"github.com/jagami/tarkovbot/internal/resolve"
)

// Conf — настройки бота (см. conf/botconfig.json). Все пороги резолвера
// прокидываются оператором как есть.
type Conf struct {
	Prefix        string         `json:"prefix"`          // префикс команд, по умолчанию "!"
	TwitchURL     string         `json:"twitch_url"`      // ссылка в футере эмбеда, опционально
	AliasDocURL   string         `json:"alias_doc_url"`   // удалённый словарь псевдонимов, опционально
	RefreshMin    int            `json:"refresh_min"`     // период обновления каталога, 0 = без тикера
	SessionTTLSec int            `json:"session_ttl_sec"` // жизнь уточнения, по умолчанию 30с
	Resolver      resolve.Config `json:"resolver"`
}

// TarkovBot — бот-прайсчекер: слушает сообщения Discord, разбирает
// запросы через resolve и отвечает эмбедом с ценами Tarkov-Market.
type TarkovBot struct {
	dg     *discordgo.Session
	market *market.Client

	aliases  *resolve.AliasStore
	catalog  *resolve.Catalog
	resolver *resolve.Resolver
	sessions *sessionStore

	cfg  *configStore
	conf Conf

	stopCh chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func New(conf Conf) *TarkovBot {
	if conf.Prefix == "" {
		conf.Prefix = "!"
	}
	aliases := resolve.DefaultAliasStore()
	catalog := resolve.NewCatalog()
	return &TarkovBot{
		aliases:  aliases,
		catalog:  catalog,
		resolver: resolve.NewResolver(aliases, catalog, conf.Resolver),
		sessions: newSessionStore(time.Duration(conf.SessionTTLSec) * time.Second),
		conf:     conf,
	}
}

// SetDiscord подключает сессию Discord по токену.
func (bot *TarkovBot) SetDiscord(token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return err
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
	bot.dg = dg
	return nil
}

// SetMarket подключает клиент Tarkov-Market.
func (bot *TarkovBot) SetMarket(conf market.Conf) {
	bot.market = market.NewClientFromConf(conf)
}

func (bot *TarkovBot) Start() error {
	if bot == nil {
		return errors.New("бот не инициализирован")
	}
	if bot.dg == nil {
		return errors.New("модуль discord не инициализирован")
	}
	if bot.market == nil {
		return errors.New("модуль market не инициализирован")
	}
	if bot.stopCh != nil {
		return errors.New("уже запущен")
	}
	bot.stopCh = make(chan struct{})

	// стартовая загрузка каталога и словаря; ошибка — деградация, не фатал
	bot.refreshSources()

	bot.dg.AddHandler(bot.onMessageCreate)
	bot.dg.AddHandler(bot.onInteractionCreate)

	if err := bot.dg.Open(); err != nil {
		bot.stopCh = nil
		return err
	}
	log.Println("[bot] discord gateway открыт")

	// уборка протухших уточнений
	bot.wg.Add(1)
	go func() {
		defer bot.wg.Done()
		t := time.NewTicker(10 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				bot.sessions.sweep(time.Now())
			case <-bot.stopCh:
				return
			}
		}
	}()

	// периодическое обновление каталога
	if bot.conf.RefreshMin > 0 {
		bot.wg.Add(1)
		go func() {
			defer bot.wg.Done()
			t := time.NewTicker(time.Duration(bot.conf.RefreshMin) * time.Minute)
			defer t.Stop()
			for {
				select {
				case <-t.C:
					bot.refreshSources()
				case <-bot.stopCh:
					return
				}
			}
		}()
	}

	// сторож для остановки
	bot.wg.Add(1)
	go func() {
		defer bot.wg.Done()
		<-bot.stopCh
		if err := bot.dg.Close(); err != nil {
			log.Println("[bot] close:", err)
		}
	}()

	return nil
}

func (bot *TarkovBot) Stop() {
	bot.mu.Lock()
	ch := bot.stopCh
	bot.stopCh = nil
	bot.mu.Unlock()

	if ch != nil {
		close(ch) // повторный Stop() ничего не делает
		bot.wg.Wait()
	}
}

// refreshSources перечитывает каталог и (если задан) удалённый словарь.
// Любая ошибка оставляет прежнее состояние источника.
func (bot *TarkovBot) refreshSources() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entries, err := bot.market.FetchCatalog(ctx)
	if err != nil {
		log.Println("[catalog]", err)
	} else {
		items := make([]resolve.CatalogItem, 0, len(entries))
		for _, e := range entries {
			items = append(items, resolve.CatalogItem{
				Name: e.Name,
				Meta: resolve.Meta{ShortName: e.ShortName, WikiLink: e.WikiLink, Icon: e.Icon},
			})
		}
		bot.catalog.Replace(items)
		log.Printf("[catalog] загружено имён: %d", bot.catalog.Len())
	}

	if bot.conf.AliasDocURL != "" {
		if err := bot.aliases.ReloadFromURL(ctx, bot.conf.AliasDocURL); err != nil {
			log.Println("[aliases]", err)
		} else {
			log.Printf("[aliases] словарь перезагружен, ключей: %d", bot.aliases.Len())
			bot.applyConfigAliases()
		}
	}
}
