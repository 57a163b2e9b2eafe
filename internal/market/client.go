package market

import (
	"net/http"
	"sync"
	"time"
)

const defaultServer = "https://api.tarkov-market.app/api/v1"

// Conf — конфигурация клиента Tarkov-Market (см. conf/marketconfig.json).
type Conf struct {
	Server string `json:"server"` // базовый URL API, пусто = официальный
	Token  string `json:"token"`  // x-api-key
}

// Client — клиент Tarkov-Market API: поиск предмета с ценами и выгрузка
// каталога. Все запросы с таймаутом, ошибки сети не фатальны для бота.
type Client struct {
	http   *http.Client
	token  string
	server string

	mu          sync.RWMutex
	etag        string         // для If-None-Match на выгрузке каталога
	lastCatalog []CatalogEntry // последний снимок каталога (для 304)
}

// Item — нормализованная запись о предмете. Разные версии API называют
// одни и те же поля по-разному (icon/img, avg24hPrice/avgPrice24h) —
// наружу выходит только эта стабильная схема.
type Item struct {
	Name        string
	ShortName   string
	Avg24hPrice int
	TraderName  string
	TraderPrice int
	Icon        string
	WikiLink    string
	Link        string
}

// CatalogEntry — запись выгрузки каталога (имя + метаданные).
type CatalogEntry struct {
	Name      string
	ShortName string
	WikiLink  string
	Icon      string
}

// NewClientFromConf создает клиент по конфигу, подставляя дефолтный сервер.
func NewClientFromConf(conf Conf) *Client {
	server := conf.Server
	if server == "" {
		server = defaultServer
	}
	return &Client{
		http:   &http.Client{Timeout: 10 * time.Second},
		token:  conf.Token,
		server: server,
	}
}
