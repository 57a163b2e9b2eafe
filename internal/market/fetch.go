package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
)

// rawItem — ответ API как есть. Поля-дубли для разных версий API,
// схлопываются в normalize().
type rawItem struct {
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	Avg24hPrice int    `json:"avg24hPrice"`
	AvgPrice24h int    `json:"avgPrice24h"` // старое имя того же поля
	Price       int    `json:"price"`
	TraderName  string `json:"traderName"`
	TraderPrice int    `json:"traderPrice"`
	Icon        string `json:"icon"`
	Img         string `json:"img"`
	ImgBig      string `json:"imgBig"`
	WikiLink    string `json:"wikiLink"`
	Link        string `json:"link"`
}

// normalize — адаптер вариативных полей API в стабильную схему Item.
func (r rawItem) normalize() Item {
	it := Item{
		Name:        r.Name,
		ShortName:   r.ShortName,
		Avg24hPrice: r.Avg24hPrice,
		TraderName:  r.TraderName,
		TraderPrice: r.TraderPrice,
		Icon:        r.Icon,
		WikiLink:    r.WikiLink,
		Link:        r.Link,
	}
	if it.Avg24hPrice == 0 {
		if r.AvgPrice24h != 0 {
			it.Avg24hPrice = r.AvgPrice24h
		} else {
			it.Avg24hPrice = r.Price
		}
	}
	if it.Icon == "" {
		if r.Img != "" {
			it.Icon = r.Img
		} else {
			it.Icon = r.ImgBig
		}
	}
	if it.Link == "" {
		it.Link = r.WikiLink
	}
	return it
}

// FetchItem ищет предмет по каноничному имени. Возвращает (nil, false, nil),
// если API ничего не нашло — отсутствие цены не ошибка.
func (c *Client) FetchItem(ctx context.Context, name string) (*Item, bool, error) {
	u := fmt.Sprintf("%s/item?q=%s", c.server, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("x-api-key", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("market: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, false, fmt.Errorf("market: status %d", resp.StatusCode)
	}

	var items []rawItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, false, fmt.Errorf("market: %w", err)
	}
	if len(items) == 0 {
		return nil, false, nil
	}

	// берём первый результат — запрос уже каноничное имя
	it := items[0].normalize()
	return &it, true, nil
}

// FetchCatalog выгружает весь каталог предметов. Использует ETag:
// на 304 отдаёт предыдущий снимок.
func (c *Client) FetchCatalog(ctx context.Context) ([]CatalogEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.server+"/items/all", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.token)
	req.Header.Set("Accept", "application/json")

	c.mu.RLock()
	if c.etag != "" {
		req.Header.Set("If-None-Match", c.etag)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("market: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		c.mu.RLock()
		prev := make([]CatalogEntry, len(c.lastCatalog))
		copy(prev, c.lastCatalog)
		c.mu.RUnlock()
		log.Println("[catalog] 304 — каталог не менялся")
		return prev, nil
	}
	if resp.StatusCode/100 != 2 {
		return nil, errors.New("market: catalog non-2xx")
	}

	var items []rawItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("market: %w", err)
	}

	out := make([]CatalogEntry, 0, len(items))
	for _, r := range items {
		it := r.normalize()
		if it.Name == "" {
			continue
		}
		out = append(out, CatalogEntry{
			Name:      it.Name,
			ShortName: it.ShortName,
			WikiLink:  it.WikiLink,
			Icon:      it.Icon,
		})
	}

	c.mu.Lock()
	if et := resp.Header.Get("ETag"); et != "" {
		c.etag = et
	}
	c.lastCatalog = out
	c.mu.Unlock()

	snapshot := make([]CatalogEntry, len(out))
	copy(snapshot, out)
	return snapshot, nil
}
