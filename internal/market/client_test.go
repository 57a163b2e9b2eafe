package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchItem(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		assert.Equal(t, "Graphics card", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[{
			"name": "Graphics card",
			"shortName": "GPU",
			"avg24hPrice": 295000,
			"traderName": "Therapist",
			"traderPrice": 171252,
			"icon": "https://cdn/icon.png",
			"wikiLink": "https://wiki/Graphics_card",
			"link": "https://market/gpu"
		}]`))
	}))
	defer ts.Close()

	c := NewClientFromConf(Conf{Server: ts.URL, Token: "secret"})
	it, ok, err := c.FetchItem(context.Background(), "Graphics card")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Graphics card", it.Name)
	assert.Equal(t, "GPU", it.ShortName)
	assert.Equal(t, 295000, it.Avg24hPrice)
	assert.Equal(t, "Therapist", it.TraderName)
	assert.Equal(t, 171252, it.TraderPrice)
	assert.Equal(t, "https://market/gpu", it.Link)
}

func TestFetchItemFieldFallbacks(t *testing.T) {
	// старая версия API: img вместо icon, avgPrice24h вместо avg24hPrice,
	// ссылки только wikiLink
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{
			"name": "LEDX Skin Transilluminator",
			"avgPrice24h": 850000,
			"img": "https://cdn/ledx.png",
			"wikiLink": "https://wiki/LEDX"
		}]`))
	}))
	defer ts.Close()

	c := NewClientFromConf(Conf{Server: ts.URL})
	it, ok, err := c.FetchItem(context.Background(), "LEDX Skin Transilluminator")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 850000, it.Avg24hPrice)
	assert.Equal(t, "https://cdn/ledx.png", it.Icon)
	assert.Equal(t, "https://wiki/LEDX", it.Link)
}

func TestFetchItemAbsent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := NewClientFromConf(Conf{Server: ts.URL})
	it, ok, err := c.FetchItem(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, it)
}

func TestFetchItemErrors(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer bad.Close()

	c := NewClientFromConf(Conf{Server: bad.URL})
	_, ok, err := c.FetchItem(context.Background(), "gpu")
	assert.Error(t, err)
	assert.False(t, ok)

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"oops"`))
	}))
	defer broken.Close()

	c = NewClientFromConf(Conf{Server: broken.URL})
	_, _, err = c.FetchItem(context.Background(), "gpu")
	assert.Error(t, err)
}

func TestFetchCatalogETag(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte(`[
			{"name": "Graphics card", "shortName": "GPU", "wikiLink": "https://wiki/gpu"},
			{"name": "Salewa first aid kit"},
			{"name": ""}
		]`))
	}))
	defer ts.Close()

	c := NewClientFromConf(Conf{Server: ts.URL})

	first, err := c.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2) // пустое имя отброшено
	assert.Equal(t, "Graphics card", first[0].Name)
	assert.Equal(t, "GPU", first[0].ShortName)

	// второй запрос уходит с ETag и получает прежний снимок
	second, err := c.FetchCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestFetchCatalogError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewClientFromConf(Conf{Server: ts.URL})
	_, err := c.FetchCatalog(context.Background())
	assert.Error(t, err)
}
