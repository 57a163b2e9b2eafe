package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagami/tarkovbot/internal/market"
	"github.com/jagami/tarkovbot/internal/resolve"
)

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", groupDigits(0))
	assert.Equal(t, "999", groupDigits(999))
	assert.Equal(t, "1,000", groupDigits(1000))
	assert.Equal(t, "295,000", groupDigits(295000))
	assert.Equal(t, "1,234,567", groupDigits(1234567))
}

func TestFmtRubAndSpread(t *testing.T) {
	assert.Equal(t, "----", fmtRub(0))
	assert.Equal(t, "21,000₽", fmtRub(21000))

	assert.Equal(t, "+123,748₽", fmtSpread(295000, 171252))
	assert.Equal(t, "-50,000₽", fmtSpread(100000, 150000))
	assert.Equal(t, "----", fmtSpread(0, 150000))
	assert.Equal(t, "----", fmtSpread(100000, 0))
}

func TestBuildItemEmbed(t *testing.T) {
	b := New(Conf{TwitchURL: "https://twitch.tv/someone"})

	item := &market.Item{
		Name:        "Graphics card",
		ShortName:   "GPU",
		Avg24hPrice: 295000,
		TraderName:  "Therapist",
		TraderPrice: 171252,
		Icon:        "https://cdn/gpu.png",
		Link:        "https://market/gpu",
	}
	e := b.buildItemEmbed("グラボ", "Graphics card", item, resolve.Meta{})

	assert.Equal(t, "Graphics card", e.Title)
	assert.Equal(t, "https://market/gpu", e.URL)
	require.NotNil(t, e.Thumbnail)
	assert.Equal(t, "https://cdn/gpu.png", e.Thumbnail.URL)
	assert.Contains(t, e.Description, "グラボ")
	assert.Contains(t, e.Description, "GPU", "краткое имя не входит в полное — показываем")
	require.Len(t, e.Fields, 1)
	assert.Contains(t, e.Fields[0].Value, "295,000₽")
	assert.Contains(t, e.Fields[0].Value, "+123,748₽")
	assert.Contains(t, e.Footer.Text, "twitch.tv")
}

func TestBuildItemEmbedMetaFallback(t *testing.T) {
	b := New(Conf{})

	// маркет без иконки и ссылки — дыры закрывает каталог
	item := &market.Item{Name: "Salewa first aid kit", Avg24hPrice: 30000}
	meta := resolve.Meta{Icon: "https://cdn/salewa.png", WikiLink: "https://wiki/salewa", ShortName: "Salewa"}
	e := b.buildItemEmbed("salewa", "Salewa first aid kit", item, meta)

	assert.Equal(t, "https://wiki/salewa", e.URL)
	require.NotNil(t, e.Thumbnail)
	assert.Equal(t, "https://cdn/salewa.png", e.Thumbnail.URL)
	// краткое имя входит в полное — строку не дублируем
	assert.NotContains(t, e.Description, "Short name")
	assert.Contains(t, e.Fields[0].Value, "----")
}
