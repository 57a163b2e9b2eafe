package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogReplace(t *testing.T) {
	c := NewCatalog()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.AllNames())

	c.Replace([]CatalogItem{
		{Name: "Graphics card", Meta: Meta{ShortName: "GPU", WikiLink: "https://wiki/gpu"}},
		{Name: "Salewa first aid kit"},
		{Name: "Graphics card", Meta: Meta{ShortName: "dup"}}, // дубль игнорируется
		{Name: ""},
	})

	assert.Equal(t, []string{"Graphics card", "Salewa first aid kit"}, c.AllNames())

	m, ok := c.Meta("Graphics card")
	assert.True(t, ok)
	assert.Equal(t, "GPU", m.ShortName)

	_, ok = c.Meta("LEDX Skin Transilluminator")
	assert.False(t, ok)

	// повторная загрузка заменяет всё
	c.Replace([]CatalogItem{{Name: "Item case"}})
	assert.Equal(t, []string{"Item case"}, c.AllNames())
	_, ok = c.Meta("Graphics card")
	assert.False(t, ok)
}
