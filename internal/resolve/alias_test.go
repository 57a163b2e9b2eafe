package resolve

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasStoreLookup(t *testing.T) {
	s := NewAliasStore()
	s.Replace([]AliasEntry{
		{"GPU", "Graphics card"},
		{"dorm key", "Dorm room 206 key"},
		{"dorm key", "Dorm room 214 key"},
		{"dorm key", "Dorm room 214 key"}, // дубль схлопывается
	})

	// ключи нормализованы при загрузке
	assert.Equal(t, []string{"Graphics card"}, s.LookupExact("gpu"))
	assert.Equal(t, []string{"Dorm room 206 key", "Dorm room 214 key"}, s.LookupExact("dormkey"))
	assert.Nil(t, s.LookupExact("ledx"))
	assert.Equal(t, []string{"gpu", "dormkey"}, s.Keys())
}

func TestAliasStoreAddRemove(t *testing.T) {
	s := NewAliasStore()
	s.Add("Red Key", "Factory emergency exit key")
	s.Add("red key", "Factory emergency exit key") // тот же ключ, то же имя
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"Factory emergency exit key"}, s.LookupExact("redkey"))

	s.Add("red key", "TerraGroup Labs keycard (Red)")
	assert.Len(t, s.LookupExact("redkey"), 2)

	s.Remove("RED-KEY")
	assert.Nil(t, s.LookupExact("redkey"))
	assert.Equal(t, 0, s.Len())

	// пустые пары игнорируются
	s.Add("", "x")
	s.Add("y", "")
	assert.Equal(t, 0, s.Len())
}

func TestAliasStoreReloadFromURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"alias":"gpu","name":"Graphics card"},{"alias":"グラボ","name":"Graphics card"}]`))
	}))
	defer ts.Close()

	s := NewAliasStore()
	s.Add("ledx", "LEDX Skin Transilluminator")

	require.NoError(t, s.ReloadFromURL(context.Background(), ts.URL))
	// замена целиком: старые записи ушли, новые на месте
	assert.Nil(t, s.LookupExact("ledx"))
	assert.Equal(t, []string{"Graphics card"}, s.LookupExact("gpu"))
	assert.Equal(t, []string{"Graphics card"}, s.LookupExact("グラボ"))
}

func TestAliasStoreReloadFailureKeepsEntries(t *testing.T) {
	s := NewAliasStore()
	s.Add("gpu", "Graphics card")

	// не-2xx
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()
	assert.Error(t, s.ReloadFromURL(context.Background(), bad.URL))
	assert.Equal(t, []string{"Graphics card"}, s.LookupExact("gpu"))

	// битый JSON
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer broken.Close()
	assert.Error(t, s.ReloadFromURL(context.Background(), broken.URL))
	assert.Equal(t, []string{"Graphics card"}, s.LookupExact("gpu"))

	// сервер недоступен
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()
	assert.Error(t, s.ReloadFromURL(context.Background(), dead.URL))
	assert.Equal(t, []string{"Graphics card"}, s.LookupExact("gpu"))
}

func TestDefaultAliasStore(t *testing.T) {
	s := DefaultAliasStore()
	require.NotZero(t, s.Len())

	assert.Equal(t, []string{"Graphics card"}, s.LookupExact(Normalize("グラボ")))
	assert.Equal(t, []string{"LEDX Skin Transilluminator"}, s.LookupExact("ledx"))

	// заведомо неоднозначные псевдонимы остаются неоднозначными
	assert.Greater(t, len(s.LookupExact(Normalize("labs keycard"))), 1)
	assert.Greater(t, len(s.LookupExact(Normalize("dorm key"))), 1)
}
