package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovawear/kova/internal/storage"
)

type memKV struct {
	values map[string]string
}

func newMemKV() *memKV {
	return &memKV{values: map[string]string{}}
}

func (m *memKV) Get(key string) (string, error) { return m.values[key], nil }
func (m *memKV) Set(key, value string) error    { m.values[key] = value; return nil }
func (m *memKV) Delete(key string) error        { delete(m.values, key); return nil }

func TestAnonymousByDefault(t *testing.T) {
	s := New(newMemKV())

	assert.False(t, s.Authenticated())
	assert.False(t, s.IsAdmin())
	assert.Empty(t, s.Token())
}

func TestSetCredentials_PersistsAndRehydrates(t *testing.T) {
	kv := newMemKV()

	s := New(kv)
	s.SetCredentials("tok-123", true, "ops@kova.example")

	assert.True(t, s.Authenticated())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "ops@kova.example", s.Email())

	// A fresh store over the same storage sees the same session.
	reloaded := New(kv)
	assert.Equal(t, "tok-123", reloaded.Token())
	assert.True(t, reloaded.IsAdmin())
	assert.Equal(t, "ops@kova.example", reloaded.Email())
}

func TestClear_DeletesAllKeysAndIsIdempotent(t *testing.T) {
	kv := newMemKV()
	s := New(kv)
	s.SetCredentials("tok-123", false, "me@kova.example")

	s.Clear()
	require.False(t, s.Authenticated())
	assert.NotContains(t, kv.values, storage.KeyToken)
	assert.NotContains(t, kv.values, storage.KeyIsAdmin)
	assert.NotContains(t, kv.values, storage.KeyEmail)

	// A second clear must be harmless.
	s.Clear()
	assert.False(t, s.Authenticated())
}
