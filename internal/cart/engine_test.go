package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/koraytemur/hirdavat/pkg/errors"
)

// --- Fake KV ---

// memKV is an in-memory key-value store for engine tests.
type memKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, apperrors.NotFound("key", key)
	}
	return v, nil
}

func (m *memKV) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memKV) get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *memKV) set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// --- Tests ---

func TestEngine_DefaultsWhenNothingPersisted(t *testing.T) {
	kv := newMemKV()
	eng := NewEngine(kv, "device-1", testLogger())
	defer eng.Close()

	eng.Restore(context.Background())

	assert.True(t, eng.IsEmpty())
	assert.Equal(t, "nl", eng.Language())
	assert.Nil(t, eng.Discount())
}

func TestEngine_PersistsAndRestoresCart(t *testing.T) {
	kv := newMemKV()

	eng := NewEngine(kv, "device-1", testLogger())
	eng.Add(product("p1", "10.00"), 2)
	eng.Add(product("p2", "5.00"), 1)
	eng.Close()

	restored := NewEngine(kv, "device-1", testLogger())
	defer restored.Close()
	restored.Restore(context.Background())

	lines := restored.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "p2", lines[1].Product.ID)
	assert.Equal(t, "10.00", lines[0].Product.Price.StringFixed(2))
}

func TestEngine_PersistsAndRestoresLanguage(t *testing.T) {
	kv := newMemKV()

	eng := NewEngine(kv, "device-1", testLogger())
	eng.SetLanguage("tr")
	eng.Close()

	restored := NewEngine(kv, "device-1", testLogger())
	defer restored.Close()
	restored.Restore(context.Background())

	assert.Equal(t, "tr", restored.Language())
}

func TestEngine_RestoreNormalizesRegionalLanguage(t *testing.T) {
	kv := newMemKV()
	kv.set("language:device-1", []byte("nl-BE"))

	eng := NewEngine(kv, "device-1", testLogger())
	defer eng.Close()
	eng.Restore(context.Background())

	assert.Equal(t, "nl", eng.Language())
}

func TestEngine_RestoreDiscardsMalformedSnapshot(t *testing.T) {
	kv := newMemKV()
	kv.set("cart:device-1", []byte("{not json"))

	eng := NewEngine(kv, "device-1", testLogger())
	defer eng.Close()
	eng.Restore(context.Background())

	assert.True(t, eng.IsEmpty())
}

func TestEngine_DiscountNotPersisted(t *testing.T) {
	kv := newMemKV()

	eng := NewEngine(kv, "device-1", testLogger())
	eng.Add(product("p1", "10.00"), 1)
	eng.SetDiscount(percentageDiscount("10"))
	eng.Close()

	restored := NewEngine(kv, "device-1", testLogger())
	defer restored.Close()
	restored.Restore(context.Background())

	assert.Len(t, restored.Lines(), 1)
	assert.Nil(t, restored.Discount())
}

func TestEngine_ClearPersistsEmptyList(t *testing.T) {
	kv := newMemKV()

	eng := NewEngine(kv, "device-1", testLogger())
	eng.Add(product("p1", "10.00"), 1)
	eng.Clear()
	eng.Close()

	data, ok := kv.get("cart:device-1")
	require.True(t, ok)

	var lines []Line
	require.NoError(t, json.Unmarshal(data, &lines))
	assert.Empty(t, lines)
}

func TestEngine_MutationsThroughFullFlow(t *testing.T) {
	kv := newMemKV()
	eng := NewEngine(kv, "device-1", testLogger())

	eng.Add(product("p1", "10.00"), 2)
	eng.Add(product("p2", "5.00"), 2)
	eng.UpdateQuantity("p2", 0)
	eng.Remove("missing")
	eng.Close()

	data, ok := kv.get("cart:device-1")
	require.True(t, ok)

	var lines []Line
	require.NoError(t, json.Unmarshal(data, &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestEngine_SetLanguageUnsupportedFallsBackToDefault(t *testing.T) {
	kv := newMemKV()
	eng := NewEngine(kv, "device-1", testLogger())
	defer eng.Close()

	eng.SetLanguage("de")

	assert.Equal(t, "nl", eng.Language())
}

func TestEngine_Translate(t *testing.T) {
	kv := newMemKV()
	eng := NewEngine(kv, "device-1", testLogger())
	defer eng.Close()

	nl := eng.T("cart")
	eng.SetLanguage("en")
	en := eng.T("cart")

	assert.NotEmpty(t, nl)
	assert.NotEmpty(t, en)
	assert.NotEqual(t, nl, en)
}

func TestPersister_CoalescesToLatestValue(t *testing.T) {
	kv := newMemKV()
	p := newPersister(kv, testLogger())

	for i := 0; i < 100; i++ {
		p.enqueue("k", []byte{byte(i)})
	}
	p.close()

	got, ok := kv.get("k")
	require.True(t, ok)
	assert.Equal(t, []byte{99}, got)
}

func TestPersister_FailureDoesNotBlock(t *testing.T) {
	p := newPersister(failingKV{}, testLogger())

	p.enqueue("k", []byte("v"))
	p.close()
}

type failingKV struct{}

func (failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("kv down")
}

func (failingKV) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("kv down")
}

func (failingKV) Delete(ctx context.Context, key string) error {
	return errors.New("kv down")
}
