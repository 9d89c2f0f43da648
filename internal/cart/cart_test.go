package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovawear/kova/internal/domain"
	"github.com/kovawear/kova/internal/storage"
)

// memKV is an in-memory stand-in for the durable store.
type memKV struct {
	values map[string]string
}

func newMemKV() *memKV {
	return &memKV{values: map[string]string{}}
}

func (m *memKV) Get(key string) (string, error) {
	return m.values[key], nil
}

func (m *memKV) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func hoodie() domain.Product {
	return domain.Product{
		ID:       1,
		Name:     "Black Hoodie",
		Price:    500,
		Category: "Hoodie",
		Sizes:    []string{"S", "M", "L"},
		Stock:    10,
	}
}

func tee() domain.Product {
	return domain.Product{
		ID:       2,
		Name:     "White T-Shirt",
		Price:    699,
		Category: "T-Shirt",
		Sizes:    []string{"M", "L"},
		Stock:    25,
	}
}

func TestAdd_DeduplicatesByIDAndSize(t *testing.T) {
	s := New(newMemKV())

	s.Add(hoodie(), "M")
	s.Add(hoodie(), "M")
	s.Add(hoodie(), "M")

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 3, s.Items()[0].Quantity)
}

func TestAdd_DifferentSizesAreDifferentLines(t *testing.T) {
	s := New(newMemKV())

	s.Add(hoodie(), "M")
	s.Add(hoodie(), "L")

	require.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Items()[0].Quantity)
	assert.Equal(t, 1, s.Items()[1].Quantity)
}

func TestDecrease_FloorsAtOne(t *testing.T) {
	s := New(newMemKV())
	s.Add(hoodie(), "M")
	s.Add(hoodie(), "M")

	s.Decrease(1, "M")
	assert.Equal(t, 1, s.Items()[0].Quantity)

	// Never reaches 0, never deletes.
	s.Decrease(1, "M")
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestIncrease_NoUpperBound(t *testing.T) {
	s := New(newMemKV())
	s.Add(hoodie(), "M")

	for i := 0; i < 99; i++ {
		s.Increase(1, "M")
	}
	assert.Equal(t, 100, s.Items()[0].Quantity)
}

func TestLineOps_NoOpWithoutMatch(t *testing.T) {
	s := New(newMemKV())
	s.Add(hoodie(), "M")

	s.Increase(1, "L")
	s.Decrease(99, "M")
	s.Remove(1, "S")

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestDerivedTotals_RecomputedAfterEveryMutation(t *testing.T) {
	s := New(newMemKV())

	s.Add(hoodie(), "M")
	s.Add(hoodie(), "M")
	s.Add(tee(), "L")

	assert.InDelta(t, 2*500+699, s.TotalPrice(), 1e-9)
	assert.Equal(t, 3, s.Count())

	s.Remove(2, "L")
	assert.InDelta(t, 1000, s.TotalPrice(), 1e-9)
	assert.Equal(t, 2, s.Count())

	s.Clear()
	assert.Zero(t, s.TotalPrice())
	assert.Zero(t, s.Count())
}

func TestRemoveThenAdd_StartsAtQuantityOne(t *testing.T) {
	s := New(newMemKV())

	s.Add(hoodie(), "M")
	s.Increase(1, "M")
	s.Increase(1, "M")
	s.Remove(1, "M")

	s.Add(hoodie(), "M")
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Items()[0].Quantity, "removed line must not resurrect its old quantity")
}

func TestScenario_AddTwiceIncreaseThenDecrease(t *testing.T) {
	s := New(newMemKV())
	p := hoodie() // price 500

	s.Add(p, "M")
	s.Add(p, "M")
	s.Increase(1, "M")
	assert.Equal(t, 3, s.Items()[0].Quantity)
	assert.InDelta(t, 1500, s.TotalPrice(), 1e-9)

	s.Decrease(1, "M")
	s.Decrease(1, "M")
	assert.Equal(t, 1, s.Items()[0].Quantity)
	assert.InDelta(t, 500, s.TotalPrice(), 1e-9)

	s.Decrease(1, "M")
	assert.Equal(t, 1, s.Items()[0].Quantity, "decrement floors at 1")
}

func TestPersistence_RoundTripIsLossless(t *testing.T) {
	kv := newMemKV()

	s := New(kv)
	s.Add(hoodie(), "M")
	s.Add(hoodie(), "M")
	s.Add(tee(), "L")

	// A second store over the same storage sees the exact same lines.
	reloaded := New(kv)
	require.Equal(t, s.Items(), reloaded.Items())

	items := reloaded.Items()
	assert.Equal(t, "Black Hoodie", items[0].Name)
	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 500, items[0].Price, 1e-9)
	assert.Equal(t, []string{"S", "M", "L"}, items[0].Sizes)
}

func TestPersistence_WriteThroughAfterEveryMutation(t *testing.T) {
	kv := newMemKV()
	s := New(kv)

	s.Add(hoodie(), "M")
	first := kv.values[storage.KeyCart]
	require.NotEmpty(t, first)

	s.Increase(1, "M")
	assert.NotEqual(t, first, kv.values[storage.KeyCart])

	s.Clear()
	assert.Equal(t, "null", kv.values[storage.KeyCart])
}

func TestNew_CorruptSnapshotYieldsEmptyCart(t *testing.T) {
	kv := newMemKV()
	kv.values[storage.KeyCart] = "{not json"

	s := New(kv)
	assert.Zero(t, s.Len())
}

func TestItems_ReturnsACopy(t *testing.T) {
	s := New(newMemKV())
	s.Add(hoodie(), "M")

	items := s.Items()
	items[0].Quantity = 42

	assert.Equal(t, 1, s.Items()[0].Quantity)
}
