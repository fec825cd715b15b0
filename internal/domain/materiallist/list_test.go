package materiallist

import (
	"encoding/json"
	"math"
	"testing"

	"plumbing_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func threeRows() *List {
	return New([]entities.LineItem{
		{Description: "A", Quantity: 1, LastPrice: 1, Origin: entities.LineItemOriginPredetermined},
		{Description: "B", Quantity: 2, LastPrice: 2, Origin: entities.LineItemOriginPredetermined},
		{Description: "C", Quantity: 3, LastPrice: 3},
	})
}

func descriptions(l *List) []string {
	var out []string
	for _, it := range l.Items() {
		out = append(out, it.Description)
	}
	return out
}

func TestNew_RecomputesTotalsAndDefaultsOrigin(t *testing.T) {
	l := New([]entities.LineItem{
		{Description: "Pipe", Quantity: 4, LastPrice: 2.5, Total: 999},
		{Description: "Bad", Quantity: math.NaN(), LastPrice: -3},
	})
	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 10.0, items[0].Total)
	assert.Equal(t, entities.LineItemOriginManual, items[0].Origin)
	assert.Equal(t, 0.0, items[1].Quantity)
	assert.Equal(t, 0.0, items[1].LastPrice)
	assert.Equal(t, 0.0, items[1].Total)
}

func TestInsert(t *testing.T) {
	l := New(nil)
	idx := l.Insert("BPS")
	assert.Equal(t, 0, idx)

	it := l.Items()[0]
	assert.Equal(t, entities.LineItem{SupplyCode: "BPS", Origin: entities.LineItemOriginManual}, it)
}

func TestRemove(t *testing.T) {
	t.Run("removes the row and shifts the rest", func(t *testing.T) {
		l := threeRows()
		assert.True(t, l.Remove(1))
		assert.Equal(t, []string{"A", "C"}, descriptions(l))
		assert.Equal(t, 10.0, l.GrandTotal())
	})
	t.Run("out of range is a no-op", func(t *testing.T) {
		l := threeRows()
		assert.False(t, l.Remove(3))
		assert.False(t, l.Remove(-1))
		assert.Equal(t, []string{"A", "B", "C"}, descriptions(l))
	})
}

func TestMove(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		l := threeRows()
		assert.True(t, l.Move(2, DirectionUp))
		assert.Equal(t, []string{"A", "C", "B"}, descriptions(l))
	})
	t.Run("down", func(t *testing.T) {
		l := threeRows()
		assert.True(t, l.Move(0, DirectionDown))
		assert.Equal(t, []string{"B", "A", "C"}, descriptions(l))
	})
	t.Run("up then down restores order", func(t *testing.T) {
		l := threeRows()
		l.Move(1, DirectionUp)
		l.Move(0, DirectionDown)
		assert.Equal(t, []string{"A", "B", "C"}, descriptions(l))
	})
	t.Run("first row up and last row down are no-ops", func(t *testing.T) {
		l := threeRows()
		assert.False(t, l.Move(0, DirectionUp))
		assert.False(t, l.Move(2, DirectionDown))
		assert.False(t, l.Move(7, DirectionUp))
		assert.False(t, l.Move(1, Direction("sideways")))
		assert.Equal(t, []string{"A", "B", "C"}, descriptions(l))
	})
}

func TestUpdate(t *testing.T) {
	t.Run("recomputes total on quantity and price changes", func(t *testing.T) {
		l := threeRows()
		require.True(t, l.Update(0, Patch{Quantity: ptr(4.0)}))
		assert.Equal(t, 4.0, l.Items()[0].Total)

		require.True(t, l.Update(0, Patch{LastPrice: ptr(2.5)}))
		assert.Equal(t, 10.0, l.Items()[0].Total)
		assert.Equal(t, 10.0+4+9, l.GrandTotal())
	})
	t.Run("invalid numbers become zero", func(t *testing.T) {
		l := threeRows()
		l.Update(1, Patch{Quantity: ptr(math.Inf(1)), LastPrice: ptr(-2.0)})
		it := l.Items()[1]
		assert.Equal(t, 0.0, it.Quantity)
		assert.Equal(t, 0.0, it.LastPrice)
		assert.Equal(t, 0.0, it.Total)
	})
	t.Run("huge numbers are capped and stay encodable", func(t *testing.T) {
		l := threeRows()
		require.True(t, l.Update(0, Patch{Quantity: ptr(1e308), LastPrice: ptr(10.0)}))
		it := l.Items()[0]
		assert.Equal(t, MaxAmount, it.Quantity)
		assert.Equal(t, MaxAmount*10, it.Total)
		assert.False(t, math.IsInf(l.GrandTotal(), 0))

		_, err := json.Marshal(entities.MaterialListSession{ID: "s-1", Items: l.Items()})
		assert.NoError(t, err)
	})
	t.Run("text fields merge without touching others", func(t *testing.T) {
		l := threeRows()
		l.Update(2, Patch{Unit: ptr("bx"), SupplyCode: ptr("S2")})
		it := l.Items()[2]
		assert.Equal(t, "bx", it.Unit)
		assert.Equal(t, "S2", it.SupplyCode)
		assert.Equal(t, "C", it.Description)
		assert.Equal(t, 9.0, it.Total)
	})
	t.Run("out of range", func(t *testing.T) {
		l := threeRows()
		assert.False(t, l.Update(3, Patch{Quantity: ptr(1.0)}))
	})
}

func TestSnapshot(t *testing.T) {
	l := New([]entities.LineItem{
		{Description: "Pipe", SupplyCode: "BPS", Unit: "ft", Quantity: 3, LastPrice: 0.1},
	})
	snap := l.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, entities.SnapshotItem{
		Description: "Pipe",
		Supply:      "BPS",
		Unit:        "ft",
		LastPrice:   0.1,
		Quantity:    3,
		Total:       0.3,
	}, snap[0])
	assert.Empty(t, New(nil).Snapshot())
}

func TestItemsReturnsCopy(t *testing.T) {
	l := threeRows()
	items := l.Items()
	items[0].Description = "changed"
	assert.Equal(t, "A", l.Items()[0].Description)
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("up")
	assert.True(t, ok)
	assert.Equal(t, DirectionUp, d)
	_, ok = ParseDirection("left")
	assert.False(t, ok)
}
