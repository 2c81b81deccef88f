package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryConstruction(t *testing.T) {
	f := NewFabricEntry("Atlantis", 35, 5, "Classe A")
	assert.Equal(t, KindFabric, f.Kind)
	assert.Equal(t, "metros", f.Unit)
	assert.Equal(t, "Classe A", f.Class)
	assert.Equal(t, int64(175), f.Subtotal)

	p := NewProductEntry("Modelo Lisboa", 850, 2, "3 Lugares")
	assert.Equal(t, KindProduct, p.Kind)
	assert.Equal(t, "unidades", p.Unit)
	assert.Equal(t, "3 Lugares", p.Size)
	assert.Equal(t, int64(1700), p.Subtotal)
}

func TestCartTotal(t *testing.T) {
	c := New()
	assert.True(t, c.Empty())
	assert.Equal(t, int64(0), c.Total())

	c.Add(NewProductEntry("Modelo Lisboa", 850, 2, "3 Lugares"))
	c.Add(NewFabricEntry("Atlantis", 35, 5, "Classe A"))

	assert.Equal(t, 2, c.Len())
	assert.False(t, c.Empty())
	assert.Equal(t, int64(1875), c.Total())
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := New()
	c.Add(NewProductEntry("Cadeira Dining", 180, 1, ""))

	entries := c.Entries()
	require.Len(t, entries, 1)
	entries[0].Quantity = 99
	entries[0].Subtotal = 0

	fresh := c.Entries()
	assert.Equal(t, int64(1), fresh[0].Quantity)
	assert.Equal(t, int64(180), fresh[0].Subtotal)
	assert.Equal(t, int64(180), c.Total())
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(NewFabricEntry("Fior", 48, 3, "Classe B"))
	c.Clear()

	assert.True(t, c.Empty())
	assert.Equal(t, int64(0), c.Total())
}
