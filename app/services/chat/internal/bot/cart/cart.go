// Package cart is the ordered list of committed line entries for one
// conversation. Entries are immutable once appended; the total is always
// recomputed by summation, never kept as a running counter.
package cart

type Kind string

const (
	KindFabric  Kind = "fabric"
	KindProduct Kind = "product"
)

// Entry is one committed line item. Subtotal is derived from UnitPrice and
// Quantity at construction and never stored independently of them.
type Entry struct {
	Kind      Kind
	Name      string
	UnitPrice int64
	Quantity  int64
	Size      string // products with size variants only
	Class     string // fabric class label, fabrics only
	Unit      string // "metros" for fabrics, "unidades" for products
	Subtotal  int64
}

// NewFabricEntry builds an immutable fabric line.
func NewFabricEntry(name string, unitPrice, quantity int64, classLabel string) Entry {
	return Entry{
		Kind:      KindFabric,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Class:     classLabel,
		Unit:      "metros",
		Subtotal:  unitPrice * quantity,
	}
}

// NewProductEntry builds an immutable product line. Size may be empty for
// products without size variants.
func NewProductEntry(name string, unitPrice, quantity int64, size string) Entry {
	return Entry{
		Kind:      KindProduct,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Size:      size,
		Unit:      "unidades",
		Subtotal:  unitPrice * quantity,
	}
}

type Cart struct {
	entries []Entry
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) Add(e Entry) {
	c.entries = append(c.entries, e)
}

// Entries returns a copy so callers cannot mutate committed lines.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) Empty() bool {
	return len(c.entries) == 0
}

// Total re-sums every subtotal on each call; 0 for an empty cart.
func (c *Cart) Total() int64 {
	var total int64
	for _, e := range c.entries {
		total += e.Subtotal
	}
	return total
}

// Clear empties the cart. Used after a successful checkout only.
func (c *Cart) Clear() {
	c.entries = nil
}
