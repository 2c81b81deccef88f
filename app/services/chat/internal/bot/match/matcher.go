// Package match maps one free-text utterance onto the catalog vocabulary.
//
// Matching is case-insensitive, accent-folded substring containment in a
// fixed priority order; the first rule that hits wins. There is no scoring:
// when one catalog name is a substring of another, declaration order
// decides. The matcher never mutates the selection it is given.
package match

import (
	"regexp"
	"strconv"

	"lourini/app/services/chat/internal/bot/catalog"
)

type Kind int

const (
	NoMatch Kind = iota
	Category
	FabricClass
	FabricItem
	ProductItem
	Size
	Quantity
	AddToCart
	CartCommand
	CheckoutCommand
	HelpCommand
)

func (k Kind) String() string {
	switch k {
	case Category:
		return "category"
	case FabricClass:
		return "fabric_class"
	case FabricItem:
		return "fabric_item"
	case ProductItem:
		return "product_item"
	case Size:
		return "size"
	case Quantity:
		return "quantity"
	case AddToCart:
		return "add_to_cart"
	case CartCommand:
		return "cart"
	case CheckoutCommand:
		return "checkout"
	case HelpCommand:
		return "help"
	default:
		return "no_match"
	}
}

// Selection is a read-only view of the navigation state the matcher needs:
// which category/class is open and whether an item is selected.
type Selection struct {
	Category *catalog.Category
	Class    *catalog.FabricClass
	Product  *catalog.Product
	Fabric   *catalog.Fabric
	SizeSet  bool
}

func (s Selection) hasItem() bool {
	return s.Product != nil || s.Fabric != nil
}

// Result is the tagged outcome of one Match call. Kind discriminates which
// of the remaining fields are set.
type Result struct {
	Kind     Kind
	Category *catalog.Category
	Class    *catalog.FabricClass
	Fabric   *catalog.Fabric
	Product  *catalog.Product
	Size     string
	Quantity int64
}

// quantityPattern requires a positive integer immediately followed by a
// unit word. Applied to folded text, so "peças" arrives as "pecas".
var quantityPattern = regexp.MustCompile(`\b(\d+)\s*(unidades|pecas|metros|items|quantidade)\b`)

var addWords = []string{"adicionar", "comprar", "add"}

func hasAddWord(folded string) bool {
	for _, w := range addWords {
		if containsFolded(folded, w) {
			return true
		}
	}
	return false
}

// Match resolves text against the catalog under the given selection.
// It reads but never writes the selection; every call is stateless.
func Match(cat *catalog.Catalog, sel Selection, text string) Result {
	folded := Fold(text)

	// Cart keyword, unless the utterance is an add-to-cart phrase:
	// "adicionar ao carrinho" must reach the add rule below.
	if (containsFolded(folded, "carrinho") || containsFolded(folded, "cart")) && !hasAddWord(folded) {
		return Result{Kind: CartCommand}
	}

	if containsFolded(folded, "finalizar") || containsFolded(folded, "checkout") {
		return Result{Kind: CheckoutCommand}
	}

	if containsFolded(folded, "ajuda") || folded == "help" {
		return Result{Kind: HelpCommand}
	}

	// Category switching is always available, regardless of context.
	for i := range cat.Categories {
		c := &cat.Categories[i]
		if containsFolded(folded, c.Name) || containsFolded(folded, c.Id) {
			return Result{Kind: Category, Category: c}
		}
	}

	if sel.Category != nil {
		if sel.Category.IsFabric() {
			for i := range sel.Category.Classes {
				cl := &sel.Category.Classes[i]
				if containsFolded(folded, cl.Name) || containsFolded(folded, "classe "+cl.Id) {
					return Result{Kind: FabricClass, Class: cl}
				}
			}
			if sel.Class != nil {
				for i := range sel.Class.Fabrics {
					f := &sel.Class.Fabrics[i]
					if containsFolded(folded, f.Name) {
						return Result{Kind: FabricItem, Fabric: f, Class: sel.Class}
					}
				}
			}
		} else {
			for i := range sel.Category.Products {
				p := &sel.Category.Products[i]
				if containsFolded(folded, p.Name) {
					return Result{Kind: ProductItem, Product: p}
				}
			}
		}
	}

	if sel.Product != nil && sel.Product.HasSizes() && !sel.SizeSet {
		for _, size := range sel.Product.Sizes {
			if containsFolded(folded, size) {
				return Result{Kind: Size, Size: size}
			}
		}
	}

	if sel.hasItem() {
		if m := quantityPattern.FindStringSubmatch(folded); m != nil {
			qty, err := strconv.ParseInt(m[1], 10, 64)
			if err == nil {
				return Result{Kind: Quantity, Quantity: qty}
			}
		}
	}

	// Emitted even without a selection; the dialog answers with a
	// corrective prompt in that case.
	if hasAddWord(folded) {
		return Result{Kind: AddToCart}
	}

	return Result{Kind: NoMatch}
}
