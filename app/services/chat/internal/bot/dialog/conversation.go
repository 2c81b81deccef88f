// Package dialog runs one conversation: the catalog navigation state
// machine, the checkout data-collection machine, and the cart they share.
// Whether checkout state is present decides which machine receives the
// next utterance.
package dialog

import (
	"context"
	"strings"
	"sync"

	"lourini/app/services/chat/internal/bot/cart"
	"lourini/app/services/chat/internal/bot/catalog"
	"lourini/app/services/chat/internal/bot/format"
	"lourini/app/services/chat/internal/bot/match"
)

// navigation is the transient selection path through the catalog. Setting
// a node clears everything deeper than it.
type navigation struct {
	category *catalog.Category
	class    *catalog.FabricClass
	product  *catalog.Product
	fabric   *catalog.Fabric
	size     string
	quantity int64
}

// Conversation owns all state of one chat. Utterances are processed one at
// a time under the conversation lock, so a hosting layer may multiplex
// many users while each conversation stays strictly sequential. The lock
// is held across order submission: no input can mutate cart or checkout
// state while the call is outstanding.
type Conversation struct {
	mu        sync.Mutex
	cat       *catalog.Catalog
	submitter Submitter
	cart      *cart.Cart
	nav       navigation
	checkout  *checkoutState
}

func New(cat *catalog.Catalog, submitter Submitter) *Conversation {
	return &Conversation{
		cat:       cat,
		submitter: submitter,
		cart:      cart.New(),
	}
}

// Welcome returns the opening messages of a fresh conversation.
func (c *Conversation) Welcome() []string {
	return []string{
		"Olá! Bem-vindo ao Lourini FFE. Como posso ajudar com a sua seleção de móveis e tecidos?",
		"Você pode explorar nosso catálogo, solicitar informações sobre produtos específicos ou iniciar um pedido.",
		format.Categories(c.cat),
	}
}

// Handle processes one utterance and returns the ordered reply messages.
func (c *Conversation) Handle(ctx context.Context, text string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	// Checkout short-circuit: while active, every utterance goes to field
	// collection, the matcher is bypassed.
	if c.checkout != nil {
		return c.handleCheckout(ctx, text)
	}
	return c.handleBrowse(text)
}

// CartView renders the current cart without side effects.
func (c *Conversation) CartView() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return format.Cart(c.cart.Entries(), c.cart.Total())
}

// CartSnapshot returns the committed entries and the current total.
func (c *Conversation) CartSnapshot() ([]cart.Entry, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Entries(), c.cart.Total()
}

func (c *Conversation) selection() match.Selection {
	return match.Selection{
		Category: c.nav.category,
		Class:    c.nav.class,
		Product:  c.nav.product,
		Fabric:   c.nav.fabric,
		SizeSet:  c.nav.size != "",
	}
}

func (c *Conversation) handleBrowse(text string) []string {
	res := match.Match(c.cat, c.selection(), text)

	switch res.Kind {
	case match.CartCommand:
		return []string{format.Cart(c.cart.Entries(), c.cart.Total())}

	case match.CheckoutCommand:
		return c.initiateCheckout()

	case match.HelpCommand:
		return []string{format.Help(c.cat)}

	case match.Category:
		return c.showCategory(res.Category)

	case match.FabricClass:
		c.nav.class = res.Class
		c.nav.fabric = nil
		c.nav.product = nil
		c.nav.size = ""
		c.nav.quantity = 0
		return []string{format.Fabrics(res.Class)}

	case match.FabricItem:
		c.nav.fabric = res.Fabric
		c.nav.product = nil
		c.nav.size = ""
		c.nav.quantity = 0
		return []string{format.FabricSelected(res.Fabric)}

	case match.ProductItem:
		c.nav.product = res.Product
		c.nav.fabric = nil
		c.nav.size = ""
		c.nav.quantity = 0
		return []string{format.ProductSelected(res.Product)}

	case match.Size:
		c.nav.size = res.Size
		return []string{
			"Tamanho " + format.Bold(res.Size) + " selecionado para " + c.nav.product.Name + ".",
			"Para adicionar ao carrinho, digite 'adicionar ao carrinho' ou especifique uma quantidade.",
		}

	case match.Quantity:
		return c.setQuantity(res.Quantity)

	case match.AddToCart:
		return c.addToCart()

	default:
		return []string{
			"Desculpe, não entendi completamente. Como posso ajudar?",
			format.Help(c.cat),
		}
	}
}

func (c *Conversation) showCategory(cat *catalog.Category) []string {
	c.nav.category = cat
	c.nav.class = nil
	c.nav.product = nil
	c.nav.fabric = nil
	c.nav.size = ""
	c.nav.quantity = 0

	if cat.IsFabric() {
		return []string{format.FabricClasses(cat)}
	}
	return []string{format.Products(cat)}
}

func (c *Conversation) setQuantity(qty int64) []string {
	if qty <= 0 {
		return []string{"A quantidade deve ser maior que zero."}
	}
	c.nav.quantity = qty

	var msg string
	switch {
	case c.nav.fabric != nil:
		msg = format.Quantity(qty, "metros") + " de " + format.Bold(c.nav.fabric.Name) + " selecionados."
	case c.nav.product != nil:
		msg = format.Quantity(qty, "unidades") + " de " + format.Bold(c.nav.product.Name) + " selecionadas."
	}
	return []string{msg, "Digite 'adicionar ao carrinho' para adicionar este item."}
}

func (c *Conversation) addToCart() []string {
	if c.nav.fabric == nil && c.nav.product == nil {
		return []string{"Por favor, selecione um produto ou tecido primeiro."}
	}

	qty := c.nav.quantity
	if qty == 0 {
		qty = 1
	}

	var confirmation string
	if c.nav.fabric != nil {
		classLabel := ""
		if c.nav.class != nil {
			classLabel = c.nav.class.Name
		}
		c.cart.Add(cart.NewFabricEntry(c.nav.fabric.Name, c.nav.fabric.Price, qty, classLabel))
		confirmation = format.Quantity(qty, "metros") + " de " + format.Bold(c.nav.fabric.Name) + " adicionados ao carrinho."
	} else {
		if c.nav.product.HasSizes() && c.nav.size == "" {
			// No mutation: the entry is rejected until a size is chosen.
			return []string{"Por favor, selecione um tamanho primeiro."}
		}
		c.cart.Add(cart.NewProductEntry(c.nav.product.Name, c.nav.product.Price, qty, c.nav.size))
		label := c.nav.product.Name
		if c.nav.size != "" {
			label += " (" + c.nav.size + ")"
		}
		confirmation = format.Quantity(qty, "unidades") + " de " + format.Bold(label) + " adicionadas ao carrinho."
	}

	// Commit clears the item selection but keeps category and class so the
	// user can keep shopping in the same area.
	c.nav.product = nil
	c.nav.fabric = nil
	c.nav.size = ""
	c.nav.quantity = 0

	return []string{
		confirmation,
		"Deseja continuar comprando ou finalizar o pedido?",
		"Para ver o carrinho, digite 'carrinho'. Para finalizar o pedido, digite 'finalizar'.",
	}
}
