package dialog

import (
	"context"
	"regexp"
	"strings"

	"lourini/app/services/chat/internal/bot/cart"
	"lourini/app/services/chat/internal/bot/format"

	"github.com/zeromicro/go-zero/core/logx"
)

// checkoutState exists only while checkout is active; its presence switches
// the conversation into checkout mode. Fields are filled strictly in
// declared order, the first unset field is the one being asked for.
type checkoutState struct {
	name    string
	email   string
	phone   string
	address string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (c *Conversation) initiateCheckout() []string {
	if c.cart.Empty() {
		return []string{"Seu carrinho está vazio. Adicione itens antes de finalizar o pedido."}
	}

	c.checkout = &checkoutState{}
	return []string{
		"Ótimo! Vamos finalizar seu pedido.",
		format.Cart(c.cart.Entries(), c.cart.Total()),
		"Por favor, digite seu nome completo:",
	}
}

func (c *Conversation) handleCheckout(ctx context.Context, text string) []string {
	st := c.checkout

	switch {
	case st.name == "":
		st.name = text
		return []string{"Obrigado, " + text + ". Por favor, digite seu email para contato:"}

	case st.email == "":
		if !emailPattern.MatchString(text) {
			// Same field is asked again; state does not advance.
			return []string{"Por favor, digite um email válido:"}
		}
		st.email = text
		return []string{"Agora, por favor, digite seu telefone:"}

	case st.phone == "":
		st.phone = text
		return []string{"Por favor, digite seu endereço completo para entrega:"}

	default:
		st.address = text
		return c.completeCheckout(ctx)
	}
}

func (c *Conversation) completeCheckout(ctx context.Context) []string {
	log := logx.WithContext(ctx)
	msgs := []string{"Processando seu pedido..."}

	payload := c.buildPayload()
	ref, err := c.submitter.Submit(ctx, payload)
	if err != nil {
		log.Errorf("order submission failed: %v", err)
		// Checkout state is dropped but the cart survives for a retry.
		c.checkout = nil
		return append(msgs,
			"Desculpe, ocorreu um erro ao processar seu pedido. Por favor, tente novamente mais tarde.")
	}

	email := c.checkout.email
	c.cart.Clear()
	c.checkout = nil

	return append(msgs,
		format.Bold("Pedido Finalizado com Sucesso!"),
		"Seu número de pedido é: "+format.Bold(ref.OrderNumber),
		"Enviamos um email de confirmação para "+email+".",
		"Obrigado por escolher a Lourini! Se tiver alguma dúvida, entre em contato conosco.",
		"Você pode iniciar uma nova compra ou explorar mais produtos.",
		format.Categories(c.cat),
	)
}

func (c *Conversation) buildPayload() *OrderPayload {
	st := c.checkout
	parts := strings.Fields(st.name)
	first, last := st.name, ""
	if len(parts) > 0 {
		first = parts[0]
		last = strings.Join(parts[1:], " ")
	}

	entries := c.cart.Entries()
	items := make([]OrderItem, 0, len(entries))
	for _, e := range entries {
		item := OrderItem{
			Name:     e.Name,
			Category: "Móveis",
			Size:     e.Size,
			Quantity: e.Quantity,
			Price:    e.UnitPrice,
		}
		if e.Kind == cart.KindFabric {
			item.Category = "Tecidos"
			item.FabricClass = e.Class
			item.FabricName = e.Name
		}
		items = append(items, item)
	}

	return &OrderPayload{
		Customer: Customer{
			FirstName: first,
			LastName:  last,
			Email:     st.email,
			Phone:     st.phone,
			Address:   st.address,
			City:      "Lisboa",
			Postcode:  "1000",
		},
		Items: items,
	}
}
