package dialog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lourini/app/services/chat/internal/bot/cart"
	"lourini/app/services/chat/internal/bot/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	payload *OrderPayload
	ref     *OrderRef
	err     error
	calls   int
}

func (f *fakeSubmitter) Submit(_ context.Context, payload *OrderPayload) (*OrderRef, error) {
	f.calls++
	f.payload = payload
	if f.err != nil {
		return nil, f.err
	}
	return f.ref, nil
}

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Categories: []catalog.Category{
			{
				Id:   "tecidos",
				Name: "Tecidos",
				Classes: []catalog.FabricClass{
					{Id: "a", Name: "Classe A", Fabrics: []catalog.Fabric{
						{Id: "atlantis", Name: "Atlantis", Price: 35},
					}},
				},
			},
			{
				Id:   "sofas",
				Name: "Sofás",
				Products: []catalog.Product{
					{Id: "s-modelo1", Name: "Modelo Lisboa", Price: 850, Sizes: []string{"2 Lugares", "3 Lugares"}},
				},
			},
			{
				Id:   "cadeiras",
				Name: "Cadeiras",
				Products: []catalog.Product{
					{Id: "c-modelo1", Name: "Cadeira Dining", Price: 180},
				},
			},
		},
	}
}

func joined(msgs []string) string {
	return strings.Join(msgs, "\n")
}

func TestWelcome(t *testing.T) {
	conv := New(testCatalog(), &fakeSubmitter{})
	msgs := conv.Welcome()
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs[0], "Bem-vindo ao Lourini FFE")
	assert.Contains(t, msgs[2], "• Sofás")
}

func TestSofaOrderEndToEnd(t *testing.T) {
	ctx := context.Background()
	sub := &fakeSubmitter{ref: &OrderRef{Id: 7, OrderNumber: "ORD-1"}}
	conv := New(testCatalog(), sub)

	msgs := conv.Handle(ctx, "quero ver sofás")
	assert.Contains(t, joined(msgs), "Modelo Lisboa - €850")

	msgs = conv.Handle(ctx, "modelo lisboa")
	assert.Contains(t, joined(msgs), "**Modelo Lisboa** selecionado!")

	msgs = conv.Handle(ctx, "3 lugares")
	assert.Contains(t, joined(msgs), "Tamanho **3 Lugares** selecionado")

	msgs = conv.Handle(ctx, "2 unidades")
	assert.Contains(t, joined(msgs), "2 unidades de **Modelo Lisboa** selecionadas.")

	msgs = conv.Handle(ctx, "adicionar ao carrinho")
	assert.Contains(t, joined(msgs), "adicionadas ao carrinho")

	entries, total := conv.CartSnapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1700), total)
	assert.Equal(t, "3 Lugares", entries[0].Size)

	msgs = conv.Handle(ctx, "finalizar")
	assert.Contains(t, joined(msgs), "Vamos finalizar seu pedido")
	assert.Contains(t, joined(msgs), "Por favor, digite seu nome completo:")

	msgs = conv.Handle(ctx, "João Silva")
	assert.Contains(t, joined(msgs), "Obrigado, João Silva")

	msgs = conv.Handle(ctx, "joao@example.com")
	assert.Contains(t, joined(msgs), "digite seu telefone")

	msgs = conv.Handle(ctx, "912345678")
	assert.Contains(t, joined(msgs), "endereço completo")

	msgs = conv.Handle(ctx, "Rua das Flores 10, Lisboa")
	out := joined(msgs)
	assert.Contains(t, out, "Processando seu pedido...")
	assert.Contains(t, out, "**Pedido Finalizado com Sucesso!**")
	assert.Contains(t, out, "**ORD-1**")
	assert.Contains(t, out, "joao@example.com")

	require.Equal(t, 1, sub.calls)
	require.NotNil(t, sub.payload)
	assert.Equal(t, "João", sub.payload.Customer.FirstName)
	assert.Equal(t, "Silva", sub.payload.Customer.LastName)
	assert.Equal(t, "Lisboa", sub.payload.Customer.City)
	assert.Equal(t, "1000", sub.payload.Customer.Postcode)
	require.Len(t, sub.payload.Items, 1)
	item := sub.payload.Items[0]
	assert.Equal(t, "Modelo Lisboa", item.Name)
	assert.Equal(t, "Móveis", item.Category)
	assert.Equal(t, "3 Lugares", item.Size)
	assert.Equal(t, int64(2), item.Quantity)
	assert.Equal(t, int64(850), item.Price)

	// cart cleared, a new purchase can start
	entries, total = conv.CartSnapshot()
	assert.Empty(t, entries)
	assert.Equal(t, int64(0), total)
}

func TestFabricOrderByMetres(t *testing.T) {
	ctx := context.Background()
	conv := New(testCatalog(), &fakeSubmitter{})

	conv.Handle(ctx, "tecidos")
	conv.Handle(ctx, "classe a")
	msgs := conv.Handle(ctx, "atlantis")
	assert.Contains(t, joined(msgs), "**Atlantis** selecionado!")

	msgs = conv.Handle(ctx, "5 metros")
	assert.Contains(t, joined(msgs), "5 metros de **Atlantis** selecionados.")

	msgs = conv.Handle(ctx, "adicionar ao carrinho")
	assert.Contains(t, joined(msgs), "5 metros de **Atlantis** adicionados ao carrinho.")

	entries, total := conv.CartSnapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, cart.KindFabric, entries[0].Kind)
	assert.Equal(t, "Classe A", entries[0].Class)
	assert.Equal(t, int64(175), total)
}

func TestInvalidEmailReprompts(t *testing.T) {
	ctx := context.Background()
	conv := New(testCatalog(), &fakeSubmitter{ref: &OrderRef{Id: 1, OrderNumber: "ORD-2"}})

	conv.Handle(ctx, "cadeiras")
	conv.Handle(ctx, "cadeira dining")
	conv.Handle(ctx, "adicionar")
	conv.Handle(ctx, "finalizar")
	conv.Handle(ctx, "Ana Costa")

	msgs := conv.Handle(ctx, "not-an-email")
	assert.Equal(t, []string{"Por favor, digite um email válido:"}, msgs)

	// still at the email step; a valid address moves on to the phone
	msgs = conv.Handle(ctx, "ana@example.com")
	assert.Contains(t, joined(msgs), "digite seu telefone")
}

func TestCheckoutWithEmptyCart(t *testing.T) {
	ctx := context.Background()
	conv := New(testCatalog(), &fakeSubmitter{})

	msgs := conv.Handle(ctx, "finalizar")
	assert.Equal(t, []string{"Seu carrinho está vazio. Adicione itens antes de finalizar o pedido."}, msgs)

	// checkout was not entered, browsing still works
	msgs = conv.Handle(ctx, "sofás")
	assert.Contains(t, joined(msgs), "Modelo Lisboa")
}

func TestAddToCartGuards(t *testing.T) {
	ctx := context.Background()
	conv := New(testCatalog(), &fakeSubmitter{})

	msgs := conv.Handle(ctx, "adicionar ao carrinho")
	assert.Equal(t, []string{"Por favor, selecione um produto ou tecido primeiro."}, msgs)

	// sized product cannot be added without a size
	conv.Handle(ctx, "sofás")
	conv.Handle(ctx, "modelo lisboa")
	msgs = conv.Handle(ctx, "adicionar ao carrinho")
	assert.Equal(t, []string{"Por favor, selecione um tamanho primeiro."}, msgs)

	entries, _ := conv.CartSnapshot()
	assert.Empty(t, entries)

	// selection survives the rejection
	msgs = conv.Handle(ctx, "2 lugares")
	assert.Contains(t, joined(msgs), "Tamanho **2 Lugares** selecionado")
}

func TestSubmitFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	sub := &fakeSubmitter{err: errors.New("connection refused")}
	conv := New(testCatalog(), sub)

	conv.Handle(ctx, "cadeiras")
	conv.Handle(ctx, "cadeira dining")
	conv.Handle(ctx, "adicionar")
	conv.Handle(ctx, "finalizar")
	conv.Handle(ctx, "Rui Alves")
	conv.Handle(ctx, "rui@example.com")
	conv.Handle(ctx, "961234567")

	msgs := conv.Handle(ctx, "Av. Central 5, Porto")
	assert.Contains(t, joined(msgs), "ocorreu um erro ao processar seu pedido")

	// the cart survives the failure so the user can retry
	entries, total := conv.CartSnapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(180), total)

	// and checkout can be re-entered
	sub.err = nil
	sub.ref = &OrderRef{Id: 3, OrderNumber: "ORD-3"}
	msgs = conv.Handle(ctx, "finalizar")
	assert.Contains(t, joined(msgs), "Vamos finalizar seu pedido")
}

func TestQuantityMustBePositive(t *testing.T) {
	ctx := context.Background()
	conv := New(testCatalog(), &fakeSubmitter{})

	conv.Handle(ctx, "cadeiras")
	conv.Handle(ctx, "cadeira dining")

	msgs := conv.Handle(ctx, "0 unidades")
	assert.Equal(t, []string{"A quantidade deve ser maior que zero."}, msgs)

	// unset quantity defaults to one on add
	conv.Handle(ctx, "adicionar")
	entries, _ := conv.CartSnapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].Quantity)
}

func TestCartCommandShowsCart(t *testing.T) {
	ctx := context.Background()
	conv := New(testCatalog(), &fakeSubmitter{})

	msgs := conv.Handle(ctx, "carrinho")
	assert.Equal(t, []string{"Seu carrinho está vazio."}, msgs)

	conv.Handle(ctx, "cadeiras")
	conv.Handle(ctx, "cadeira dining")
	conv.Handle(ctx, "adicionar")

	msgs = conv.Handle(ctx, "ver carrinho")
	out := joined(msgs)
	assert.Contains(t, out, "**Seu Carrinho:**")
	assert.Contains(t, out, "Cadeira Dining")
	assert.Contains(t, out, "**Total: €180.00**")
}

func TestBlankInputIgnored(t *testing.T) {
	conv := New(testCatalog(), &fakeSubmitter{})
	assert.Nil(t, conv.Handle(context.Background(), "   "))
}
