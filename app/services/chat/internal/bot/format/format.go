// Package format renders structured results into user-facing text. The only
// markup is **bold** and newlines; the presentation layer turns those into
// HTML. Every function is pure: same input, same output, no state touched.
package format

import (
	"fmt"
	"strings"

	"lourini/app/services/chat/internal/bot/cart"
	"lourini/app/services/chat/internal/bot/catalog"
)

func Bold(s string) string {
	return "**" + s + "**"
}

// Price renders a unit price, whole euros.
func Price(v int64) string {
	return fmt.Sprintf("€%d", v)
}

// Total renders a grand total with cents, as the storefront always did.
func Total(v int64) string {
	return fmt.Sprintf("€%.2f", float64(v))
}

// Quantity renders an amount with its unit label, e.g. "5 metros".
func Quantity(qty int64, unit string) string {
	return fmt.Sprintf("%d %s", qty, unit)
}

func Categories(cat *catalog.Catalog) string {
	var sb strings.Builder
	sb.WriteString("Estas são as categorias disponíveis:")
	for i := range cat.Categories {
		sb.WriteString("\n• " + cat.Categories[i].Name)
	}
	return sb.String()
}

// FabricClasses lists the class choices of the fabric category.
func FabricClasses(c *catalog.Category) string {
	var sb strings.Builder
	sb.WriteString(Bold(c.Name) + ": Selecione uma classe de tecido:")
	for i := range c.Classes {
		sb.WriteString("\n• " + c.Classes[i].Name)
	}
	return sb.String()
}

// Products lists the products of a non-fabric category with prices.
func Products(c *catalog.Category) string {
	var sb strings.Builder
	sb.WriteString(Bold(c.Name) + ": Produtos disponíveis:")
	for _, p := range c.Products {
		sb.WriteString(fmt.Sprintf("\n• %s - %s", p.Name, Price(p.Price)))
	}
	return sb.String()
}

// Fabrics lists the fabrics of one class; highlighted fabrics get a check
// mark and the stock note below.
func Fabrics(cl *catalog.FabricClass) string {
	var sb strings.Builder
	sb.WriteString(Bold(cl.Name) + ": Tecidos disponíveis:")
	for _, f := range cl.Fabrics {
		sb.WriteString(fmt.Sprintf("\n• %s - %s", f.Name, Price(f.Price)))
		if f.Highlight {
			sb.WriteString(" ✓")
		}
	}
	sb.WriteString("\n\nOs tecidos marcados com ✓ estão em destaque e possuem pronta entrega.")
	return sb.String()
}

func FabricSelected(f *catalog.Fabric) string {
	var sb strings.Builder
	sb.WriteString(Bold(f.Name) + " selecionado!")
	sb.WriteString(fmt.Sprintf("\nPreço: %s por metro", Price(f.Price)))
	if f.Highlight {
		sb.WriteString("\nEste tecido está em destaque e possui pronta entrega!")
	}
	sb.WriteString("\n\nPara adicionar ao carrinho, digite 'adicionar ao carrinho' ou especifique uma quantidade (exemplo: '5 metros').")
	return sb.String()
}

func ProductSelected(p *catalog.Product) string {
	var sb strings.Builder
	sb.WriteString(Bold(p.Name) + " selecionado!")
	sb.WriteString("\nPreço: " + Price(p.Price))
	if p.HasSizes() {
		sb.WriteString("\n\nTamanhos disponíveis:")
		for _, size := range p.Sizes {
			sb.WriteString("\n• " + size)
		}
		sb.WriteString("\n\nPor favor, selecione um tamanho.")
	} else {
		sb.WriteString("\n\nPara adicionar ao carrinho, digite 'adicionar ao carrinho' ou especifique uma quantidade.")
	}
	return sb.String()
}

// Cart renders the numbered cart listing plus the grand total. Rendering
// twice with no mutation in between produces identical output.
func Cart(entries []cart.Entry, total int64) string {
	if len(entries) == 0 {
		return "Seu carrinho está vazio."
	}
	var sb strings.Builder
	sb.WriteString(Bold("Seu Carrinho:") + "\n")
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, e.Name))
		if e.Size != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", e.Size))
		}
		if e.Class != "" {
			sb.WriteString(" - " + e.Class)
		}
		sb.WriteString(fmt.Sprintf("\n   Quantidade: %d %s", e.Quantity, e.Unit))
		sb.WriteString("\n   Preço unitário: " + Price(e.UnitPrice))
		sb.WriteString("\n   Subtotal: " + Price(e.Subtotal))
	}
	sb.WriteString(fmt.Sprintf("\n\n%s", Bold("Total: "+Total(total))))
	sb.WriteString("\n\nPara continuar comprando, explore as categorias. Para finalizar o pedido, digite 'finalizar'.")
	return sb.String()
}

func Help(cat *catalog.Catalog) string {
	var sb strings.Builder
	sb.WriteString(Bold("Como posso ajudar:") + "\n")
	sb.WriteString("• Digite o nome de uma categoria para explorar produtos\n")
	sb.WriteString("• 'carrinho' - Ver seus itens selecionados\n")
	sb.WriteString("• 'finalizar' - Concluir sua compra\n")
	sb.WriteString("• 'add' ou 'adicionar' - Adicionar item ao carrinho\n")
	sb.WriteString("• 'ajuda' - Ver este menu novamente\n\n")
	sb.WriteString(Bold("Categorias disponíveis:"))
	for i := range cat.Categories {
		sb.WriteString("\n• " + cat.Categories[i].Name)
	}
	return sb.String()
}
