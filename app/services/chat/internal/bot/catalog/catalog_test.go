package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalog() *Catalog {
	return &Catalog{
		Categories: []Category{
			{
				Id:   "tecidos",
				Name: "Tecidos",
				Classes: []FabricClass{
					{Id: "a", Name: "Classe A", Fabrics: []Fabric{
						{Id: "atlantis", Name: "Atlantis", Price: 35},
					}},
				},
			},
			{
				Id:   "sofas",
				Name: "Sofás",
				Products: []Product{
					{Id: "s-modelo1", Name: "Modelo Lisboa", Price: 850, Sizes: []string{"2 Lugares"}},
					{Id: "c-modelo1", Name: "Cadeira Dining", Price: 180},
				},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validCatalog().Validate())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Catalog)
	}{
		{"no categories", func(c *Catalog) { c.Categories = nil }},
		{"duplicate category id", func(c *Catalog) { c.Categories[1].Id = "tecidos" }},
		{"mixed classes and products", func(c *Catalog) {
			c.Categories[0].Products = []Product{{Id: "x", Name: "X", Price: 1}}
		}},
		{"fabric without price", func(c *Catalog) { c.Categories[0].Classes[0].Fabrics[0].Price = 0 }},
		{"product without price", func(c *Catalog) { c.Categories[1].Products[0].Price = 0 }},
		{"duplicate product id", func(c *Catalog) { c.Categories[1].Products[1].Id = "s-modelo1" }},
		{"category without name", func(c *Catalog) { c.Categories[0].Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := validCatalog()
			tt.mutate(cat)
			assert.Error(t, cat.Validate())
		})
	}
}

func TestLookups(t *testing.T) {
	cat := validCatalog()

	tecidos := cat.Category("tecidos")
	require.NotNil(t, tecidos)
	assert.True(t, tecidos.IsFabric())
	assert.Nil(t, cat.Category("nope"))

	sofas := cat.Category("sofas")
	require.NotNil(t, sofas)
	assert.False(t, sofas.IsFabric())

	assert.NotNil(t, tecidos.Class("a"))
	assert.Nil(t, tecidos.Class("z"))

	assert.True(t, sofas.Products[0].HasSizes())
	assert.False(t, sofas.Products[1].HasSizes())
}

func TestMustLoadShippedCatalog(t *testing.T) {
	cat := MustLoad("../../../etc/catalog.yaml")

	require.NotNil(t, cat.Category("tecidos"))
	require.NotNil(t, cat.Category("sofas"))
	require.NotNil(t, cat.Category("cadeiras"))
	require.NotNil(t, cat.Category("colchoes"))

	assert.Len(t, cat.Category("tecidos").Classes, 5)

	lisboa := cat.Category("sofas").Products[0]
	assert.Equal(t, "Modelo Lisboa", lisboa.Name)
	assert.Equal(t, int64(850), lisboa.Price)
}
