// Package catalog holds the immutable product/fabric taxonomy the chatbot
// sells from. It is loaded once at startup and never mutated afterwards.
package catalog

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
)

type (
	// Fabric is a leaf fabric item inside a fabric class. Price is per metre,
	// in euros. Highlighted fabrics are in stock for immediate delivery.
	Fabric struct {
		Id        string `json:"id"`
		Name      string `json:"name"`
		Price     int64  `json:"price"`
		Highlight bool   `json:"highlight,optional"`
	}

	// FabricClass groups fabrics of one price class (Classe A..E).
	FabricClass struct {
		Id      string   `json:"id"`
		Name    string   `json:"name"`
		Fabrics []Fabric `json:"fabrics"`
	}

	// Product is a leaf product (sofa, chair, mattress). Sizes is empty for
	// products sold in a single size.
	Product struct {
		Id    string   `json:"id"`
		Name  string   `json:"name"`
		Price int64    `json:"price"`
		Sizes []string `json:"sizes,optional"`
	}

	// Category is a top level catalog node. The fabric category carries
	// Classes; every other category carries Products directly.
	Category struct {
		Id       string        `json:"id"`
		Name     string        `json:"name"`
		Classes  []FabricClass `json:"classes,optional"`
		Products []Product     `json:"products,optional"`
	}

	Catalog struct {
		Categories []Category `json:"categories"`
	}
)

// IsFabric reports whether the category is organised in fabric classes.
func (c *Category) IsFabric() bool {
	return len(c.Classes) > 0
}

// Class returns the fabric class with the given id, or nil.
func (c *Category) Class(id string) *FabricClass {
	for i := range c.Classes {
		if c.Classes[i].Id == id {
			return &c.Classes[i]
		}
	}
	return nil
}

// Category returns the category with the given id, or nil.
func (c *Catalog) Category(id string) *Category {
	for i := range c.Categories {
		if c.Categories[i].Id == id {
			return &c.Categories[i]
		}
	}
	return nil
}

// HasSizes reports whether the product comes in size variants.
func (p *Product) HasSizes() bool {
	return len(p.Sizes) > 0
}

// MustLoad reads the catalog from a yaml file and validates it.
// The catalog is static configuration, changing it requires a redeploy.
func MustLoad(path string) *Catalog {
	var cat Catalog
	conf.MustLoad(path, &cat)
	if err := cat.Validate(); err != nil {
		panic(fmt.Sprintf("invalid catalog %s: %v", path, err))
	}
	return &cat
}

// Validate checks identifier uniqueness within each parent scope and that
// every node that must carry a price does.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}
	catIds := make(map[string]bool, len(c.Categories))
	for i := range c.Categories {
		cat := &c.Categories[i]
		if cat.Id == "" || cat.Name == "" {
			return fmt.Errorf("category %d missing id or name", i)
		}
		if catIds[cat.Id] {
			return fmt.Errorf("duplicate category id %q", cat.Id)
		}
		catIds[cat.Id] = true

		if len(cat.Classes) > 0 && len(cat.Products) > 0 {
			return fmt.Errorf("category %q mixes classes and products", cat.Id)
		}

		classIds := make(map[string]bool, len(cat.Classes))
		for j := range cat.Classes {
			cl := &cat.Classes[j]
			if cl.Id == "" || cl.Name == "" {
				return fmt.Errorf("class %d in category %q missing id or name", j, cat.Id)
			}
			if classIds[cl.Id] {
				return fmt.Errorf("duplicate class id %q in category %q", cl.Id, cat.Id)
			}
			classIds[cl.Id] = true

			fabricIds := make(map[string]bool, len(cl.Fabrics))
			for _, f := range cl.Fabrics {
				if f.Id == "" || f.Name == "" {
					return fmt.Errorf("fabric in class %q missing id or name", cl.Id)
				}
				if f.Price <= 0 {
					return fmt.Errorf("fabric %q has no price", f.Id)
				}
				if fabricIds[f.Id] {
					return fmt.Errorf("duplicate fabric id %q in class %q", f.Id, cl.Id)
				}
				fabricIds[f.Id] = true
			}
		}

		prodIds := make(map[string]bool, len(cat.Products))
		for _, p := range cat.Products {
			if p.Id == "" || p.Name == "" {
				return fmt.Errorf("product in category %q missing id or name", cat.Id)
			}
			if p.Price <= 0 {
				return fmt.Errorf("product %q has no price", p.Id)
			}
			if prodIds[p.Id] {
				return fmt.Errorf("duplicate product id %q in category %q", p.Id, cat.Id)
			}
			prodIds[p.Id] = true
		}
	}
	return nil
}
