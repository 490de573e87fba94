package dto

import (
	"bytes"
	"encoding/json"

	"github.com/jekabolt/organic-reports/internal/entity"
)

// Product is a catalog entry as returned by GET /products.
type Product struct {
	ID       ID       `json:"id"`
	MongoID  ID       `json:"_id"`
	Name     string   `json:"name"`
	Stock    Int      `json:"stock"`
	Category Category `json:"category"`
}

// Category is published either as a plain name or as an object with a name.
// Other shapes decode as no category.
type Category string

func (c *Category) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Category(s)
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		*c = ""
		return nil
	}
	*c = Category(obj.Name)
	return nil
}

type ProductsResponse struct {
	Products []Product `json:"products"`
}

func ConvertProductToEntity(p Product) entity.Product {
	category := string(p.Category)
	if category == "" {
		category = entity.UnknownCategory
	}
	stock := p.Stock.Value
	if stock < 0 {
		stock = 0
	}
	return entity.Product{
		ID:       firstID(p.ID, p.MongoID),
		Name:     p.Name,
		Stock:    stock,
		Category: category,
	}
}

func ConvertProductsToEntity(products []Product) []entity.Product {
	res := make([]entity.Product, 0, len(products))
	for _, p := range products {
		res = append(res, ConvertProductToEntity(p))
	}
	return res
}
