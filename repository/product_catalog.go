package repository

import (
	"context"

	"lender-match/domain"
)

// ProductCatalog provides the current lender-product list. Products may serve
// a cached copy; Refresh always goes back to the source.
type ProductCatalog interface {
	Products(ctx context.Context) ([]domain.LenderProduct, error)
	Refresh(ctx context.Context) ([]domain.LenderProduct, error)
}

// StaticProductCatalog serves a fixed product list. Used in tests and for
// offline runs against a known catalog snapshot.
type StaticProductCatalog struct {
	products []domain.LenderProduct
}

func NewStaticProductCatalog(products []domain.LenderProduct) *StaticProductCatalog {
	return &StaticProductCatalog{products: products}
}

func (c *StaticProductCatalog) Products(ctx context.Context) ([]domain.LenderProduct, error) {
	return c.products, nil
}

func (c *StaticProductCatalog) Refresh(ctx context.Context) ([]domain.LenderProduct, error) {
	return c.products, nil
}
