package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"lender-match/domain"
)

// flexAmount decodes an amount the staff backend sends as a number, a numeric
// string ("15000", "$15,000"), or null. Unparseable values decode to absent,
// never to an error; the filter treats absent bounds as unbounded.
type flexAmount struct {
	value *float64
}

func (f *flexAmount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	if trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil
		}
		raw = strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(raw))
		if raw == "" {
			return nil
		}
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.value = &v
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(trimmed, &v); err == nil {
		f.value = &v
	}
	return nil
}

type amountRangePayload struct {
	Min flexAmount `json:"min"`
	Max flexAmount `json:"max"`
}

// productPayload covers every wire shape the lender data sources are known to
// emit; the aliases collapse into the canonical LenderProduct in toDomain.
type productPayload struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	ProductName     string              `json:"productName"`
	LenderName      string              `json:"lenderName"`
	LenderNameSnake string              `json:"lender_name"`
	Category        string              `json:"category"`
	Country         string              `json:"country"`
	Geography       []string            `json:"geography"`
	AmountMin       flexAmount          `json:"amountMin"`
	AmountMinSnake  flexAmount          `json:"amount_min"`
	MinAmount       flexAmount          `json:"minAmount"`
	AmountMax       flexAmount          `json:"amountMax"`
	AmountMaxSnake  flexAmount          `json:"amount_max"`
	MaxAmount       flexAmount          `json:"maxAmount"`
	AmountRange     *amountRangePayload `json:"amountRange"`
	RequiredDocs    []string            `json:"requiredDocs"`
	RequiredDocsAlt []string            `json:"requiredDocuments"`
}

func (p productPayload) toDomain() domain.LenderProduct {
	product := domain.LenderProduct{
		ID:                p.ID,
		Name:              firstNonEmpty(p.Name, p.ProductName),
		LenderName:        firstNonEmpty(p.LenderName, p.LenderNameSnake),
		Category:          p.Category,
		Country:           p.Country,
		Geography:         p.Geography,
		RequiredDocuments: p.RequiredDocsAlt,
	}
	if product.RequiredDocuments == nil {
		product.RequiredDocuments = p.RequiredDocs
	}

	product.AmountMin = firstAmount(p.AmountMin, p.AmountMinSnake, p.MinAmount)
	product.AmountMax = firstAmount(p.AmountMax, p.AmountMaxSnake, p.MaxAmount)
	if p.AmountRange != nil {
		if product.AmountMin == nil {
			product.AmountMin = p.AmountRange.Min.value
		}
		if product.AmountMax == nil {
			product.AmountMax = p.AmountRange.Max.value
		}
	}
	return product
}

// catalogEnvelope is the staff backend's usual response wrapper.
type catalogEnvelope struct {
	Success  bool             `json:"success"`
	Products []productPayload `json:"products"`
}

// DecodeCatalog accepts either the {success, products} envelope or a bare
// product array and returns the canonical product list. Shape normalization
// happens here, once per fetch; the filter never sees wire shapes.
func DecodeCatalog(data []byte) ([]domain.LenderProduct, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var payloads []productPayload
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &payloads); err != nil {
			return nil, fmt.Errorf("decode product array: %w", err)
		}
	} else {
		var envelope catalogEnvelope
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("decode catalog envelope: %w", err)
		}
		payloads = envelope.Products
	}

	products := make([]domain.LenderProduct, 0, len(payloads))
	for _, payload := range payloads {
		products = append(products, payload.toDomain())
	}
	return products, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstAmount(amounts ...flexAmount) *float64 {
	for _, a := range amounts {
		if a.value != nil {
			return a.value
		}
	}
	return nil
}
