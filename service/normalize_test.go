package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCatalog_Envelope(t *testing.T) {
	data := []byte(`{
		"success": true,
		"products": [
			{
				"id": "p1",
				"name": "Flex Term Loan",
				"lenderName": "Acme Capital",
				"category": "Working Capital",
				"country": "US",
				"amountMin": 10000,
				"amountMax": 500000,
				"requiredDocuments": ["bank_statements", "tax_returns"]
			}
		]
	}`)

	products, err := DecodeCatalog(data)

	require.NoError(t, err)
	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Flex Term Loan", p.Name)
	assert.Equal(t, "Acme Capital", p.LenderName)
	require.NotNil(t, p.AmountMin)
	assert.Equal(t, 10000.0, *p.AmountMin)
	require.NotNil(t, p.AmountMax)
	assert.Equal(t, 500000.0, *p.AmountMax)
	assert.Equal(t, []string{"bank_statements", "tax_returns"}, p.RequiredDocuments)
}

func TestDecodeCatalog_BareArray(t *testing.T) {
	data := []byte(`[{"id": "p1", "category": "LOC"}, {"id": "p2"}]`)

	products, err := DecodeCatalog(data)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "LOC", products[0].Category)
}

func TestDecodeCatalog_FieldAliases(t *testing.T) {
	data := []byte(`[
		{
			"id": "snake",
			"productName": "Equipment Express",
			"lender_name": "North Lending",
			"category": "equipment_financing",
			"amount_min": "15000",
			"amount_max": "$2,000,000",
			"requiredDocs": ["invoice"]
		},
		{
			"id": "range",
			"name": "Credit Builder",
			"amountRange": {"min": 5000, "max": 50000}
		},
		{
			"id": "mixed",
			"minAmount": 1000,
			"maxAmount": 9000
		}
	]`)

	products, err := DecodeCatalog(data)

	require.NoError(t, err)
	require.Len(t, products, 3)

	snake := products[0]
	assert.Equal(t, "Equipment Express", snake.Name)
	assert.Equal(t, "North Lending", snake.LenderName)
	require.NotNil(t, snake.AmountMin)
	assert.Equal(t, 15000.0, *snake.AmountMin)
	require.NotNil(t, snake.AmountMax)
	assert.Equal(t, 2000000.0, *snake.AmountMax)
	assert.Equal(t, []string{"invoice"}, snake.RequiredDocuments)

	rng := products[1]
	require.NotNil(t, rng.AmountMin)
	assert.Equal(t, 5000.0, *rng.AmountMin)
	require.NotNil(t, rng.AmountMax)
	assert.Equal(t, 50000.0, *rng.AmountMax)

	mixed := products[2]
	require.NotNil(t, mixed.AmountMin)
	assert.Equal(t, 1000.0, *mixed.AmountMin)
	require.NotNil(t, mixed.AmountMax)
	assert.Equal(t, 9000.0, *mixed.AmountMax)
}

func TestDecodeCatalog_UnparseableAmountsDegradeToAbsent(t *testing.T) {
	data := []byte(`[{"id": "p1", "amountMin": "call us", "amountMax": null}]`)

	products, err := DecodeCatalog(data)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Nil(t, products[0].AmountMin)
	assert.Nil(t, products[0].AmountMax)
}

func TestDecodeCatalog_Empty(t *testing.T) {
	products, err := DecodeCatalog(nil)
	require.NoError(t, err)
	assert.Empty(t, products)

	products, err = DecodeCatalog([]byte("  "))
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDecodeCatalog_Malformed(t *testing.T) {
	_, err := DecodeCatalog([]byte(`{not-json`))
	assert.Error(t, err)

	_, err = DecodeCatalog([]byte(`[{"id": 1}`))
	assert.Error(t, err)
}
