package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesCategory_SubstringMatch(t *testing.T) {
	assert.True(t, MatchesCategory("equipment", "Equipment Financing"))
	assert.True(t, MatchesCategory("equipment", "EQUIPMENT LOAN"))
	assert.True(t, MatchesCategory("capital", "Working Capital"))

	// Only the productCategory-contains-selection direction is checked.
	assert.False(t, MatchesCategory("equipment financing deluxe", "Equipment"))
}

func TestMatchesCategory_AliasTable(t *testing.T) {
	tests := []struct {
		selection string
		category  string
		want      bool
	}{
		{"working_capital", "Term Loan", true},
		{"working_capital", "Business Loan", true},
		{"working_capital", "working_capital", true},
		{"factoring", "AR Factoring", true},
		{"factoring", "Factor+", true},
		{"factoring", "invoice_factoring", true},
		{"line of credit", "LOC", true},
		{"line of credit", "Business Line of Credit", true},
		{"line of credit", "business_line_of_credit", true},
		{"purchase_order", "PO Financing", true},
		{"purchase_order", "po_financing", true},
		{"equipment", "Invoice Factoring", false},
		{"unknown_bucket", "Working Capital", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchesCategory(tt.selection, tt.category),
			"MatchesCategory(%q, %q)", tt.selection, tt.category)
	}
}

func TestMatchesCategory_EmptyCategory(t *testing.T) {
	assert.False(t, MatchesCategory("equipment", ""))
	assert.False(t, MatchesCategory("equipment", "   "))
}

func TestMatchesCategory_KnownOverMatch(t *testing.T) {
	// "Loan" is a working_capital alias and deliberately matches broadly.
	assert.True(t, MatchesCategory("working_capital", "Equipment Loan"))
}

func TestCategoryMatcher_CustomAliases(t *testing.T) {
	m := NewCategoryMatcher(CategoryAliases{
		"bridge": {"Bridge Loan"},
	})
	assert.True(t, m.Matches("bridge", "Short-Term Bridge Loan"))
	assert.False(t, m.Matches("equipment", "Equipment Financing"))
}

func TestIsBusinessCapitalProduct(t *testing.T) {
	assert.True(t, IsBusinessCapitalProduct("Working Capital"))
	assert.True(t, IsBusinessCapitalProduct("business term loan"))
	assert.True(t, IsBusinessCapitalProduct("SBA Loan Program")) // forward contains
	assert.True(t, IsBusinessCapitalProduct("Term"))             // reverse contains
	assert.False(t, IsBusinessCapitalProduct("Equipment Financing"))
	assert.False(t, IsBusinessCapitalProduct(""))
}
