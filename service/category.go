package service

import "strings"

// CategoryAliases maps a user intent token to the free-text category strings
// the lender data sources use for that bucket.
type CategoryAliases map[string][]string

// DefaultCategoryAliases returns the alias table for the category buckets the
// funding wizard understands. Generic aliases like "Loan" under
// working_capital intentionally over-match; downstream behavior depends on it.
func DefaultCategoryAliases() CategoryAliases {
	return CategoryAliases{
		"equipment": {
			"Equipment Financing", "equipment_financing", "equipment", "Equipment Loan",
		},
		"working_capital": {
			"Working Capital", "Working Capital Loan", "Working Capital Financing",
			"Term Loan", "Loan", "Business Loan", "working_capital", "term_loan",
		},
		"factoring": {
			"Invoice Factoring", "AR Factoring", "Factor+", "Factoring", "invoice_factoring",
		},
		"line of credit": {
			"Line of Credit", "Business Line of Credit", "LOC", "Credit Line",
			"line_of_credit", "business_line_of_credit",
		},
		"purchase_order": {
			"Purchase Order Financing", "PO Financing", "purchase_order", "po_financing",
		},
	}
}

// CategoryMatcher resolves user intent tokens against free-text product
// categories. The alias table is read-only after construction.
type CategoryMatcher struct {
	aliases CategoryAliases
}

// NewCategoryMatcher creates a matcher over the given alias table.
func NewCategoryMatcher(aliases CategoryAliases) *CategoryMatcher {
	return &CategoryMatcher{aliases: aliases}
}

// Matches reports whether productCategory belongs to the bucket named by
// userSelection. It first checks whether the product category contains the
// selection as a substring (one direction only), then falls back to the alias
// table. Missing category data never matches.
func (m *CategoryMatcher) Matches(userSelection, productCategory string) bool {
	if strings.TrimSpace(productCategory) == "" {
		return false
	}

	selection := strings.ToLower(strings.TrimSpace(userSelection))
	category := strings.ToLower(productCategory)

	if selection != "" && strings.Contains(category, selection) {
		return true
	}

	for _, alias := range m.aliases[selection] {
		if strings.Contains(category, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

var defaultMatcher = NewCategoryMatcher(DefaultCategoryAliases())

// MatchesCategory matches against the default alias table.
func MatchesCategory(userSelection, productCategory string) bool {
	return defaultMatcher.Matches(userSelection, productCategory)
}

// capitalProductNames is the coarse "general business capital" vocabulary,
// distinct from the per-bucket alias table above.
var capitalProductNames = []string{
	"Working Capital",
	"Business Line of Credit",
	"Term Loan",
	"Business Term Loan",
	"SBA Loan",
	"Asset Based Lending",
	"Invoice Factoring",
	"Purchase Order Financing",
}

// IsBusinessCapitalProduct reports whether category names a general capital
// product. The substring check runs in both directions, case-insensitively.
func IsBusinessCapitalProduct(category string) bool {
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat == "" {
		return false
	}
	for _, name := range capitalProductNames {
		n := strings.ToLower(name)
		if strings.Contains(cat, n) || strings.Contains(n, cat) {
			return true
		}
	}
	return false
}
