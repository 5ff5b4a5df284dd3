package service

import (
	"math"
	"sort"
	"strings"

	"lender-match/domain"
)

// FilterAndRankProducts returns the products eligible for the given form
// inputs, ordered by descending match score. Ties keep input order.
//
// A product survives when geography and amount both fit and either the
// category-intent rule passes or the product is a line of credit (the LOC
// override skips the intent rule only). Factoring products additionally
// require a positive accounts-receivable balance regardless of how they
// qualified.
//
// The function is pure: it never errors, never mutates its inputs, and
// degrades malformed product fields to permissive defaults.
func FilterAndRankProducts(products []domain.LenderProduct, form domain.FormInputs) []domain.RankedProduct {
	target := resolveTargetCountry(form)

	ranked := make([]domain.RankedProduct, 0, len(products))
	for _, product := range products {
		if !isEligible(product, form, target) {
			continue
		}
		ranked = append(ranked, domain.RankedProduct{
			LenderProduct: product,
			MatchScore:    calculateMatchScore(product, form, target),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	return ranked
}

func isEligible(product domain.LenderProduct, form domain.FormInputs, target string) bool {
	if !countryListContains(productCountries(product), target) {
		return false
	}

	minAmount, maxAmount := amountBounds(product)
	if form.FundingAmount > 0 &&
		(form.FundingAmount < minAmount || form.FundingAmount > maxAmount) {
		return false
	}

	// AR gate applies to factoring products on every qualification path.
	if MatchesCategory("factoring", product.Category) &&
		form.AccountsReceivableBalance <= 0 {
		return false
	}

	// LOC override: with geography and amount already satisfied, a line of
	// credit surfaces regardless of the stated intent.
	if MatchesCategory("line of credit", product.Category) {
		return true
	}

	return intentAllows(form.LookingFor, product.Category)
}

func intentAllows(lookingFor, category string) bool {
	switch strings.ToLower(strings.TrimSpace(lookingFor)) {
	case LookingForEquipment:
		return MatchesCategory(LookingForEquipment, category)
	case LookingForCapital:
		return !MatchesCategory(LookingForEquipment, category)
	case LookingForBoth:
		return true
	default:
		return MatchesCategory(lookingFor, category)
	}
}

// calculateMatchScore scores an already-eligible product from a base of 0:
// +40 for a strict amount fit, +30 for a geography match, +30 for an
// equipment/capital intent match, +20 for the neutral "both" intent.
func calculateMatchScore(product domain.LenderProduct, form domain.FormInputs, target string) float64 {
	score := 0.0

	minAmount, maxAmount := amountBounds(product)
	if form.FundingAmount > 0 &&
		form.FundingAmount > minAmount && form.FundingAmount < maxAmount {
		score += ScoreAmountFit
	}

	if countryListContains(productCountries(product), target) {
		score += ScoreGeographyMatch
	}

	switch strings.ToLower(strings.TrimSpace(form.LookingFor)) {
	case LookingForEquipment:
		if MatchesCategory(LookingForEquipment, product.Category) {
			score += ScoreIntentMatch
		}
	case LookingForCapital:
		if !MatchesCategory(LookingForEquipment, product.Category) {
			score += ScoreIntentMatch
		}
	case LookingForBoth:
		score += ScoreIntentNeutral
	}

	return score
}

// amountBounds resolves the funding range with permissive defaults: 0 when
// the minimum is absent, +Inf when the maximum is absent or inverted.
func amountBounds(product domain.LenderProduct) (float64, float64) {
	minAmount := 0.0
	if product.AmountMin != nil && *product.AmountMin > 0 {
		minAmount = *product.AmountMin
	}
	maxAmount := math.Inf(1)
	if product.AmountMax != nil && *product.AmountMax > 0 {
		maxAmount = *product.AmountMax
	}
	if maxAmount < minAmount {
		maxAmount = math.Inf(1)
	}
	return minAmount, maxAmount
}

// productCountries resolves the countries a product serves. The geography
// array wins when present; otherwise the scalar country field is parsed
// (supporting "US/CA" composites); a product with neither serves the US.
func productCountries(product domain.LenderProduct) []string {
	if len(product.Geography) > 0 {
		countries := make([]string, 0, len(product.Geography))
		for _, g := range product.Geography {
			if c := normalizeCountry(g); c != "" {
				countries = append(countries, c)
			}
		}
		if len(countries) > 0 {
			return countries
		}
	}

	var countries []string
	for _, part := range strings.Split(product.Country, "/") {
		if c := normalizeCountry(part); c != "" {
			countries = append(countries, c)
		}
	}
	if len(countries) == 0 {
		return []string{CountryUS}
	}
	return countries
}

func normalizeCountry(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return ""
	case "ca", "can", "canada":
		return CountryCA
	case "us", "usa", "united states", "united-states", "united_states":
		return CountryUS
	default:
		return strings.ToUpper(strings.TrimSpace(raw))
	}
}

func resolveTargetCountry(form domain.FormInputs) string {
	location := form.BusinessLocation
	if strings.TrimSpace(location) == "" {
		location = form.Headquarters
	}
	switch strings.ToLower(strings.TrimSpace(location)) {
	case "ca", "canada":
		return CountryCA
	default:
		return CountryUS
	}
}

func countryListContains(countries []string, target string) bool {
	for _, c := range countries {
		if c == target {
			return true
		}
	}
	return false
}
