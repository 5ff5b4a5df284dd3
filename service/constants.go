package service

import "time"

const (
	// Score weights. Base score is 0; a full match tops out at 100.
	ScoreAmountFit      = 40.0
	ScoreGeographyMatch = 30.0
	ScoreIntentMatch    = 30.0
	ScoreIntentNeutral  = 20.0

	// Fixed UI vocabulary for FormInputs.LookingFor.
	LookingForCapital   = "capital"
	LookingForEquipment = "equipment"
	LookingForBoth      = "both"

	CountryUS = "US"
	CountryCA = "CA"

	catalogCacheKey       = "lender-products:catalog"
	catalogRequestTimeout = 30 * time.Second
)
