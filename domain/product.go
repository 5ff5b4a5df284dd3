package domain

// LenderProduct is the canonical shape of a financing offer after wire
// normalization. AmountMin/AmountMax are nil when the source did not provide
// a usable bound.
type LenderProduct struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	LenderName        string   `json:"lenderName,omitempty"`
	Category          string   `json:"category,omitempty"`
	Country           string   `json:"country,omitempty"`
	Geography         []string `json:"geography,omitempty"`
	AmountMin         *float64 `json:"amountMin,omitempty"`
	AmountMax         *float64 `json:"amountMax,omitempty"`
	RequiredDocuments []string `json:"requiredDocuments,omitempty"`
}

// FormInputs is the applicant's current funding-profile selection.
// Headquarters is consulted only when BusinessLocation is empty.
type FormInputs struct {
	LookingFor                string  `json:"lookingFor"`
	FundingAmount             float64 `json:"fundingAmount"`
	BusinessLocation          string  `json:"businessLocation"`
	Headquarters              string  `json:"headquarters,omitempty"`
	AccountsReceivableBalance float64 `json:"accountsReceivableBalance"`
}

// RankedProduct is an eligible product with its match score. It is ephemeral:
// recomputed on every form change and never persisted.
type RankedProduct struct {
	LenderProduct
	MatchScore float64 `json:"matchScore"`
}
