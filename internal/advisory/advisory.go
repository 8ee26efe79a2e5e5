// Package advisory wraps the optional AI collaborator that rephrases
// financial summaries and sanity-checks GSTIN strings. It is cosmetic:
// every caller must behave identically when it is absent or failing.
package advisory

import "context"

// FinancialSnapshot is the condensed view handed to the summariser.
type FinancialSnapshot struct {
	Receivables   float64 `json:"receivables"`
	Payables      float64 `json:"payables"`
	CashAndBank   float64 `json:"cashAndBank"`
	StockValue    float64 `json:"stockValue"`
	SalesTotal    float64 `json:"salesTotal"`
	PurchaseTotal float64 `json:"purchaseTotal"`
	InvoiceCount  int     `json:"invoiceCount"`
}

// Verification is the result of a GSTIN format check.
type Verification struct {
	IsValid      bool   `json:"isValid"`
	LegalName    string `json:"legalName,omitempty"`
	TradeName    string `json:"tradeName,omitempty"`
	Status       string `json:"status,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Service is the advisory capability. Both operations may fail; callers fall
// back to fixed placeholders.
type Service interface {
	Summarize(ctx context.Context, snap FinancialSnapshot) (string, error)
	VerifyTaxID(ctx context.Context, gstin string) (Verification, error)
}

// FallbackSummary is served whenever the collaborator is absent or errors.
const FallbackSummary = "Unable to generate insights at this moment."

// Noop is the absent-collaborator stub.
type Noop struct{}

// Summarize always returns the fallback text.
func (Noop) Summarize(ctx context.Context, snap FinancialSnapshot) (string, error) {
	return FallbackSummary, nil
}

// VerifyTaxID reports a verification failure without an opinion.
func (Noop) VerifyTaxID(ctx context.Context, gstin string) (Verification, error) {
	return Verification{IsValid: false, ErrorMessage: "Verification unavailable."}, nil
}
