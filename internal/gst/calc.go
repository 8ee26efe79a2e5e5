package gst

import "strings"

// Line carries the fields of an invoice line relevant to tax computation.
type Line struct {
	ItemID  string
	Qty     float64
	Rate    float64
	GSTRate float64
}

// Breakup is the result of splitting tax across CGST/SGST or IGST.
type Breakup struct {
	SubTotal float64
	CGST     float64
	SGST     float64
	IGST     float64
	RoundOff float64
	Total    float64
}

// Rates lists the GST slabs offered for item masters.
var Rates = []float64{0, 5, 12, 18, 28}

// IndianStates lists states and union territories accepted for tax jurisdiction.
var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Goa", "Gujarat",
	"Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh",
	"Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh",
	"Uttarakhand", "West Bengal", "Andaman and Nicobar Islands", "Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu", "Delhi", "Jammu and Kashmir",
	"Ladakh", "Lakshadweep", "Puducherry",
}

// Intrastate reports whether both states resolve to the same jurisdiction.
// Comparison is whitespace-trimmed and case-insensitive; a blank state on
// either side is treated as interstate.
func Intrastate(sellerState, buyerState string) bool {
	seller := strings.TrimSpace(sellerState)
	buyer := strings.TrimSpace(buyerState)
	if seller == "" || buyer == "" {
		return false
	}
	return strings.EqualFold(seller, buyer)
}

// Compute derives the GST breakup for a document. Lines without an item
// reference contribute nothing. RoundOff is always zero: invoice totals are
// kept to the exact paise.
func Compute(sellerState, buyerState string, lines []Line) Breakup {
	var b Breakup
	var tax float64
	for _, line := range lines {
		if line.ItemID == "" {
			continue
		}
		amount := line.Qty * line.Rate
		b.SubTotal += amount
		tax += amount * line.GSTRate / 100
	}
	if Intrastate(sellerState, buyerState) {
		b.CGST = tax / 2
		b.SGST = tax / 2
	} else {
		b.IGST = tax
	}
	b.Total = b.SubTotal + tax
	return b
}

// LineAmount returns the taxable amount of a single line.
func LineAmount(qty, rate float64) float64 {
	return qty * rate
}
