// Package reports computes read-only views over the ledger snapshot: the
// dashboard metric strip and the GST outward/inward summary.
package reports

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/veewell/veewell-erp/internal/advisory"
	"github.com/veewell/veewell-erp/internal/ledger"
)

// DashboardMetrics is the headline metric strip.
type DashboardMetrics struct {
	TotalSales     float64 `json:"totalSales"`
	TotalPurchases float64 `json:"totalPurchases"`
	CashAndBank    float64 `json:"cashAndBank"`
	Receivables    float64 `json:"receivables"`
	Payables       float64 `json:"payables"`
	StockValue     float64 `json:"stockValue"`
	InvoiceCount   int     `json:"invoiceCount"`
}

// TaxSection aggregates one direction of GST flow.
type TaxSection struct {
	TaxableValue float64 `json:"taxableValue"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	IGST         float64 `json:"igst"`
	TotalTax     float64 `json:"totalTax"`
	Documents    int     `json:"documents"`
}

// GSTSummary pairs outward supply (sales) against inward supply (purchases)
// and nets the liability.
type GSTSummary struct {
	Outward       TaxSection `json:"outward"`
	Inward        TaxSection `json:"inward"`
	NetGSTPayable float64    `json:"netGstPayable"`
}

// Dashboard derives the metric strip from a snapshot. Receivables count only
// customer balances above zero; payables only supplier balances below zero.
// Stock is valued at purchase price.
func Dashboard(snap ledger.Snapshot) DashboardMetrics {
	var m DashboardMetrics
	m.InvoiceCount = len(snap.Invoices)
	for _, inv := range snap.Invoices {
		switch inv.Type {
		case ledger.InvoiceTypeSales:
			m.TotalSales += inv.Total
		case ledger.InvoiceTypePurchase:
			m.TotalPurchases += inv.Total
		}
	}
	for _, acc := range snap.Accounts {
		switch acc.Type {
		case ledger.AccountTypeCash, ledger.AccountTypeBank:
			m.CashAndBank += acc.Balance
		case ledger.AccountTypeCustomer:
			if acc.Balance > 0 {
				m.Receivables += acc.Balance
			}
		case ledger.AccountTypeSupplier:
			if acc.Balance < 0 {
				m.Payables += math.Abs(acc.Balance)
			}
		}
	}
	for _, item := range snap.Items {
		m.StockValue += item.Stock * item.PurchasePrice
	}
	return m
}

// GST derives the outward/inward tax summary from a snapshot. Proforma
// documents are excluded from both directions.
func GST(snap ledger.Snapshot) GSTSummary {
	var sum GSTSummary
	for _, inv := range snap.Invoices {
		var section *TaxSection
		switch inv.Type {
		case ledger.InvoiceTypeSales:
			section = &sum.Outward
		case ledger.InvoiceTypePurchase:
			section = &sum.Inward
		default:
			continue
		}
		section.TaxableValue += inv.SubTotal
		section.CGST += inv.CGST
		section.SGST += inv.SGST
		section.IGST += inv.IGST
		section.TotalTax += inv.CGST + inv.SGST + inv.IGST
		section.Documents++
	}
	sum.NetGSTPayable = sum.Outward.TotalTax - sum.Inward.TotalTax
	return sum
}

// Snapshot condenses the metrics into the advisory service's input shape.
func Snapshot(m DashboardMetrics) advisory.FinancialSnapshot {
	return advisory.FinancialSnapshot{
		Receivables:   m.Receivables,
		Payables:      m.Payables,
		CashAndBank:   m.CashAndBank,
		StockValue:    m.StockValue,
		SalesTotal:    m.TotalSales,
		PurchaseTotal: m.TotalPurchases,
		InvoiceCount:  m.InvoiceCount,
	}
}

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount with Indian digit grouping, e.g. ₹12,34,567.89.
func FormatINR(amount float64) string {
	return inr.Sprintf("₹%.2f", amount)
}
