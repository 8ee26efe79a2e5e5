package ledger

import "errors"

// AccountType categorises ledger accounts.
type AccountType string

const (
	AccountTypeCustomer AccountType = "Customer"
	AccountTypeSupplier AccountType = "Supplier"
	AccountTypeBank     AccountType = "Bank"
	AccountTypeCash     AccountType = "Cash"
	AccountTypeExpense  AccountType = "Expense"
	AccountTypeEmployee AccountType = "Employee"
	AccountTypeTax      AccountType = "Tax"
)

// InvoiceType discriminates posted document kinds. Proforma documents are
// recorded but never posted to any ledger.
type InvoiceType string

const (
	InvoiceTypeSales    InvoiceType = "Sales"
	InvoiceTypePurchase InvoiceType = "Purchase"
	InvoiceTypeProforma InvoiceType = "Proforma"
)

// InvoiceStatus is stored on the document but never transitioned by the
// engine; no payment allocation exists.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid        InvoiceStatus = "Unpaid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "Partially Paid"
	InvoiceStatusPaid          InvoiceStatus = "Paid"
)

// VoucherType tags a voucher for display. All vouchers post the same
// debit/credit pair regardless of tag.
type VoucherType string

const (
	VoucherTypeReceipt VoucherType = "Receipt"
	VoucherTypePayment VoucherType = "Payment"
	VoucherTypeJournal VoucherType = "Journal"
)

// Item is an inventory master record. Stock is mutated only by the
// transaction and production engines and may go negative.
type Item struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	HSN           string  `json:"hsn"`
	GSTRate       float64 `json:"gstRate"`
	Unit          string  `json:"unit"`
	PurchasePrice float64 `json:"purchasePrice"`
	SalePrice     float64 `json:"salePrice"`
	Stock         float64 `json:"stock"`
}

// Account is a party or balance-sheet ledger. Balance is derived but stored:
// it moves only through paired apply/reverse deltas, never recomputed from a
// transaction log.
type Account struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	OpeningBalance float64     `json:"openingBalance"`
	Balance        float64     `json:"balance"`
	GSTIN          string      `json:"gstin,omitempty"`
	Contact        string      `json:"contact,omitempty"`
	Email          string      `json:"email,omitempty"`
	CreditPeriod   int         `json:"creditPeriod,omitempty"`
	Address        string      `json:"address,omitempty"`
	State          string      `json:"state,omitempty"`
}

// InvoiceItem is a denormalised line snapshot; name/hsn/rate are copied from
// the item master at entry time.
type InvoiceItem struct {
	ItemID  string  `json:"itemId"`
	Name    string  `json:"name"`
	HSN     string  `json:"hsn"`
	Qty     float64 `json:"qty"`
	Rate    float64 `json:"rate"`
	GSTRate float64 `json:"gstRate"`
	Amount  float64 `json:"amount"`
}

// Invoice covers sales invoices, purchase bills and proforma documents.
type Invoice struct {
	ID          string        `json:"id"`
	InvoiceNo   string        `json:"invoiceNo"`
	Date        string        `json:"date"`
	AccountID   string        `json:"accountId"`
	AccountName string        `json:"accountName"`
	Items       []InvoiceItem `json:"items"`
	SubTotal    float64       `json:"subTotal"`
	CGST        float64       `json:"cgst"`
	SGST        float64       `json:"sgst"`
	IGST        float64       `json:"igst"`
	RoundOff    float64       `json:"roundOff"`
	Total       float64       `json:"total"`
	Status      InvoiceStatus `json:"status"`
	Type        InvoiceType   `json:"type"`
}

// Voucher is a manual journal entry posting one debit and one credit.
type Voucher struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	VchNo       string      `json:"vchNo"`
	DrAccountID string      `json:"drAccountId"`
	CrAccountID string      `json:"crAccountId"`
	Amount      float64     `json:"amount"`
	Narration   string      `json:"narration"`
	Type        VoucherType `json:"type"`
}

// BOMComponent pairs a raw-material item with the quantity consumed per one
// finished unit.
type BOMComponent struct {
	ItemID string  `json:"itemId"`
	Qty    float64 `json:"qty"`
}

// BOM is a production recipe. Immutable once defined; producing from it
// leaves no record beyond the stock deltas it causes.
type BOM struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	FinishedItemID string         `json:"finishedItemId"`
	Components     []BOMComponent `json:"components"`
}

// CompanySettings is the singleton company profile. State is the seller-side
// jurisdiction for every tax split.
type CompanySettings struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Email         string `json:"email"`
	Contact       string `json:"contact"`
	GSTIN         string `json:"gstin"`
	State         string `json:"state"`
	BankName      string `json:"bankName"`
	BankAccNo     string `json:"bankAccNo"`
	BankIFSC      string `json:"bankIfsc"`
	BankBranch    string `json:"bankBranch"`
	InvoicePrefix string `json:"invoicePrefix"`
	Terms         string `json:"terms"`
}

// ErrValidation indicates a precondition failure; no state was mutated.
var ErrValidation = errors.New("ledger: validation failed")

// ErrInsufficientStock indicates a production run short on raw material.
var ErrInsufficientStock = errors.New("ledger: insufficient raw material stock")

// ErrMalformedImport indicates an import payload that could not be parsed.
var ErrMalformedImport = errors.New("ledger: malformed import payload")

// ErrNotFound indicates a lookup miss. Deletes of absent ids are no-ops and
// never return this.
var ErrNotFound = errors.New("ledger: not found")
