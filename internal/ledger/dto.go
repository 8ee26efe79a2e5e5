package ledger

// Request DTOs decoded by the HTTP handler. Validation tags cover shape
// only; business rules live in the store methods.

type itemRequest struct {
	Name          string  `json:"name" validate:"required"`
	Code          string  `json:"code" validate:"required"`
	HSN           string  `json:"hsn"`
	GSTRate       float64 `json:"gstRate" validate:"gte=0,lte=100"`
	Unit          string  `json:"unit"`
	PurchasePrice float64 `json:"purchasePrice" validate:"gte=0"`
	SalePrice     float64 `json:"salePrice" validate:"gte=0"`
	Stock         float64 `json:"stock"`
}

func (r itemRequest) toDomain(id string) Item {
	return Item{
		ID:            id,
		Name:          r.Name,
		Code:          r.Code,
		HSN:           r.HSN,
		GSTRate:       r.GSTRate,
		Unit:          r.Unit,
		PurchasePrice: r.PurchasePrice,
		SalePrice:     r.SalePrice,
		Stock:         r.Stock,
	}
}

type accountRequest struct {
	Name           string  `json:"name" validate:"required"`
	Type           string  `json:"type" validate:"required,oneof=Customer Supplier Bank Cash Expense Employee Tax"`
	OpeningBalance float64 `json:"openingBalance"`
	GSTIN          string  `json:"gstin"`
	Contact        string  `json:"contact"`
	Email          string  `json:"email" validate:"omitempty,email"`
	CreditPeriod   int     `json:"creditPeriod" validate:"gte=0"`
	Address        string  `json:"address"`
	State          string  `json:"state"`
}

func (r accountRequest) toDomain(id string) Account {
	return Account{
		ID:             id,
		Name:           r.Name,
		Type:           AccountType(r.Type),
		OpeningBalance: r.OpeningBalance,
		GSTIN:          r.GSTIN,
		Contact:        r.Contact,
		Email:          r.Email,
		CreditPeriod:   r.CreditPeriod,
		Address:        r.Address,
		State:          r.State,
	}
}

type invoiceLineRequest struct {
	ItemID  string  `json:"itemId"`
	Name    string  `json:"name"`
	HSN     string  `json:"hsn"`
	Qty     float64 `json:"qty" validate:"gte=0"`
	Rate    float64 `json:"rate" validate:"gte=0"`
	GSTRate float64 `json:"gstRate" validate:"gte=0,lte=100"`
}

type invoiceRequest struct {
	InvoiceNo string               `json:"invoiceNo"`
	Date      string               `json:"date" validate:"omitempty,datetime=2006-01-02"`
	AccountID string               `json:"accountId" validate:"required"`
	Type      string               `json:"type" validate:"required,oneof=Sales Purchase Proforma"`
	Status    string               `json:"status" validate:"omitempty,oneof=Unpaid 'Partially Paid' Paid"`
	Items     []invoiceLineRequest `json:"items" validate:"required,min=1,dive"`
}

func (r invoiceRequest) toDomain(id string) Invoice {
	inv := Invoice{
		ID:        id,
		InvoiceNo: r.InvoiceNo,
		Date:      r.Date,
		AccountID: r.AccountID,
		Type:      InvoiceType(r.Type),
		Status:    InvoiceStatus(r.Status),
	}
	for _, line := range r.Items {
		inv.Items = append(inv.Items, InvoiceItem{
			ItemID:  line.ItemID,
			Name:    line.Name,
			HSN:     line.HSN,
			Qty:     line.Qty,
			Rate:    line.Rate,
			GSTRate: line.GSTRate,
		})
	}
	return inv
}

type voucherRequest struct {
	Date        string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	VchNo       string  `json:"vchNo"`
	DrAccountID string  `json:"drAccountId" validate:"required"`
	CrAccountID string  `json:"crAccountId" validate:"required"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Narration   string  `json:"narration"`
	Type        string  `json:"type" validate:"omitempty,oneof=Receipt Payment Journal"`
}

func (r voucherRequest) toDomain(id string) Voucher {
	return Voucher{
		ID:          id,
		Date:        r.Date,
		VchNo:       r.VchNo,
		DrAccountID: r.DrAccountID,
		CrAccountID: r.CrAccountID,
		Amount:      r.Amount,
		Narration:   r.Narration,
		Type:        VoucherType(r.Type),
	}
}

type bomComponentRequest struct {
	ItemID string  `json:"itemId" validate:"required"`
	Qty    float64 `json:"qty" validate:"gt=0"`
}

type bomRequest struct {
	Name           string                `json:"name" validate:"required"`
	FinishedItemID string                `json:"finishedItemId" validate:"required"`
	Components     []bomComponentRequest `json:"components" validate:"required,min=1,dive"`
}

func (r bomRequest) toDomain() BOM {
	bom := BOM{Name: r.Name, FinishedItemID: r.FinishedItemID}
	for _, c := range r.Components {
		bom.Components = append(bom.Components, BOMComponent{ItemID: c.ItemID, Qty: c.Qty})
	}
	return bom
}
