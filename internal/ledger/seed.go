package ledger

// CompanyState is the seeded home state; the settings value is what tax
// splits actually consult.
const CompanyState = "Maharashtra"

// DefaultSettings returns the factory company profile used until the owner
// saves their own.
func DefaultSettings() CompanySettings {
	return CompanySettings{
		Name:          "Veewell Lifescience",
		Address:       "123, Science Park, Industrial Area, Mumbai - 400001",
		Email:         "billing@veewell.com",
		Contact:       "+91 9876543210",
		GSTIN:         "27AABCV1234D1Z5",
		State:         CompanyState,
		BankName:      "HDFC Bank Ltd",
		BankAccNo:     "50200012345678",
		BankIFSC:      "HDFC0001234",
		BankBranch:    "Worli, Mumbai",
		InvoicePrefix: "VWL",
		Terms: "1. Goods once sold will not be taken back.\n" +
			"2. Interest @18% p.a. will be charged if payment is not made within credit period.\n" +
			"3. All disputes subject to Mumbai jurisdiction.",
	}
}

// applySeed loads the sample dataset shown on first run. Callers must hold
// the mutex.
func (s *Store) applySeed() {
	s.items = []Item{
		{ID: "i1", Name: "Sample Tablet", Code: "TAB001", HSN: "3004", GSTRate: 12, Unit: "BOX", PurchasePrice: 80, SalePrice: 120, Stock: 100},
		{ID: "i2", Name: "Vitamin Syrup", Code: "SYP001", HSN: "3004", GSTRate: 5, Unit: "BTL", PurchasePrice: 40, SalePrice: 65, Stock: 50},
	}
	s.accounts = []Account{
		{ID: "acc1", Name: "Cash In Hand", Type: AccountTypeCash, OpeningBalance: 50000, Balance: 50000, State: CompanyState},
		{ID: "acc2", Name: "HDFC Bank", Type: AccountTypeBank, OpeningBalance: 250000, Balance: 250000, State: CompanyState},
		{ID: "acc3", Name: "Modern Chemist", Type: AccountTypeCustomer, GSTIN: "27AAACG1234A1Z1", State: CompanyState, Address: "Near Main Road, Mumbai"},
		{ID: "acc4", Name: "Sunrise Pharma", Type: AccountTypeSupplier, GSTIN: "07BBBCG5678B1Z2", State: "Delhi", Address: "Okhla Industrial Area"},
	}
	s.invoices = nil
	s.vouchers = nil
	s.boms = nil
}
