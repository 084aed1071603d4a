package domain

// StoreSettings is the store-level configuration document. It is loaded once
// at startup; only the order counter derived from LastOrderNumber changes
// afterwards, and only in memory.
type StoreSettings struct {
	StoreName       string  `json:"storeName"`
	Currency        string  `json:"currency"`
	AdminContact    string  `json:"adminContact"`
	LastOrderNumber int64   `json:"lastOrderNumber"`
	ShippingFee     float64 `json:"shippingFee"`
}

// DefaultStoreSettings are the built-in fallbacks used when the settings
// document cannot be loaded. The rest of the system must always have a
// usable configuration.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		StoreName:       "Elegance",
		Currency:        "LKR",
		AdminContact:    "1234567890",
		LastOrderNumber: 1000,
		ShippingFee:     10,
	}
}
