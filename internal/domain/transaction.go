package domain

// Transaction is the immutable routing input. Optional fields are empty
// strings when absent. Currency and country codes are opaque at this layer;
// format checks happen at the transport boundary.
type Transaction struct {
	ID                 string
	AmountMinor        int64
	Currency           string
	OriginCountry      string
	DestinationCountry string
	Scheme             string
	FundingType        string
	MCC                string
	IdempotencyKey     string
}
