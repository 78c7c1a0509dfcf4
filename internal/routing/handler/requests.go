package handler

import (
	"strings"

	"payrouter/internal/domain"
	dErrors "payrouter/pkg/domain-errors"
)

// RouteRequest is the HTTP request body for POST /route.
type RouteRequest struct {
	ID                 string `json:"id"`
	AmountMinor        int64  `json:"amountMinor"`
	Currency           string `json:"currency"`
	OriginCountry      string `json:"originCountry"`
	DestinationCountry string `json:"destinationCountry"`
	Scheme             string `json:"scheme,omitempty"`
	FundingType        string `json:"fundingType,omitempty"`
	MCC                string `json:"mcc,omitempty"`
	IdempotencyKey     string `json:"idempotencyKey,omitempty"`
}

// Validate checks required fields and code formats at the transport boundary.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *RouteRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}
	if r.AmountMinor <= 0 {
		return dErrors.New(dErrors.CodeValidation, "amountMinor must be positive")
	}

	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if len(r.Currency) != 3 {
		return dErrors.New(dErrors.CodeValidation, "currency must be a 3-letter code")
	}
	r.OriginCountry = strings.ToUpper(strings.TrimSpace(r.OriginCountry))
	if len(r.OriginCountry) != 2 {
		return dErrors.New(dErrors.CodeValidation, "originCountry must be a 2-letter code")
	}
	r.DestinationCountry = strings.ToUpper(strings.TrimSpace(r.DestinationCountry))
	if len(r.DestinationCountry) != 2 {
		return dErrors.New(dErrors.CodeValidation, "destinationCountry must be a 2-letter code")
	}

	return nil
}

// Tx converts the validated request into the domain transaction.
func (r *RouteRequest) Tx() domain.Transaction {
	return domain.Transaction{
		ID:                 r.ID,
		AmountMinor:        r.AmountMinor,
		Currency:           r.Currency,
		OriginCountry:      r.OriginCountry,
		DestinationCountry: r.DestinationCountry,
		Scheme:             r.Scheme,
		FundingType:        r.FundingType,
		MCC:                r.MCC,
		IdempotencyKey:     r.IdempotencyKey,
	}
}
