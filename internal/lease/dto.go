package lease

import (
	"errors"

	"github.com/concierge-pm/api/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateLeaseDTO is the payload for creating a lease, with or without funding.
// The monetary fields are pointers so a missing field is distinguishable from
// an explicit zero.
type CreateLeaseDTO struct {
	ResidentID   string           `json:"residentId"`
	SpaceID      string           `json:"spaceId"`
	RentalAmount *decimal.Decimal `json:"rentalAmount"`
	MarketValue  *decimal.Decimal `json:"marketValue"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
}

// ToModel validates the DTO and converts it into a Lease.
func (d *CreateLeaseDTO) ToModel() (*Lease, error) {
	if d.ResidentID == "" || d.SpaceID == "" {
		return nil, errors.New("residentId and spaceId are required")
	}
	if d.RentalAmount == nil || d.MarketValue == nil {
		return nil, errors.New("rentalAmount and marketValue are required")
	}
	start, err := utils.ParseDate(d.StartDate)
	if err != nil {
		return nil, errors.New("startDate is not a valid date")
	}
	end, err := utils.ParseDate(d.EndDate)
	if err != nil {
		return nil, errors.New("endDate is not a valid date")
	}
	return &Lease{
		ResidentID:   d.ResidentID,
		SpaceID:      d.SpaceID,
		RentalAmount: *d.RentalAmount,
		MarketValue:  *d.MarketValue,
		StartDate:    start,
		EndDate:      end,
	}, nil
}

// FunderEntryDTO is one funder's contribution in a funding request. Amount is
// a pointer so a missing field is distinguishable from zero.
type FunderEntryDTO struct {
	FunderID string           `json:"funderId"`
	Amount   *decimal.Decimal `json:"amount"`
}

func (d *FunderEntryDTO) Validate() error {
	if d.FunderID == "" {
		return errors.New("funderId is required")
	}
	if d.Amount == nil {
		return errors.New("amount is required")
	}
	return nil
}

// LeaseWithFundingDTO is the payload of POST /api/leases-with-funding.
type LeaseWithFundingDTO struct {
	Lease   CreateLeaseDTO   `json:"lease"`
	Funders []FunderEntryDTO `json:"funders"`
}
