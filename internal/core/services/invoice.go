package services

import (
	"fmt"
	"math"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

const (
	DefaultSingleRate        = 2500.0
	DefaultDoubleRate        = 3500.0
	DefaultAdditionalCharges = 100.0
	DefaultDiscountRate      = 0.10
	DefaultMealCost          = 1500.0
	DefaultGuestCount        = 2
)

// Pricing is the tier rate table plus the engine-wide invoice constants.
type Pricing struct {
	Rates             map[domain.Tier]float64
	AdditionalCharges float64
	DiscountRate      float64
	MealCost          float64
}

func DefaultPricing() Pricing {
	return Pricing{
		Rates: map[domain.Tier]float64{
			domain.TierSingle: DefaultSingleRate,
			domain.TierDouble: DefaultDoubleRate,
		},
		AdditionalCharges: DefaultAdditionalCharges,
		DiscountRate:      DefaultDiscountRate,
		MealCost:          DefaultMealCost,
	}
}

func (p Pricing) RateFor(tier domain.Tier) (float64, error) {
	rate, ok := p.Rates[tier]
	if !ok {
		return 0, fmt.Errorf("no rate for room tier %q: %w", tier, domain.ErrInvalidInput)
	}
	return rate, nil
}

// ComputeInvoice prices a stay. Intermediate amounts keep full precision and
// are rounded to cents only in the returned invoice. A negative total is
// clamped to zero and reported through Invoice.Clamped. IDs and timestamps
// are left for the caller to stamp.
func ComputeInvoice(rate float64, guestCount int, additionalCharges, discountRate float64, addOns []domain.AddOn) domain.Invoice {
	base := rate * float64(guestCount)

	var addOnTotal float64
	for _, a := range addOns {
		addOnTotal += a.Amount
	}

	beforeDiscount := base + addOnTotal + additionalCharges
	discount := beforeDiscount * discountRate
	total := beforeDiscount - discount

	clamped := false
	if total < 0 {
		total = 0
		clamped = true
	}

	items := []domain.LineItem{{
		Kind:        domain.LineRoomCharge,
		Description: fmt.Sprintf("Room charges (%.2f x %d)", rate, guestCount),
		Amount:      roundCents(base),
	}}
	for _, a := range addOns {
		items = append(items, domain.LineItem{
			Kind:        domain.LineAddOn,
			Description: a.Name,
			Amount:      roundCents(a.Amount),
		})
	}
	items = append(items,
		domain.LineItem{Kind: domain.LineAdditionalCharges, Description: "Additional charges", Amount: roundCents(additionalCharges)},
		domain.LineItem{Kind: domain.LineDiscount, Description: fmt.Sprintf("Discount (%.0f%%)", discountRate*100), Amount: roundCents(discount)},
	)

	return domain.Invoice{
		Rate:              rate,
		GuestCount:        guestCount,
		Items:             items,
		Base:              roundCents(base),
		AddOns:            roundCents(addOnTotal),
		AdditionalCharges: roundCents(additionalCharges),
		BeforeDiscount:    roundCents(beforeDiscount),
		Discount:          roundCents(discount),
		Total:             roundCents(total),
		Clamped:           clamped,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
