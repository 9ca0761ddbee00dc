package domain

import (
	"errors"
	"strconv"
)

// Tier is a named service level determining per-night hotel and per-day
// food rates.
type Tier string

const (
	TierBudget   Tier = "Budget"
	TierMidRange Tier = "Mid-Range"
	TierLuxury   Tier = "Luxury"
)

// TierPricing holds the per-night hotel and per-day food rates for a tier.
type TierPricing struct {
	HotelPerNight float64
	FoodPerDay    float64
}

var tierRates = map[Tier]TierPricing{
	TierBudget:   {HotelPerNight: 800, FoodPerDay: 300},
	TierMidRange: {HotelPerNight: 1500, FoodPerDay: 600},
	TierLuxury:   {HotelPerNight: 4000, FoodPerDay: 1500},
}

// fareRates maps transport mode -> subtype -> per-kilometer rate.
var fareRates = map[string]map[string]float64{
	"Bus": {
		"AC Bus":        5,
		"Non-AC Bus":    3,
		"Sleeper Coach": 7,
	},
	"Train": {
		"Sleeper":   2,
		"AC 3-Tier": 4,
		"AC 2-Tier": 6,
	},
	"Flight": {
		"Economy":  10,
		"Business": 25,
	},
}

var ErrUnknownTier = errors.New("unknown budget tier")
var ErrUnknownFare = errors.New("unknown transport mode or subtype")

// FareRate resolves a transport mode/subtype pair to its per-kilometer
// rate, or ErrUnknownFare when the combination is not in the table.
func FareRate(mode, subtype string) (float64, error) {
	subtypes, ok := fareRates[mode]
	if !ok {
		return 0, ErrUnknownFare
	}
	rate, ok := subtypes[subtype]
	if !ok {
		return 0, ErrUnknownFare
	}
	return rate, nil
}

// TierRate resolves a tier name to its rate pair, or ErrUnknownTier.
func TierRate(tier string) (TierPricing, error) {
	r, ok := tierRates[Tier(tier)]
	if !ok {
		return TierPricing{}, ErrUnknownTier
	}
	return r, nil
}

// BudgetBreakdown is the itemized result of a budget computation.
type BudgetBreakdown struct {
	DistanceKm         float64 `json:"distance_km"`
	TransportationCost float64 `json:"transportation_cost"`
	FoodCost           float64 `json:"food_cost"`
	ShoppingCost       float64 `json:"shopping_cost"`
	HotelCost          float64 `json:"hotel_cost"`
	TotalCost          float64 `json:"total_cost"`
}

// ComputeBudget prices a trip from the fixed rate tables. It is a pure
// function: same inputs, same output, no I/O. The shopping amount is
// parsed as a decimal and falls back to 0 when absent or unparsable.
func ComputeBudget(distanceKm float64, nights, travelers int, tier, mode, subtype, shoppingAmount string) (*BudgetBreakdown, error) {
	rates, err := TierRate(tier)
	if err != nil {
		return nil, err
	}
	perKm, err := FareRate(mode, subtype)
	if err != nil {
		return nil, err
	}

	shopping, err := strconv.ParseFloat(shoppingAmount, 64)
	if err != nil {
		shopping = 0
	}

	t := float64(travelers)
	n := float64(nights)
	b := &BudgetBreakdown{
		DistanceKm:         distanceKm,
		TransportationCost: t * distanceKm * perKm,
		FoodCost:           t * n * rates.FoodPerDay,
		HotelCost:          t * n * rates.HotelPerNight,
		ShoppingCost:       shopping,
	}
	b.TotalCost = b.TransportationCost + b.FoodCost + b.HotelCost + b.ShoppingCost
	return b, nil
}
