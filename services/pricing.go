package services

import "github.com/shopspring/decimal"

// ServiceFeeRate is the fixed platform surcharge applied to every booking.
var ServiceFeeRate = decimal.RequireFromString("0.05")

var one = decimal.NewFromInt(1)

// BookingTotal computes the amount charged for a service priced at price:
// the price plus the service fee, rounded to 2 decimal places half away
// from zero. The raw product is never stored.
func BookingTotal(price decimal.Decimal) decimal.Decimal {
	return price.Mul(one.Add(ServiceFeeRate)).Round(2)
}

// ValidDonationAmount accepts positive amounts with at most 2 decimal places.
func ValidDonationAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}
