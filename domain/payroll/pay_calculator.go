/*
Package payroll keeps PayCalculator closed for modification: a new kind of
payee is a new Payable, never a new branch in the calculator.
*/
package payroll

import (
	"strings"

	"solid-example/domain/shared"
)

// Pay is an amount in a currency.
type Pay struct {
	Amount   float64
	Currency string
}

// Payable knows how to compute its own pay in the given currency.
type Payable interface {
	CalculatePay(currency string) (Pay, error)
}

type PayCalculator struct {
	currency string
}

// NewPayCalculator accepts three-letter currency codes, case-insensitively.
func NewPayCalculator(currency string) (*PayCalculator, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if len(code) != 3 || strings.Trim(code, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") != "" {
		return nil, shared.NewInvalidArgumentError("pay calculator", "currency", "currency must be a three-letter code")
	}
	return &PayCalculator{currency: code}, nil
}

func (c *PayCalculator) Currency() string { return c.currency }

// CalculatePay delegates entirely to payable.
func (c *PayCalculator) CalculatePay(payable Payable) (Pay, error) {
	return payable.CalculatePay(c.currency)
}
