package payroll

import "solid-example/domain/shared"

type FullTimeEmployee struct {
	MonthlySalary float64
}

func (e FullTimeEmployee) CalculatePay(currency string) (Pay, error) {
	return Pay{Amount: e.MonthlySalary, Currency: currency}, nil
}

type Contractor struct {
	Hours      float64
	HourlyRate float64
}

func (c Contractor) CalculatePay(currency string) (Pay, error) {
	if c.Hours < 0 {
		return Pay{}, shared.NewInvalidArgumentError("contractor", "hours", "hours must not be negative")
	}
	return Pay{Amount: c.Hours * c.HourlyRate, Currency: currency}, nil
}

type Intern struct {
	Stipend float64
}

func (i Intern) CalculatePay(currency string) (Pay, error) {
	return Pay{Amount: i.Stipend, Currency: currency}, nil
}

var (
	_ Payable = FullTimeEmployee{}
	_ Payable = Contractor{}
	_ Payable = Intern{}
)
