package employee

import (
	"solid-example/domain/shared"
	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

// FinancesForFTE is the finance view of a full-time employee.
type FinancesForFTE struct {
	name             string
	totalHoursWorked float64
	hourlyRate       float64
	rewardRate       float64
}

func NewFinancesForFTE(name string, totalHoursWorked, hourlyRate, rewardRate float64) *FinancesForFTE {
	return &FinancesForFTE{
		name:             name,
		totalHoursWorked: totalHoursWorked,
		hourlyRate:       hourlyRate,
		rewardRate:       rewardRate,
	}
}

func (f *FinancesForFTE) Name() string              { return f.name }
func (f *FinancesForFTE) TotalHoursWorked() float64 { return f.totalHoursWorked }

// CalculatePay rejects negative ids.
func (f *FinancesForFTE) CalculatePay(id int) (float64, error) {
	if id < 0 {
		return 0, shared.NewInvalidArgumentError("employee finances", "id", "employee id must not be negative")
	}
	return f.totalHoursWorked * f.hourlyRate, nil
}

func (f *FinancesForFTE) CalculateRewards(id int) float64 {
	return f.totalHoursWorked * f.hourlyRate * f.rewardRate
}

func (f *FinancesForFTE) Work() {
	logger.Debug("employee working", zap.String("name", f.name), zap.Float64("hours", f.totalHoursWorked))
}

var _ EmployeeFinances = (*FinancesForFTE)(nil)
