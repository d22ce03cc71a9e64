package employee

// BaseEmployee is what every kind of employee exposes.
type BaseEmployee interface {
	Name() string
	TotalHoursWorked() float64
	Work()
}

// EmployeeFinances adds money calculations keyed by an employee id.
type EmployeeFinances interface {
	BaseEmployee
	CalculatePay(id int) (float64, error)
	CalculateRewards(id int) float64
}
