package service

const (
	MaxLoanAmount  = 1_000_000_000.0 // upper bound on principal
	MaxLoanYears   = 100
	MaxRatePercent = 1000.0 // annual percentage

	MonthsPerYear = 12
)
