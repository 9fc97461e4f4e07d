package domain

import "errors"

var (
	ErrInvalidServiceID   = errors.New("invalid service id")
	ErrInvalidService     = errors.New("invalid service")
	ErrInvalidServiceName = errors.New("service name must be at least 2 characters")
	ErrInvalidServiceType = errors.New("service type is required")

	ErrInvalidCustomerSnapshot = errors.New("customer id and customer name are required")
	ErrInvalidProviderDetails  = errors.New("provider company, url, username and password are required")

	ErrInvalidCostPerPeriod = errors.New("cost per period must be positive")
	ErrInvalidCostMonths    = errors.New("cost months must be between 1 and 48")
	ErrInvalidClientPrice   = errors.New("client price must be positive")
	ErrInvalidClientMonths  = errors.New("client months must be between 1 and 48")
	ErrInvalidTotalPaid     = errors.New("total paid must not be negative")

	ErrInvalidSortColumn = errors.New("invalid sort column")
)
