package domain

import "errors"

var (
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidCustomer     = errors.New("invalid customer")
	ErrInvalidCustomerName = errors.New("customer name must be at least 2 characters")
	ErrInvalidServiceName  = errors.New("service name must be at least 2 characters")
	ErrInvalidSortColumn   = errors.New("invalid sort column")
)
