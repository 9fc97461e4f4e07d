//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/webkraft/clientcms/customer/domain"
	"github.com/webkraft/clientcms/customer/service"
)

type CustomersIface interface {
	CreateCustomer(ctx context.Context, req service.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, req service.UpdateCustomerRequest) (*domain.Customer, error)
	ListCustomers(ctx context.Context, req service.ListCustomersRequest) ([]*domain.Customer, error)
}
