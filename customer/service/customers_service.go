package service

import (
	"context"

	"github.com/webkraft/clientcms/customer/dal"
	"github.com/webkraft/clientcms/customer/dal/iface"
	"github.com/webkraft/clientcms/customer/domain"
	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/logger"
	"github.com/webkraft/clientcms/tableview"
)

type CustomerService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	customersDal   iface.Customers
}

func NewCustomerService(log logger.Provider, conn *connection.Connection) *CustomerService {
	return &CustomerService{
		log,
		conn,
		dal.NewCustomersFirestoreWithClient(conn.Firestore),
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	return s.customersDal.Create(ctx, &domain.Customer{
		CustomerName:     req.CustomerName,
		Email:            req.Email,
		Phone:            req.Phone,
		Location:         req.Location,
		ServiceName:      req.ServiceName,
		ServiceStartDate: req.ServiceStartDate,
		ServiceRenewDate: req.ServiceRenewDate,
		Notes:            req.Notes,
	})
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customersDal.Get(ctx, customerID)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, req UpdateCustomerRequest) (*domain.Customer, error) {
	updates := getCustomerUpdates(req)

	return s.customersDal.Update(ctx, req.CustomerID, updates)
}

// ListCustomers loads the whole collection and derives the visible rows in
// memory, so searching and sorting never issue another store read.
func (s *CustomerService) ListCustomers(ctx context.Context, req ListCustomersRequest) ([]*domain.Customer, error) {
	customers, err := s.customersDal.List(ctx)
	if err != nil {
		s.loggerProvider(ctx).Errorf("failed to load customers: %s", err)
		return nil, err
	}

	view := tableview.NewViewState(customers).
		WithQuery(req.Query).
		WithSort(req.SortBy, req.Order)

	return view.Apply(), nil
}
