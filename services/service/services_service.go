package service

import (
	"context"

	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/logger"
	"github.com/webkraft/clientcms/services/dal"
	"github.com/webkraft/clientcms/services/dal/iface"
	"github.com/webkraft/clientcms/services/domain"
	"github.com/webkraft/clientcms/tableview"
)

type SubscriptionService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	servicesDal    iface.Services
}

func NewSubscriptionService(log logger.Provider, conn *connection.Connection) *SubscriptionService {
	return &SubscriptionService{
		log,
		conn,
		dal.NewServicesFirestoreWithClient(conn.Firestore),
	}
}

func (s *SubscriptionService) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	return s.servicesDal.Create(ctx, &domain.Service{
		ServiceName:      req.ServiceName,
		ServiceType:      req.ServiceType,
		Notes:            req.Notes,
		CustomerID:       req.CustomerID,
		CustomerName:     req.CustomerName,
		Email:            req.Email,
		ProviderCompany:  req.ProviderCompany,
		ProviderURL:      req.ProviderURL,
		ProviderUsername: req.ProviderUsername,
		ProviderPassword: req.ProviderPassword,
		ServiceStartDate: req.ServiceStartDate,
		NextRenewDate:    req.NextRenewDate,
		CostPerPeriod:    req.CostPerPeriod,
		CostCurrency:     req.CostCurrency,
		CostMonths:       req.CostMonths,
		ClientPrice:      req.ClientPrice,
		ClientCurrency:   req.ClientCurrency,
		ClientMonths:     req.ClientMonths,
		TotalPaid:        req.TotalPaid,
	})
}

func (s *SubscriptionService) GetService(ctx context.Context, serviceID string) (*domain.Service, error) {
	return s.servicesDal.Get(ctx, serviceID)
}

func (s *SubscriptionService) UpdateService(ctx context.Context, req UpdateServiceRequest) (*domain.Service, error) {
	updates := getServiceUpdates(req)

	return s.servicesDal.Update(ctx, req.ServiceID, updates)
}

// DeleteService issues exactly one store delete. The caller prunes its loaded
// view in memory instead of re-fetching the collection.
func (s *SubscriptionService) DeleteService(ctx context.Context, serviceID string) error {
	return s.servicesDal.Delete(ctx, serviceID)
}

// ListServices loads the whole collection and derives the visible rows in
// memory, so searching and sorting never issue another store read.
func (s *SubscriptionService) ListServices(ctx context.Context, req ListServicesRequest) ([]*domain.Service, error) {
	services, err := s.servicesDal.List(ctx)
	if err != nil {
		s.loggerProvider(ctx).Errorf("failed to load services: %s", err)
		return nil, err
	}

	view := tableview.NewViewState(services).
		WithQuery(req.Query).
		WithSort(req.SortBy, req.Order)

	return view.Apply(), nil
}
