//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/webkraft/clientcms/services/domain"
	"github.com/webkraft/clientcms/services/service"
)

type ServicesIface interface {
	CreateService(ctx context.Context, req service.CreateServiceRequest) (*domain.Service, error)
	GetService(ctx context.Context, serviceID string) (*domain.Service, error)
	UpdateService(ctx context.Context, req service.UpdateServiceRequest) (*domain.Service, error)
	DeleteService(ctx context.Context, serviceID string) error
	ListServices(ctx context.Context, req service.ListServicesRequest) ([]*domain.Service, error)
}
