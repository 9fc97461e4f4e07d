//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/webkraft/clientcms/services/domain"
)

type Services interface {
	GetRef(ctx context.Context, serviceID string) *firestore.DocumentRef
	Get(ctx context.Context, serviceID string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, serviceID string, updates []firestore.Update) (*domain.Service, error)
	Delete(ctx context.Context, serviceID string) error
}
