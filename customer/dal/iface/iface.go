//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/webkraft/clientcms/customer/domain"
)

type Customers interface {
	GetRef(ctx context.Context, customerID string) *firestore.DocumentRef
	Get(ctx context.Context, customerID string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, customerID string, updates []firestore.Update) (*domain.Customer, error)
}
