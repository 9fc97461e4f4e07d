//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/webkraft/clientcms/project/domain"
)

type Projects interface {
	GetRef(ctx context.Context, projectID string) *firestore.DocumentRef
	Get(ctx context.Context, projectID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, projectID string, updates []firestore.Update) (*domain.Project, error)
	Delete(ctx context.Context, projectID string) error
}
