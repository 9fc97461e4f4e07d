//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/webkraft/clientcms/project/domain"
	"github.com/webkraft/clientcms/project/service"
)

type ProjectsIface interface {
	CreateProject(ctx context.Context, req service.CreateProjectRequest) (*domain.Project, error)
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)
	UpdateProject(ctx context.Context, req service.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	ListProjects(ctx context.Context, req service.ListProjectsRequest) ([]*domain.Project, error)
}
