package service

import (
	"context"

	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/logger"
	"github.com/webkraft/clientcms/project/dal"
	"github.com/webkraft/clientcms/project/dal/iface"
	"github.com/webkraft/clientcms/project/domain"
	"github.com/webkraft/clientcms/tableview"
)

type ProjectService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	projectsDal    iface.Projects
}

func NewProjectService(log logger.Provider, conn *connection.Connection) *ProjectService {
	return &ProjectService{
		log,
		conn,
		dal.NewProjectsFirestoreWithClient(conn.Firestore),
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, req CreateProjectRequest) (*domain.Project, error) {
	return s.projectsDal.Create(ctx, &domain.Project{
		ProjectName:          req.ProjectName,
		Domain:               req.Domain,
		HTTPLink:             req.HTTPLink,
		Port:                 req.Port,
		FirestoreProjectName: req.FirestoreProjectName,
		FirestoreEmail:       req.FirestoreEmail,
		FirestoreID:          req.FirestoreID,
		ProjectEmail:         req.ProjectEmail,
		DomainRegistrarLink:  req.DomainRegistrarLink,
		HostingPanelLink:     req.HostingPanelLink,
		BillingPanelLink:     req.BillingPanelLink,
		StartDate:            req.StartDate,
		DomainRenewalDate:    req.DomainRenewalDate,
		DomainUsername:       req.DomainUsername,
		DomainPassword:       req.DomainPassword,
		FileLink:             req.FileLink,
		Notes:                req.Notes,
	})
}

func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectsDal.Get(ctx, projectID)
}

func (s *ProjectService) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*domain.Project, error) {
	updates := getProjectUpdates(req)

	return s.projectsDal.Update(ctx, req.ProjectID, updates)
}

// DeleteProject issues exactly one store delete. The caller prunes its loaded
// view in memory instead of re-fetching the collection.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	return s.projectsDal.Delete(ctx, projectID)
}

// ListProjects loads the whole collection and derives the visible rows in
// memory, so searching and sorting never issue another store read.
func (s *ProjectService) ListProjects(ctx context.Context, req ListProjectsRequest) ([]*domain.Project, error) {
	projects, err := s.projectsDal.List(ctx)
	if err != nil {
		s.loggerProvider(ctx).Errorf("failed to load projects: %s", err)
		return nil, err
	}

	view := tableview.NewViewState(projects).
		WithQuery(req.Query).
		WithSort(req.SortBy, req.Order)

	return view.Apply(), nil
}
