package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/fsdal"
	fsdalIface "github.com/webkraft/clientcms/fsdal/iface"
	"github.com/webkraft/clientcms/project/domain"
)

const projectsCollection = "projects"

// ProjectsFirestore is used to interact with projects stored on Firestore.
type ProjectsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   fsdalIface.DocumentsHandler
}

// NewProjectsFirestore returns a new ProjectsFirestore instance with given project id.
func NewProjectsFirestore(ctx context.Context, projectID string) (*ProjectsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewProjectsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewProjectsFirestoreWithClient returns a new ProjectsFirestore using given client.
func NewProjectsFirestoreWithClient(fun connection.FirestoreFromContextFun) *ProjectsFirestore {
	return &ProjectsFirestore{
		firestoreClientFun: fun,
		documentsHandler:   fsdal.DocumentHandler{},
	}
}

func (d *ProjectsFirestore) GetRef(ctx context.Context, projectID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(projectsCollection).Doc(projectID)
}

// Get returns a single project's data.
func (d *ProjectsFirestore) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	if projectID == "" {
		return nil, domain.ErrInvalidProjectID
	}

	docRef := d.GetRef(ctx, projectID)

	docSnap, err := d.documentsHandler.Get(ctx, docRef)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fsdal.ErrNotFound
		}

		return nil, err
	}

	var project domain.Project

	if err := docSnap.DataTo(&project); err != nil {
		return nil, err
	}

	project.ID = docSnap.ID()

	return &project, nil
}

// List returns every project document in load order.
func (d *ProjectsFirestore) List(ctx context.Context) ([]*domain.Project, error) {
	iter := d.firestoreClientFun(ctx).Collection(projectsCollection).Documents(ctx)

	docSnaps, err := d.documentsHandler.GetAll(iter)
	if err != nil {
		return nil, err
	}

	projects := make([]*domain.Project, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		var project domain.Project

		if err := docSnap.DataTo(&project); err != nil {
			return nil, err
		}

		project.ID = docSnap.ID()

		projects = append(projects, &project)
	}

	return projects, nil
}

// Create stores a new project and returns it with its assigned id.
func (d *ProjectsFirestore) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project == nil {
		return nil, domain.ErrInvalidProject
	}

	ref, err := d.documentsHandler.Add(ctx, d.firestoreClientFun(ctx).Collection(projectsCollection), project)
	if err != nil {
		return nil, err
	}

	return d.Get(ctx, ref.ID)
}

// Update applies the given field updates and returns the updated project.
func (d *ProjectsFirestore) Update(ctx context.Context, projectID string, updates []firestore.Update) (*domain.Project, error) {
	if projectID == "" {
		return nil, domain.ErrInvalidProjectID
	}

	docRef := d.GetRef(ctx, projectID)

	if _, err := d.documentsHandler.Update(ctx, docRef, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fsdal.ErrNotFound
		}

		return nil, err
	}

	return d.Get(ctx, projectID)
}

// Delete removes the project document. Exactly one store delete is issued.
func (d *ProjectsFirestore) Delete(ctx context.Context, projectID string) error {
	if projectID == "" {
		return domain.ErrInvalidProjectID
	}

	docRef := d.GetRef(ctx, projectID)

	if _, err := d.documentsHandler.Delete(ctx, docRef); err != nil {
		if status.Code(err) == codes.NotFound {
			return fsdal.ErrNotFound
		}

		return err
	}

	return nil
}
