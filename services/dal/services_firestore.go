package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/fsdal"
	fsdalIface "github.com/webkraft/clientcms/fsdal/iface"
	"github.com/webkraft/clientcms/services/domain"
)

const servicesCollection = "services"

// ServicesFirestore is used to interact with subscription services stored on Firestore.
type ServicesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   fsdalIface.DocumentsHandler
}

// NewServicesFirestore returns a new ServicesFirestore instance with given project id.
func NewServicesFirestore(ctx context.Context, projectID string) (*ServicesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewServicesFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewServicesFirestoreWithClient returns a new ServicesFirestore using given client.
func NewServicesFirestoreWithClient(fun connection.FirestoreFromContextFun) *ServicesFirestore {
	return &ServicesFirestore{
		firestoreClientFun: fun,
		documentsHandler:   fsdal.DocumentHandler{},
	}
}

func (d *ServicesFirestore) GetRef(ctx context.Context, serviceID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(servicesCollection).Doc(serviceID)
}

// Get returns a single service's data with absent numeric fields defaulted.
func (d *ServicesFirestore) Get(ctx context.Context, serviceID string) (*domain.Service, error) {
	if serviceID == "" {
		return nil, domain.ErrInvalidServiceID
	}

	docRef := d.GetRef(ctx, serviceID)

	docSnap, err := d.documentsHandler.Get(ctx, docRef)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fsdal.ErrNotFound
		}

		return nil, err
	}

	var service domain.Service

	if err := docSnap.DataTo(&service); err != nil {
		return nil, err
	}

	service.ID = docSnap.ID()
	service.Normalize()

	return &service, nil
}

// List returns every service document in load order, each normalized.
func (d *ServicesFirestore) List(ctx context.Context) ([]*domain.Service, error) {
	iter := d.firestoreClientFun(ctx).Collection(servicesCollection).Documents(ctx)

	docSnaps, err := d.documentsHandler.GetAll(iter)
	if err != nil {
		return nil, err
	}

	services := make([]*domain.Service, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		var service domain.Service

		if err := docSnap.DataTo(&service); err != nil {
			return nil, err
		}

		service.ID = docSnap.ID()
		service.Normalize()

		services = append(services, &service)
	}

	return services, nil
}

// Create stores a new service and returns it with its assigned id.
func (d *ServicesFirestore) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	if service == nil {
		return nil, domain.ErrInvalidService
	}

	ref, err := d.documentsHandler.Add(ctx, d.firestoreClientFun(ctx).Collection(servicesCollection), service)
	if err != nil {
		return nil, err
	}

	return d.Get(ctx, ref.ID)
}

// Update applies the given field updates and returns the updated service.
func (d *ServicesFirestore) Update(ctx context.Context, serviceID string, updates []firestore.Update) (*domain.Service, error) {
	if serviceID == "" {
		return nil, domain.ErrInvalidServiceID
	}

	docRef := d.GetRef(ctx, serviceID)

	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})

	if _, err := d.documentsHandler.Update(ctx, docRef, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fsdal.ErrNotFound
		}

		return nil, err
	}

	return d.Get(ctx, serviceID)
}

// Delete removes the service document. Exactly one store delete is issued.
func (d *ServicesFirestore) Delete(ctx context.Context, serviceID string) error {
	if serviceID == "" {
		return domain.ErrInvalidServiceID
	}

	docRef := d.GetRef(ctx, serviceID)

	if _, err := d.documentsHandler.Delete(ctx, docRef); err != nil {
		if status.Code(err) == codes.NotFound {
			return fsdal.ErrNotFound
		}

		return err
	}

	return nil
}
