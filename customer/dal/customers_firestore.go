package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/webkraft/clientcms/customer/domain"
	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/fsdal"
	fsdalIface "github.com/webkraft/clientcms/fsdal/iface"
)

const customersCollection = "customers"

// CustomersFirestore is used to interact with customers stored on Firestore.
type CustomersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   fsdalIface.DocumentsHandler
}

// NewCustomersFirestore returns a new CustomersFirestore instance with given project id.
func NewCustomersFirestore(ctx context.Context, projectID string) (*CustomersFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewCustomersFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewCustomersFirestoreWithClient returns a new CustomersFirestore using given client.
func NewCustomersFirestoreWithClient(fun connection.FirestoreFromContextFun) *CustomersFirestore {
	return &CustomersFirestore{
		firestoreClientFun: fun,
		documentsHandler:   fsdal.DocumentHandler{},
	}
}

func (d *CustomersFirestore) GetRef(ctx context.Context, customerID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(customersCollection).Doc(customerID)
}

// Get returns a single customer's data.
func (d *CustomersFirestore) Get(ctx context.Context, customerID string) (*domain.Customer, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidCustomerID
	}

	docRef := d.GetRef(ctx, customerID)

	docSnap, err := d.documentsHandler.Get(ctx, docRef)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fsdal.ErrNotFound
		}

		return nil, err
	}

	var customer domain.Customer

	if err := docSnap.DataTo(&customer); err != nil {
		return nil, err
	}

	customer.ID = docSnap.ID()

	return &customer, nil
}

// List returns every customer document in load order.
func (d *CustomersFirestore) List(ctx context.Context) ([]*domain.Customer, error) {
	iter := d.firestoreClientFun(ctx).Collection(customersCollection).Documents(ctx)

	docSnaps, err := d.documentsHandler.GetAll(iter)
	if err != nil {
		return nil, err
	}

	customers := make([]*domain.Customer, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		var customer domain.Customer

		if err := docSnap.DataTo(&customer); err != nil {
			return nil, err
		}

		customer.ID = docSnap.ID()

		customers = append(customers, &customer)
	}

	return customers, nil
}

// Create stores a new customer and returns it with its assigned id.
func (d *CustomersFirestore) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil {
		return nil, domain.ErrInvalidCustomer
	}

	ref, err := d.documentsHandler.Add(ctx, d.firestoreClientFun(ctx).Collection(customersCollection), customer)
	if err != nil {
		return nil, err
	}

	return d.Get(ctx, ref.ID)
}

// Update applies the given field updates and returns the updated customer.
func (d *CustomersFirestore) Update(ctx context.Context, customerID string, updates []firestore.Update) (*domain.Customer, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidCustomerID
	}

	updates = append(updates, firestore.Update{
		Path:  "updatedAt",
		Value: time.Now(),
	})

	docRef := d.GetRef(ctx, customerID)

	if _, err := d.documentsHandler.Update(ctx, docRef, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fsdal.ErrNotFound
		}

		return nil, err
	}

	return d.Get(ctx, customerID)
}
