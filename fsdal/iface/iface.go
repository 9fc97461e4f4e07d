package iface

import (
	"context"

	"cloud.google.com/go/firestore"
)

//go:generate mockery --name DocumentsHandler --output ../mocks
//go:generate mockery --name DocumentSnapshot --output ../mocks

// DocumentsHandler wraps firestore document operations so that DALs can be
// tested against a mock instead of a live client.
type DocumentsHandler interface {
	Get(ctx context.Context, docRef *firestore.DocumentRef) (DocumentSnapshot, error)
	GetAll(iter *firestore.DocumentIterator) ([]DocumentSnapshot, error)
	Create(ctx context.Context, docRef *firestore.DocumentRef, data interface{}) (*firestore.WriteResult, error)
	Set(ctx context.Context, docRef *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (*firestore.WriteResult, error)
	Update(ctx context.Context, docRef *firestore.DocumentRef, updates []firestore.Update) (*firestore.WriteResult, error)
	Delete(ctx context.Context, docRef *firestore.DocumentRef) (*firestore.WriteResult, error)
	Add(ctx context.Context, collRef *firestore.CollectionRef, data interface{}) (*firestore.DocumentRef, error)
}

// DocumentSnapshot is the read-side counterpart of DocumentsHandler.
type DocumentSnapshot interface {
	ID() string
	DataTo(v interface{}) error
	Data() map[string]interface{}
	Exists() bool
	Snapshot() *firestore.DocumentSnapshot
}
