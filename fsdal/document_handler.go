package fsdal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/webkraft/clientcms/fsdal/iface"
)

// DocumentHandler is the live firestore implementation of iface.DocumentsHandler.
type DocumentHandler struct{}

type documentSnapshot struct {
	snap *firestore.DocumentSnapshot
}

func (s documentSnapshot) ID() string {
	return s.snap.Ref.ID
}

func (s documentSnapshot) DataTo(v interface{}) error {
	return s.snap.DataTo(v)
}

func (s documentSnapshot) Data() map[string]interface{} {
	return s.snap.Data()
}

func (s documentSnapshot) Exists() bool {
	return s.snap.Exists()
}

func (s documentSnapshot) Snapshot() *firestore.DocumentSnapshot {
	return s.snap
}

func (h DocumentHandler) Get(ctx context.Context, docRef *firestore.DocumentRef) (iface.DocumentSnapshot, error) {
	snap, err := docRef.Get(ctx)
	if err != nil {
		return nil, err
	}

	return documentSnapshot{snap}, nil
}

func (h DocumentHandler) GetAll(iter *firestore.DocumentIterator) ([]iface.DocumentSnapshot, error) {
	snaps, err := iter.GetAll()
	if err != nil {
		return nil, err
	}

	docSnaps := make([]iface.DocumentSnapshot, len(snaps))
	for i, snap := range snaps {
		docSnaps[i] = documentSnapshot{snap}
	}

	return docSnaps, nil
}

func (h DocumentHandler) Create(ctx context.Context, docRef *firestore.DocumentRef, data interface{}) (*firestore.WriteResult, error) {
	return docRef.Create(ctx, data)
}

func (h DocumentHandler) Set(ctx context.Context, docRef *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (*firestore.WriteResult, error) {
	return docRef.Set(ctx, data, opts...)
}

func (h DocumentHandler) Update(ctx context.Context, docRef *firestore.DocumentRef, updates []firestore.Update) (*firestore.WriteResult, error) {
	return docRef.Update(ctx, updates)
}

func (h DocumentHandler) Delete(ctx context.Context, docRef *firestore.DocumentRef) (*firestore.WriteResult, error) {
	return docRef.Delete(ctx)
}

func (h DocumentHandler) Add(ctx context.Context, collRef *firestore.CollectionRef, data interface{}) (*firestore.DocumentRef, error) {
	ref, _, err := collRef.Add(ctx, data)
	return ref, err
}
