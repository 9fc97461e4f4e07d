package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/fsdal"
	fsdalIface "github.com/webkraft/clientcms/fsdal/iface"
	"github.com/webkraft/clientcms/marketing/domain"
)

const marketingMessagesCollection = "marketingMessages"

// MessagesFirestore is used to interact with logged marketing messages on Firestore.
type MessagesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   fsdalIface.DocumentsHandler
}

// NewMessagesFirestore returns a new MessagesFirestore instance with given project id.
func NewMessagesFirestore(ctx context.Context, projectID string) (*MessagesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewMessagesFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewMessagesFirestoreWithClient returns a new MessagesFirestore using given client.
func NewMessagesFirestoreWithClient(fun connection.FirestoreFromContextFun) *MessagesFirestore {
	return &MessagesFirestore{
		firestoreClientFun: fun,
		documentsHandler:   fsdal.DocumentHandler{},
	}
}

// Create logs one marketing message. Timestamps are assigned by the store.
func (d *MessagesFirestore) Create(ctx context.Context, message *domain.MarketingMessage) (*domain.MarketingMessage, error) {
	if message == nil || message.Message == "" {
		return nil, domain.ErrInvalidMessage
	}

	ref, err := d.documentsHandler.Add(ctx, d.firestoreClientFun(ctx).Collection(marketingMessagesCollection), message)
	if err != nil {
		return nil, err
	}

	message.ID = ref.ID

	return message, nil
}
