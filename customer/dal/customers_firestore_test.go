package dal

import (
	"context"
	"fmt"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/webkraft/clientcms/common"
	"github.com/webkraft/clientcms/customer/domain"
	"github.com/webkraft/clientcms/fsdal"
	fsdalIface "github.com/webkraft/clientcms/fsdal/iface"
	"github.com/webkraft/clientcms/fsdal/mocks"
)

func setupCustomers() (*CustomersFirestore, *mocks.DocumentsHandler) {
	fs, err := firestore.NewClient(context.Background(),
		common.TestProjectID,
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		panic(err)
	}

	dh := &mocks.DocumentsHandler{}

	return &CustomersFirestore{
		firestoreClientFun: func(ctx context.Context) *firestore.Client {
			return fs
		},
		documentsHandler: dh,
	}, dh
}

func TestNewCustomersFirestore(t *testing.T) {
	_, err := NewCustomersFirestore(context.Background(), common.TestProjectID)
	assert.NoError(t, err)

	d := NewCustomersFirestoreWithClient(nil)
	assert.NotNil(t, d)
}

func TestCustomersFirestore_Get(t *testing.T) {
	ctx := context.Background()
	d, dh := setupCustomers()

	dh.
		On("Get", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef")).
		Return(func() fsdalIface.DocumentSnapshot {
			snap := &mocks.DocumentSnapshot{}
			snap.On("DataTo", mock.Anything).Return(nil)
			snap.On("ID").Return("testCustomerId")
			return snap
		}(), nil).
		Once()

	c, err := d.Get(ctx, "testCustomerId")

	assert.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, "testCustomerId", c.ID)

	dh.
		On("Get", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef")).
		Return(func() fsdalIface.DocumentSnapshot {
			snap := &mocks.DocumentSnapshot{}
			snap.On("DataTo", mock.Anything).Return(fmt.Errorf("fail"))
			return snap
		}(), nil).
		Once()

	c, err = d.Get(ctx, "testCustomerId")
	assert.Nil(t, c)
	assert.Error(t, err)

	dh.
		On("Get", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef")).
		Return(nil, fmt.Errorf("fail")).
		Once()

	c, err = d.Get(ctx, "testCustomerId")
	assert.Nil(t, c)
	assert.Error(t, err)

	dh.
		On("Get", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef")).
		Return(nil, status.Error(codes.NotFound, "not found")).
		Once()

	c, err = d.Get(ctx, "testCustomerId")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, fsdal.ErrNotFound)

	c, err = d.Get(ctx, "")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, domain.ErrInvalidCustomerID)
}

func TestCustomersFirestore_List(t *testing.T) {
	ctx := context.Background()
	d, dh := setupCustomers()

	dh.
		On("GetAll", mock.Anything).
		Return(func() []fsdalIface.DocumentSnapshot {
			snap := &mocks.DocumentSnapshot{}
			snap.On("DataTo", mock.Anything).Return(nil)
			snap.On("ID").Return("customer1")
			return []fsdalIface.DocumentSnapshot{snap}
		}(), nil).
		Once()

	customers, err := d.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, customers, 1)
	assert.Equal(t, "customer1", customers[0].ID)

	dh.
		On("GetAll", mock.Anything).
		Return(nil, fmt.Errorf("fail")).
		Once()

	customers, err = d.List(ctx)
	assert.Nil(t, customers)
	assert.Error(t, err)
}

func TestCustomersFirestore_Update(t *testing.T) {
	ctx := context.Background()
	d, dh := setupCustomers()

	dh.
		On("Update", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef"), mock.AnythingOfType("[]firestore.Update")).
		Return(nil, nil).
		Once()
	dh.
		On("Get", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef")).
		Return(func() fsdalIface.DocumentSnapshot {
			snap := &mocks.DocumentSnapshot{}
			snap.On("DataTo", mock.Anything).Return(nil)
			snap.On("ID").Return("testCustomerId")
			return snap
		}(), nil).
		Once()

	c, err := d.Update(ctx, "testCustomerId", []firestore.Update{{Path: "customerName", Value: "Acme"}})

	assert.NoError(t, err)
	assert.NotNil(t, c)

	dh.
		On("Update", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef"), mock.AnythingOfType("[]firestore.Update")).
		Return(nil, status.Error(codes.NotFound, "not found")).
		Once()

	c, err = d.Update(ctx, "testCustomerId", nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, fsdal.ErrNotFound)

	c, err = d.Update(ctx, "", nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, domain.ErrInvalidCustomerID)
}
