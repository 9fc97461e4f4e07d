package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webkraft/clientcms/logger"
	"github.com/webkraft/clientcms/services/dal/mocks"
	"github.com/webkraft/clientcms/services/domain"
	"github.com/webkraft/clientcms/tableview"
)

type subscriptionServiceFields struct {
	loggerProvider logger.Provider
	servicesDal    *mocks.Services
}

func loadedServices() []*domain.Service {
	return []*domain.Service{
		{ID: "1", ServiceName: "mailgun", ProviderCompany: "Mailgun", CustomerName: "beta", Notes: "legacy smtp relay"},
		{ID: "2", ServiceName: "Analytics", ProviderCompany: "Plausible", CustomerName: "Alpha", ProviderURL: "https://plausible.io"},
		{ID: "3", ServiceName: "backup", ProviderCompany: "Backblaze", CustomerName: "Gamma"},
	}
}

func TestSubscriptionService_ListServices(t *testing.T) {
	ctx := context.Background()

	type args struct {
		req ListServicesRequest
	}

	tests := []struct {
		name    string
		args    args
		on      func(*subscriptionServiceFields)
		wantIDs []string
		wantErr bool
	}{
		{
			name: "no query returns load order",
			args: args{req: ListServicesRequest{}},
			on: func(f *subscriptionServiceFields) {
				f.servicesDal.On("List", ctx).Return(loadedServices(), nil)
			},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name: "sort by serviceName ascending is case-insensitive",
			args: args{req: ListServicesRequest{SortBy: "serviceName", Order: tableview.Ascending}},
			on: func(f *subscriptionServiceFields) {
				f.servicesDal.On("List", ctx).Return(loadedServices(), nil)
			},
			wantIDs: []string{"2", "3", "1"},
		},
		{
			name: "query matches the customer snapshot name",
			args: args{req: ListServicesRequest{Query: "gam"}},
			on: func(f *subscriptionServiceFields) {
				f.servicesDal.On("List", ctx).Return(loadedServices(), nil)
			},
			wantIDs: []string{"3"},
		},
		{
			name: "query matches the notes field",
			args: args{req: ListServicesRequest{Query: "smtp"}},
			on: func(f *subscriptionServiceFields) {
				f.servicesDal.On("List", ctx).Return(loadedServices(), nil)
			},
			wantIDs: []string{"1"},
		},
		{
			name: "query matches the provider url field",
			args: args{req: ListServicesRequest{Query: "plausible.io"}},
			on: func(f *subscriptionServiceFields) {
				f.servicesDal.On("List", ctx).Return(loadedServices(), nil)
			},
			wantIDs: []string{"2"},
		},
		{
			name: "load failure is returned",
			args: args{req: ListServicesRequest{}},
			on: func(f *subscriptionServiceFields) {
				f.servicesDal.On("List", ctx).Return(nil, errors.New("load error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := subscriptionServiceFields{
				loggerProvider: logger.FromContext,
				servicesDal:    &mocks.Services{},
			}

			if tt.on != nil {
				tt.on(&fields)
			}

			s := &SubscriptionService{
				loggerProvider: fields.loggerProvider,
				servicesDal:    fields.servicesDal,
			}

			got, err := s.ListServices(ctx, tt.args.req)

			if (err != nil) != tt.wantErr {
				t.Errorf("ListServices() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				return
			}

			gotIDs := make([]string, len(got))
			for i, svc := range got {
				gotIDs[i] = svc.ID
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestSubscriptionService_CreateService(t *testing.T) {
	ctx := context.Background()

	servicesDal := &mocks.Services{}
	s := &SubscriptionService{
		loggerProvider: logger.FromContext,
		servicesDal:    servicesDal,
	}

	req := CreateServiceRequest{
		ServiceName:  "mailgun",
		CustomerID:   "customer-id",
		CustomerName: "Acme",
		Email:        "ops@acme.com",
	}

	servicesDal.On("Create", ctx, &domain.Service{
		ServiceName:  "mailgun",
		CustomerID:   "customer-id",
		CustomerName: "Acme",
		Email:        "ops@acme.com",
	}).Return(&domain.Service{ID: "new-id", ServiceName: "mailgun"}, nil)

	created, err := s.CreateService(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
	servicesDal.AssertExpectations(t)
}

func TestSubscriptionService_UpdateService(t *testing.T) {
	ctx := context.Background()

	servicesDal := &mocks.Services{}
	s := &SubscriptionService{
		loggerProvider: logger.FromContext,
		servicesDal:    servicesDal,
	}

	req := UpdateServiceRequest{
		ServiceID:     "service-id",
		ServiceName:   "mailgun",
		CostPerPeriod: 35,
		CostMonths:    12,
	}

	servicesDal.
		On("Update", ctx, "service-id", getServiceUpdates(req)).
		Return(&domain.Service{ID: "service-id", ServiceName: "mailgun"}, nil).
		Once()

	updated, err := s.UpdateService(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "mailgun", updated.ServiceName)
	servicesDal.AssertNumberOfCalls(t, "Update", 1)
}

func TestSubscriptionService_DeleteService(t *testing.T) {
	ctx := context.Background()

	servicesDal := &mocks.Services{}
	s := &SubscriptionService{
		loggerProvider: logger.FromContext,
		servicesDal:    servicesDal,
	}

	servicesDal.On("Delete", ctx, "service-id").Return(nil).Once()

	err := s.DeleteService(ctx, "service-id")

	assert.NoError(t, err)
	servicesDal.AssertNumberOfCalls(t, "Delete", 1)

	servicesDal.On("Delete", ctx, "missing").Return(errors.New("not found")).Once()

	err = s.DeleteService(ctx, "missing")
	assert.Error(t, err)
}
