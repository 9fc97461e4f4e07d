package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/zeebo/assert"

	"github.com/webkraft/clientcms/framework/web"
	"github.com/webkraft/clientcms/fsdal"
	"github.com/webkraft/clientcms/logger"
	"github.com/webkraft/clientcms/services/domain"
	"github.com/webkraft/clientcms/services/service"
	"github.com/webkraft/clientcms/services/service/mocks"
)

type servicesFields struct {
	loggerProvider logger.Provider
	service        *mocks.ServicesIface
}

func GetServicesContext() *gin.Context {
	request := httptest.NewRequest(http.MethodPost, "http://clientcms.test/services", nil)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx
}

func TestServices_CreateService(t *testing.T) {
	ctx := GetServicesContext()

	type args struct {
		ctx *gin.Context
	}

	validRequest, err := json.Marshal(map[string]interface{}{
		"serviceName":  "mailgun",
		"customerId":   "customer-id",
		"customerName": "Acme",
		"email":        "ops@acme.com",
	})
	if err != nil {
		t.Fatal(err)
	}

	shortNameRequest, err := json.Marshal(map[string]interface{}{
		"serviceName": "m",
	})
	if err != nil {
		t.Fatal(err)
	}

	badMonthsRequest, err := json.Marshal(map[string]interface{}{
		"serviceName": "mailgun",
		"costMonths":  60,
	})
	if err != nil {
		t.Fatal(err)
	}

	invalidRequest, err := json.Marshal([]map[string]interface{}{})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		args         args
		fields       servicesFields
		on           func(*servicesFields)
		wantErr      bool
		expectedErr  error
		expectedCode int
		requestBody  io.ReadCloser
	}{
		{
			name: "Request with valid body",
			args: args{
				ctx: ctx,
			},
			requestBody: io.NopCloser(bytes.NewReader(validRequest)),
			wantErr:     false,
			on: func(f *servicesFields) {
				f.service.On("CreateService", ctx, service.CreateServiceRequest{
					ServiceName:  "mailgun",
					CustomerID:   "customer-id",
					CustomerName: "Acme",
					Email:        "ops@acme.com",
				}).Return(&domain.Service{}, nil)
			},
		},
		{
			name: "Request with invalid body",
			args: args{
				ctx: ctx,
			},
			requestBody: io.NopCloser(bytes.NewReader(invalidRequest)),
			wantErr:     true,
		},
		{
			name: "Request with too short service name",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(shortNameRequest)),
			wantErr:      true,
			expectedErr:  domain.ErrInvalidServiceName,
			expectedCode: 400,
		},
		{
			name: "Request with out of range cost months",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(badMonthsRequest)),
			wantErr:      true,
			expectedErr:  domain.ErrInvalidCostMonths,
			expectedCode: 400,
		},
		{
			name: "Error creating service - internal server error",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(validRequest)),
			wantErr:      true,
			expectedErr:  errors.New("internal server error"),
			expectedCode: 500,
			on: func(f *servicesFields) {
				f.service.On("CreateService", ctx, service.CreateServiceRequest{
					ServiceName:  "mailgun",
					CustomerID:   "customer-id",
					CustomerName: "Acme",
					Email:        "ops@acme.com",
				}).Return(nil, errors.New("internal server error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = servicesFields{
				logger.FromContext,
				&mocks.ServicesIface{},
			}
			h := &Services{
				loggerProvider: tt.fields.loggerProvider,
				service:        tt.fields.service,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Request.Body = tt.requestBody

			respond := h.CreateService(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("CreateService() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}

func TestServices_UpdateService(t *testing.T) {
	ctx := GetServicesContext()

	type args struct {
		ctx *gin.Context
	}

	serviceID := "service-id"

	fullService := map[string]interface{}{
		"serviceName":      "mailgun",
		"serviceType":      "email",
		"customerId":       "customer-id",
		"customerName":     "Acme",
		"email":            "ops@acme.com",
		"providerCompany":  "Mailgun",
		"providerUrl":      "https://mailgun.com",
		"providerUsername": "acme-admin",
		"providerPassword": "secret",
		"serviceStartDate": "2024-01-01",
		"nextRenewDate":    "2025-01-01",
		"costPerPeriod":    35,
		"costCurrency":     "EUR",
		"costMonths":       12,
		"clientPrice":      50,
		"clientCurrency":   "EUR",
		"clientMonths":     12,
		"totalPaid":        100,
	}

	validRequest, err := json.Marshal(fullService)
	if err != nil {
		t.Fatal(err)
	}

	missingProvider := map[string]interface{}{}
	for k, v := range fullService {
		missingProvider[k] = v
	}
	missingProvider["providerUrl"] = ""

	missingProviderRequest, err := json.Marshal(missingProvider)
	if err != nil {
		t.Fatal(err)
	}

	expectedReq := service.UpdateServiceRequest{
		ServiceID:        serviceID,
		ServiceName:      "mailgun",
		ServiceType:      "email",
		CustomerID:       "customer-id",
		CustomerName:     "Acme",
		Email:            "ops@acme.com",
		ProviderCompany:  "Mailgun",
		ProviderURL:      "https://mailgun.com",
		ProviderUsername: "acme-admin",
		ProviderPassword: "secret",
		ServiceStartDate: "2024-01-01",
		NextRenewDate:    "2025-01-01",
		CostPerPeriod:    35,
		CostCurrency:     "EUR",
		CostMonths:       12,
		ClientPrice:      50,
		ClientCurrency:   "EUR",
		ClientMonths:     12,
		TotalPaid:        100,
	}

	tests := []struct {
		name         string
		args         args
		fields       servicesFields
		on           func(*servicesFields)
		wantErr      bool
		expectedErr  error
		expectedCode int
		requestBody  io.ReadCloser
		ctxParams    []gin.Param
	}{
		{
			name: "Success - full valid edit",
			args: args{
				ctx: ctx,
			},
			requestBody: io.NopCloser(bytes.NewReader(validRequest)),
			wantErr:     false,
			on: func(f *servicesFields) {
				f.service.On("UpdateService", ctx, expectedReq).Return(&domain.Service{ID: serviceID}, nil)
			},
			ctxParams: []gin.Param{
				{Key: "serviceID", Value: serviceID},
			},
		},
		{
			name: "Error - incomplete provider details",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(missingProviderRequest)),
			wantErr:      true,
			expectedErr:  domain.ErrInvalidProviderDetails,
			expectedCode: http.StatusBadRequest,
			ctxParams: []gin.Param{
				{Key: "serviceID", Value: serviceID},
			},
		},
		{
			name: "Error - service not found",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(validRequest)),
			wantErr:      true,
			expectedErr:  fsdal.ErrNotFound,
			expectedCode: http.StatusNotFound,
			on: func(f *servicesFields) {
				f.service.On("UpdateService", ctx, expectedReq).Return(nil, fsdal.ErrNotFound)
			},
			ctxParams: []gin.Param{
				{Key: "serviceID", Value: serviceID},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = servicesFields{
				logger.FromContext,
				&mocks.ServicesIface{},
			}
			h := &Services{
				loggerProvider: tt.fields.loggerProvider,
				service:        tt.fields.service,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Request.Body = tt.requestBody
			ctx.Params = tt.ctxParams

			respond := h.UpdateService(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("UpdateService() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}

func TestServices_DeleteService(t *testing.T) {
	ctx := GetServicesContext()

	type args struct {
		ctx *gin.Context
	}

	serviceID := "service-id"

	tests := []struct {
		name         string
		args         args
		fields       servicesFields
		on           func(*servicesFields)
		wantErr      bool
		expectedErr  error
		expectedCode int
		ctxParams    []gin.Param
	}{
		{
			name: "Success - valid request",
			args: args{
				ctx: ctx,
			},
			wantErr: false,
			on: func(f *servicesFields) {
				f.service.On("DeleteService", ctx, serviceID).Return(nil)
			},
			ctxParams: []gin.Param{
				{Key: "serviceID", Value: serviceID},
			},
		},
		{
			name: "Error - empty service ID",
			args: args{
				ctx: ctx,
			},
			wantErr:      true,
			expectedErr:  domain.ErrInvalidServiceID,
			expectedCode: http.StatusBadRequest,
			ctxParams: []gin.Param{
				{Key: "serviceID", Value: ""},
			},
		},
		{
			name: "Error - service not found",
			args: args{
				ctx: ctx,
			},
			wantErr:      true,
			expectedErr:  fsdal.ErrNotFound,
			expectedCode: http.StatusNotFound,
			on: func(f *servicesFields) {
				f.service.On("DeleteService", ctx, serviceID).Return(fsdal.ErrNotFound)
			},
			ctxParams: []gin.Param{
				{Key: "serviceID", Value: serviceID},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = servicesFields{
				logger.FromContext,
				&mocks.ServicesIface{},
			}
			h := &Services{
				loggerProvider: tt.fields.loggerProvider,
				service:        tt.fields.service,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Params = tt.ctxParams

			respond := h.DeleteService(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("DeleteService() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}

			if !tt.wantErr {
				tt.fields.service.AssertNumberOfCalls(t, "DeleteService", 1)
			}
		})
	}
}
