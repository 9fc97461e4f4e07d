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

	"github.com/webkraft/clientcms/customer/domain"
	"github.com/webkraft/clientcms/customer/service"
	"github.com/webkraft/clientcms/customer/service/mocks"
	"github.com/webkraft/clientcms/framework/web"
	"github.com/webkraft/clientcms/fsdal"
	"github.com/webkraft/clientcms/logger"
	"github.com/webkraft/clientcms/tableview"
)

type customersFields struct {
	loggerProvider logger.Provider
	service        *mocks.CustomersIface
}

func GetCustomersContext() *gin.Context {
	request := httptest.NewRequest(http.MethodPost, "http://clientcms.test/customers", nil)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx
}

func TestCustomers_CreateCustomer(t *testing.T) {
	ctx := GetCustomersContext()

	type args struct {
		ctx *gin.Context
	}

	validRequest, err := json.Marshal(map[string]interface{}{
		"customerName": "Acme",
		"email":        "ops@acme.com",
		"serviceName":  "hosting",
	})
	if err != nil {
		t.Fatal(err)
	}

	shortNameRequest, err := json.Marshal(map[string]interface{}{
		"customerName": "A",
		"serviceName":  "hosting",
	})
	if err != nil {
		t.Fatal(err)
	}

	shortServiceNameRequest, err := json.Marshal(map[string]interface{}{
		"customerName": "Acme",
		"serviceName":  "h",
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
		fields       customersFields
		on           func(*customersFields)
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
			on: func(f *customersFields) {
				f.service.On("CreateCustomer", ctx, service.CreateCustomerRequest{
					CustomerName: "Acme",
					Email:        "ops@acme.com",
					ServiceName:  "hosting",
				}).Return(&domain.Customer{}, nil)
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
			name: "Request with too short customer name",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(shortNameRequest)),
			wantErr:      true,
			expectedErr:  domain.ErrInvalidCustomerName,
			expectedCode: 400,
		},
		{
			name: "Request with too short service name",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(shortServiceNameRequest)),
			wantErr:      true,
			expectedErr:  domain.ErrInvalidServiceName,
			expectedCode: 400,
		},
		{
			name: "Error creating customer - internal server error",
			args: args{
				ctx: ctx,
			},
			requestBody:  io.NopCloser(bytes.NewReader(validRequest)),
			wantErr:      true,
			expectedErr:  errors.New("internal server error"),
			expectedCode: 500,
			on: func(f *customersFields) {
				f.service.On("CreateCustomer", ctx, service.CreateCustomerRequest{
					CustomerName: "Acme",
					Email:        "ops@acme.com",
					ServiceName:  "hosting",
				}).Return(nil, errors.New("internal server error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = customersFields{
				logger.FromContext,
				&mocks.CustomersIface{},
			}
			h := &Customers{
				loggerProvider: tt.fields.loggerProvider,
				service:        tt.fields.service,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Request.Body = tt.requestBody

			respond := h.CreateCustomer(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("CreateCustomer() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}

func TestCustomers_GetCustomer(t *testing.T) {
	ctx := GetCustomersContext()

	type args struct {
		ctx *gin.Context
	}

	customerID := "customer-id"

	tests := []struct {
		name         string
		args         args
		fields       customersFields
		on           func(*customersFields)
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
			on: func(f *customersFields) {
				f.service.On("GetCustomer", ctx, customerID).Return(&domain.Customer{ID: customerID}, nil)
			},
			ctxParams: []gin.Param{
				{Key: "customerID", Value: customerID},
			},
		},
		{
			name: "Error - empty customer ID",
			args: args{
				ctx: ctx,
			},
			wantErr:      true,
			expectedErr:  domain.ErrInvalidCustomerID,
			expectedCode: http.StatusBadRequest,
			ctxParams: []gin.Param{
				{Key: "customerID", Value: ""},
			},
		},
		{
			name: "Error - customer not found",
			args: args{
				ctx: ctx,
			},
			wantErr:      true,
			expectedErr:  fsdal.ErrNotFound,
			expectedCode: http.StatusNotFound,
			on: func(f *customersFields) {
				f.service.On("GetCustomer", ctx, customerID).Return(nil, fsdal.ErrNotFound)
			},
			ctxParams: []gin.Param{
				{Key: "customerID", Value: customerID},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = customersFields{
				logger.FromContext,
				&mocks.CustomersIface{},
			}
			h := &Customers{
				loggerProvider: tt.fields.loggerProvider,
				service:        tt.fields.service,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			ctx.Params = tt.ctxParams

			respond := h.GetCustomer(tt.args.ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("GetCustomer() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}

func TestCustomers_ListCustomers(t *testing.T) {
	type args struct {
		ctx *gin.Context
	}

	tests := []struct {
		name         string
		args         args
		fields       customersFields
		on           func(*customersFields, *gin.Context)
		wantErr      bool
		expectedErr  error
		expectedCode int
		rawQuery     string
	}{
		{
			name:     "List with search and sort params",
			rawQuery: "q=alp&sortBy=customerName&order=desc",
			wantErr:  false,
			on: func(f *customersFields, ctx *gin.Context) {
				f.service.On("ListCustomers", ctx, service.ListCustomersRequest{
					Query:  "alp",
					SortBy: "customerName",
					Order:  tableview.Descending,
				}).Return([]*domain.Customer{}, nil)
			},
		},
		{
			name:         "List with unknown sort column",
			rawQuery:     "sortBy=shoeSize",
			wantErr:      true,
			expectedErr:  domain.ErrInvalidSortColumn,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - load failure",
			wantErr:      true,
			expectedErr:  errors.New("load error"),
			expectedCode: http.StatusInternalServerError,
			on: func(f *customersFields, ctx *gin.Context) {
				f.service.On("ListCustomers", ctx, service.ListCustomersRequest{}).
					Return(nil, errors.New("load error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := GetCustomersContext()
			ctx.Request.URL.RawQuery = tt.rawQuery

			tt.fields = customersFields{
				logger.FromContext,
				&mocks.CustomersIface{},
			}
			h := &Customers{
				loggerProvider: tt.fields.loggerProvider,
				service:        tt.fields.service,
			}

			if tt.on != nil {
				tt.on(&tt.fields, ctx)
			}

			respond := h.ListCustomers(ctx)

			if (respond != nil) != tt.wantErr {
				t.Errorf("ListCustomers() error = %v, wantErr %v", respond, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}
		})
	}
}
