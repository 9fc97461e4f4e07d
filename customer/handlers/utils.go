package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/webkraft/clientcms/customer/domain"
	"github.com/webkraft/clientcms/customer/service"
	"github.com/webkraft/clientcms/slice"
	"github.com/webkraft/clientcms/tableview"
)

func isValidCreateCustomerRequest(req service.CreateCustomerRequest) error {
	if len(req.CustomerName) < 2 {
		return domain.ErrInvalidCustomerName
	}

	if len(req.ServiceName) < 2 {
		return domain.ErrInvalidServiceName
	}

	return nil
}

func isValidUpdateCustomerRequest(req service.UpdateCustomerRequest) error {
	if req.CustomerID == "" {
		return domain.ErrInvalidCustomerID
	}

	if len(req.CustomerName) < 2 {
		return domain.ErrInvalidCustomerName
	}

	if len(req.ServiceName) < 2 {
		return domain.ErrInvalidServiceName
	}

	return nil
}

func listCustomersRequestFromQuery(ctx *gin.Context) (service.ListCustomersRequest, error) {
	req := service.ListCustomersRequest{
		Query:  ctx.Query("q"),
		SortBy: ctx.Query("sortBy"),
		Order:  tableview.Direction(ctx.Query("order")),
	}

	if req.SortBy != "" && !slice.Contains(domain.SortableColumns, req.SortBy) {
		return service.ListCustomersRequest{}, domain.ErrInvalidSortColumn
	}

	return req, nil
}
