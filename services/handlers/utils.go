package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/webkraft/clientcms/services/domain"
	"github.com/webkraft/clientcms/services/service"
	"github.com/webkraft/clientcms/slice"
	"github.com/webkraft/clientcms/tableview"
)

// Creation is relaxed: fields may be left empty, but a field that is present
// still has to make sense.
func isValidCreateServiceRequest(req service.CreateServiceRequest) error {
	if req.ServiceName != "" && len(req.ServiceName) < 2 {
		return domain.ErrInvalidServiceName
	}

	if req.CostPerPeriod < 0 {
		return domain.ErrInvalidCostPerPeriod
	}

	if req.CostMonths != 0 && (req.CostMonths < 1 || req.CostMonths > 48) {
		return domain.ErrInvalidCostMonths
	}

	if req.ClientPrice < 0 {
		return domain.ErrInvalidClientPrice
	}

	if req.ClientMonths != 0 && (req.ClientMonths < 1 || req.ClientMonths > 48) {
		return domain.ErrInvalidClientMonths
	}

	if req.TotalPaid < 0 {
		return domain.ErrInvalidTotalPaid
	}

	return nil
}

// Editing is strict: the full field set has to be complete and consistent.
func isValidUpdateServiceRequest(req service.UpdateServiceRequest) error {
	if req.ServiceID == "" {
		return domain.ErrInvalidServiceID
	}

	if len(req.ServiceName) < 2 {
		return domain.ErrInvalidServiceName
	}

	if req.ServiceType == "" {
		return domain.ErrInvalidServiceType
	}

	if req.CustomerID == "" || req.CustomerName == "" {
		return domain.ErrInvalidCustomerSnapshot
	}

	if req.ProviderCompany == "" || req.ProviderURL == "" || req.ProviderUsername == "" || req.ProviderPassword == "" {
		return domain.ErrInvalidProviderDetails
	}

	if req.CostPerPeriod <= 0 {
		return domain.ErrInvalidCostPerPeriod
	}

	if req.CostMonths < 1 || req.CostMonths > 48 {
		return domain.ErrInvalidCostMonths
	}

	if req.ClientPrice <= 0 {
		return domain.ErrInvalidClientPrice
	}

	if req.ClientMonths < 1 || req.ClientMonths > 48 {
		return domain.ErrInvalidClientMonths
	}

	if req.TotalPaid < 0 {
		return domain.ErrInvalidTotalPaid
	}

	return nil
}

func listServicesRequestFromQuery(ctx *gin.Context) (service.ListServicesRequest, error) {
	req := service.ListServicesRequest{
		Query:  ctx.Query("q"),
		SortBy: ctx.Query("sortBy"),
		Order:  tableview.Direction(ctx.Query("order")),
	}

	if req.SortBy != "" && !slice.Contains(domain.SortableColumns, req.SortBy) {
		return service.ListServicesRequest{}, domain.ErrInvalidSortColumn
	}

	return req, nil
}
