package service

import "github.com/webkraft/clientcms/tableview"

// CreateServiceRequest accepts a partially filled service. Intake is relaxed
// so a half-known subscription can be recorded and completed later.
type CreateServiceRequest struct {
	ServiceName string `json:"serviceName"`
	ServiceType string `json:"serviceType"`
	Notes       string `json:"notes"`

	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email" binding:"omitempty,email"`

	ProviderCompany  string `json:"providerCompany"`
	ProviderURL      string `json:"providerUrl" binding:"omitempty,url"`
	ProviderUsername string `json:"providerUsername"`
	ProviderPassword string `json:"providerPassword"`

	ServiceStartDate string `json:"serviceStartDate"`
	NextRenewDate    string `json:"nextRenewDate"`

	CostPerPeriod float64 `json:"costPerPeriod"`
	CostCurrency  string  `json:"costCurrency"`
	CostMonths    int64   `json:"costMonths"`

	ClientPrice    float64 `json:"clientPrice"`
	ClientCurrency string  `json:"clientCurrency"`
	ClientMonths   int64   `json:"clientMonths"`

	TotalPaid float64 `json:"totalPaid"`
}

// UpdateServiceRequest carries the full edited field set. Editing enforces
// the strict rule set, so every field is expected to be complete.
type UpdateServiceRequest struct {
	ServiceID   string
	ServiceName string `json:"serviceName"`
	ServiceType string `json:"serviceType"`
	Notes       string `json:"notes"`

	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email" binding:"omitempty,email"`

	ProviderCompany  string `json:"providerCompany"`
	ProviderURL      string `json:"providerUrl" binding:"omitempty,url"`
	ProviderUsername string `json:"providerUsername"`
	ProviderPassword string `json:"providerPassword"`

	ServiceStartDate string `json:"serviceStartDate"`
	NextRenewDate    string `json:"nextRenewDate"`

	CostPerPeriod float64 `json:"costPerPeriod"`
	CostCurrency  string  `json:"costCurrency"`
	CostMonths    int64   `json:"costMonths"`

	ClientPrice    float64 `json:"clientPrice"`
	ClientCurrency string  `json:"clientCurrency"`
	ClientMonths   int64   `json:"clientMonths"`

	TotalPaid float64 `json:"totalPaid"`
}

type ListServicesRequest struct {
	Query  string
	SortBy string
	Order  tableview.Direction
}
