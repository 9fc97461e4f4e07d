package service

import "github.com/webkraft/clientcms/tableview"

type CreateCustomerRequest struct {
	CustomerName     string `json:"customerName"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone"`
	Location         string `json:"location"`
	ServiceName      string `json:"serviceName"`
	ServiceStartDate string `json:"serviceStartDate"`
	ServiceRenewDate string `json:"serviceRenewDate"`
	Notes            string `json:"notes"`
}

type UpdateCustomerRequest struct {
	CustomerID       string
	CustomerName     string `json:"customerName"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone"`
	Location         string `json:"location"`
	ServiceName      string `json:"serviceName"`
	ServiceStartDate string `json:"serviceStartDate"`
	ServiceRenewDate string `json:"serviceRenewDate"`
	Notes            string `json:"notes"`
}

type ListCustomersRequest struct {
	Query  string
	SortBy string
	Order  tableview.Direction
}
