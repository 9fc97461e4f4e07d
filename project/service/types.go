package service

import "github.com/webkraft/clientcms/tableview"

type CreateProjectRequest struct {
	ProjectName          string `json:"projectName"`
	Domain               string `json:"domain"`
	HTTPLink             string `json:"httpLink"`
	Port                 string `json:"port"`
	FirestoreProjectName string `json:"firestoreProjectName"`
	FirestoreEmail       string `json:"firestoreEmail" binding:"omitempty,email"`
	FirestoreID          string `json:"firestoreId"`
	ProjectEmail         string `json:"projectEmail" binding:"omitempty,email"`
	DomainRegistrarLink  string `json:"domainRegistrarLink"`
	HostingPanelLink     string `json:"hostingPanelLink"`
	BillingPanelLink     string `json:"billingPanelLink"`
	StartDate            string `json:"startDate"`
	DomainRenewalDate    string `json:"domainRenewalDate"`
	DomainUsername       string `json:"domainUsername"`
	DomainPassword       string `json:"domainPassword"`
	FileLink             string `json:"fileLink"`
	Notes                string `json:"notes"`
}

type UpdateProjectRequest struct {
	ProjectID            string
	ProjectName          string `json:"projectName"`
	Domain               string `json:"domain"`
	HTTPLink             string `json:"httpLink"`
	Port                 string `json:"port"`
	FirestoreProjectName string `json:"firestoreProjectName"`
	FirestoreEmail       string `json:"firestoreEmail" binding:"omitempty,email"`
	FirestoreID          string `json:"firestoreId"`
	ProjectEmail         string `json:"projectEmail" binding:"omitempty,email"`
	DomainRegistrarLink  string `json:"domainRegistrarLink"`
	HostingPanelLink     string `json:"hostingPanelLink"`
	BillingPanelLink     string `json:"billingPanelLink"`
	StartDate            string `json:"startDate"`
	DomainRenewalDate    string `json:"domainRenewalDate"`
	DomainUsername       string `json:"domainUsername"`
	DomainPassword       string `json:"domainPassword"`
	FileLink             string `json:"fileLink"`
	Notes                string `json:"notes"`
}

type ListProjectsRequest struct {
	Query  string
	SortBy string
	Order  tableview.Direction
}
