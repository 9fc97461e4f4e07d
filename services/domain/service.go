package domain

import (
	"strconv"
	"time"
)

// Service is a subscription service record in the services collection. The
// customer block is a snapshot taken when the service is created and is never
// synced back to the customers collection.
type Service struct {
	ServiceName string `firestore:"serviceName" json:"serviceName"`
	ServiceType string `firestore:"serviceType" json:"serviceType"`
	Notes       string `firestore:"notes" json:"notes"`

	CustomerID   string `firestore:"customerId" json:"customerId"`
	CustomerName string `firestore:"customerName" json:"customerName"`
	Email        string `firestore:"email" json:"email"`

	ProviderCompany  string `firestore:"providerCompany" json:"providerCompany"`
	ProviderURL      string `firestore:"providerUrl" json:"providerUrl"`
	ProviderUsername string `firestore:"providerUsername" json:"providerUsername"`
	ProviderPassword string `firestore:"providerPassword" json:"providerPassword"`

	ServiceStartDate string `firestore:"serviceStartDate" json:"serviceStartDate"`
	NextRenewDate    string `firestore:"nextRenewDate" json:"nextRenewDate"`

	CostPerPeriod float64 `firestore:"costPerPeriod" json:"costPerPeriod"`
	CostCurrency  string  `firestore:"costCurrency" json:"costCurrency"`
	CostMonths    int64   `firestore:"costMonths" json:"costMonths"`

	ClientPrice    float64 `firestore:"clientPrice" json:"clientPrice"`
	ClientCurrency string  `firestore:"clientCurrency" json:"clientCurrency"`
	ClientMonths   int64   `firestore:"clientMonths" json:"clientMonths"`

	TotalPaid float64 `firestore:"totalPaid" json:"totalPaid"`

	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`

	ID string `firestore:"-" json:"id"`
}

// Normalize fills the defaults that heterogeneous documents may miss. Prices
// already read back as zero; a billing period of zero months is meaningless,
// so absent months default to one.
func (s *Service) Normalize() {
	if s.CostMonths == 0 {
		s.CostMonths = 1
	}

	if s.ClientMonths == 0 {
		s.ClientMonths = 1
	}
}

// DocumentID implements tableview.Document.
func (s *Service) DocumentID() string {
	return s.ID
}

// Fields returns every stored field of the service row coerced to a string,
// so a search query can match any of them, prices and months included.
func (s *Service) Fields() map[string]string {
	return map[string]string{
		"serviceName":      s.ServiceName,
		"serviceType":      s.ServiceType,
		"notes":            s.Notes,
		"customerId":       s.CustomerID,
		"customerName":     s.CustomerName,
		"email":            s.Email,
		"providerCompany":  s.ProviderCompany,
		"providerUrl":      s.ProviderURL,
		"providerUsername": s.ProviderUsername,
		"providerPassword": s.ProviderPassword,
		"serviceStartDate": s.ServiceStartDate,
		"nextRenewDate":    s.NextRenewDate,
		"costPerPeriod":    strconv.FormatFloat(s.CostPerPeriod, 'f', -1, 64),
		"costCurrency":     s.CostCurrency,
		"costMonths":       strconv.FormatInt(s.CostMonths, 10),
		"clientPrice":      strconv.FormatFloat(s.ClientPrice, 'f', -1, 64),
		"clientCurrency":   s.ClientCurrency,
		"clientMonths":     strconv.FormatInt(s.ClientMonths, 10),
		"totalPaid":        strconv.FormatFloat(s.TotalPaid, 'f', -1, 64),
	}
}

// SortableColumns are the columns the services table can be ordered by.
var SortableColumns = []string{"serviceName", "serviceType", "providerCompany", "customerName"}
