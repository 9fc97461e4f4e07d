package domain

import "time"

// Project is a hosted project record in the projects collection. Only the
// name is mandatory; the operational metadata accumulated over a project's
// life is optional and older documents may miss any of it.
type Project struct {
	ProjectName          string    `firestore:"projectName" json:"projectName"`
	Domain               string    `firestore:"domain" json:"domain"`
	HTTPLink             string    `firestore:"httpLink" json:"httpLink"`
	Port                 string    `firestore:"port" json:"port"`
	FirestoreProjectName string    `firestore:"firestoreProjectName" json:"firestoreProjectName"`
	FirestoreEmail       string    `firestore:"firestoreEmail" json:"firestoreEmail"`
	FirestoreID          string    `firestore:"firestoreId" json:"firestoreId"`
	ProjectEmail         string    `firestore:"projectEmail" json:"projectEmail"`
	DomainRegistrarLink  string    `firestore:"domainRegistrarLink" json:"domainRegistrarLink"`
	HostingPanelLink     string    `firestore:"hostingPanelLink" json:"hostingPanelLink"`
	BillingPanelLink     string    `firestore:"billingPanelLink" json:"billingPanelLink"`
	StartDate            string    `firestore:"startDate" json:"startDate"`
	DomainRenewalDate    string    `firestore:"domainRenewalDate" json:"domainRenewalDate"`
	DomainUsername       string    `firestore:"domainUsername" json:"domainUsername"`
	DomainPassword       string    `firestore:"domainPassword" json:"domainPassword"`
	FileLink             string    `firestore:"fileLink" json:"fileLink"`
	Notes                string    `firestore:"notes" json:"notes"`
	CreatedAt            time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`

	ID string `firestore:"-" json:"id"`
}

// DocumentID implements tableview.Document.
func (p *Project) DocumentID() string {
	return p.ID
}

// Fields returns every stored field of the project row coerced to a string,
// so a search query can match any of them. Absent optional fields contribute
// empty strings, which the table renders as "-".
func (p *Project) Fields() map[string]string {
	return map[string]string{
		"projectName":          p.ProjectName,
		"domain":               p.Domain,
		"httpLink":             p.HTTPLink,
		"port":                 p.Port,
		"firestoreProjectName": p.FirestoreProjectName,
		"firestoreEmail":       p.FirestoreEmail,
		"firestoreId":          p.FirestoreID,
		"projectEmail":         p.ProjectEmail,
		"domainRegistrarLink":  p.DomainRegistrarLink,
		"hostingPanelLink":     p.HostingPanelLink,
		"billingPanelLink":     p.BillingPanelLink,
		"startDate":            p.StartDate,
		"domainRenewalDate":    p.DomainRenewalDate,
		"domainUsername":       p.DomainUsername,
		"domainPassword":       p.DomainPassword,
		"fileLink":             p.FileLink,
		"notes":                p.Notes,
	}
}

// SortableColumns are the columns the projects table can be ordered by.
var SortableColumns = []string{"projectName", "projectEmail", "port"}
