package domain

import "time"

// Customer is a client record in the customers collection. Date fields hold
// the raw form values, so they stay strings. Documents written by older
// versions of the dashboard may miss any of the optional fields.
type Customer struct {
	CustomerName     string    `firestore:"customerName" json:"customerName"`
	Email            string    `firestore:"email" json:"email"`
	Phone            string    `firestore:"phone" json:"phone"`
	Location         string    `firestore:"location" json:"location"`
	ServiceName      string    `firestore:"serviceName" json:"serviceName"`
	ServiceStartDate string    `firestore:"serviceStartDate" json:"serviceStartDate"`
	ServiceRenewDate string    `firestore:"serviceRenewDate" json:"serviceRenewDate"`
	Notes            string    `firestore:"notes" json:"notes"`
	CreatedAt        time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt        time.Time `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`

	ID string `firestore:"-" json:"id"`
}

// DocumentID implements tableview.Document.
func (c *Customer) DocumentID() string {
	return c.ID
}

// Fields returns the searchable table columns of the customer row.
func (c *Customer) Fields() map[string]string {
	return map[string]string{
		"customerName": c.CustomerName,
		"email":        c.Email,
		"phone":        c.Phone,
		"location":     c.Location,
	}
}

// SortableColumns are the columns the customers table can be ordered by.
var SortableColumns = []string{"customerName", "email", "phone", "location"}
