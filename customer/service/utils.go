package service

import "cloud.google.com/go/firestore"

func getCustomerUpdates(req UpdateCustomerRequest) []firestore.Update {
	return []firestore.Update{
		{Path: "customerName", Value: req.CustomerName},
		{Path: "email", Value: req.Email},
		{Path: "phone", Value: req.Phone},
		{Path: "location", Value: req.Location},
		{Path: "serviceName", Value: req.ServiceName},
		{Path: "serviceStartDate", Value: req.ServiceStartDate},
		{Path: "serviceRenewDate", Value: req.ServiceRenewDate},
		{Path: "notes", Value: req.Notes},
	}
}
