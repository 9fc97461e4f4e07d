package service

import "cloud.google.com/go/firestore"

func getServiceUpdates(req UpdateServiceRequest) []firestore.Update {
	return []firestore.Update{
		{Path: "serviceName", Value: req.ServiceName},
		{Path: "serviceType", Value: req.ServiceType},
		{Path: "notes", Value: req.Notes},
		{Path: "customerId", Value: req.CustomerID},
		{Path: "customerName", Value: req.CustomerName},
		{Path: "email", Value: req.Email},
		{Path: "providerCompany", Value: req.ProviderCompany},
		{Path: "providerUrl", Value: req.ProviderURL},
		{Path: "providerUsername", Value: req.ProviderUsername},
		{Path: "providerPassword", Value: req.ProviderPassword},
		{Path: "serviceStartDate", Value: req.ServiceStartDate},
		{Path: "nextRenewDate", Value: req.NextRenewDate},
		{Path: "costPerPeriod", Value: req.CostPerPeriod},
		{Path: "costCurrency", Value: req.CostCurrency},
		{Path: "costMonths", Value: req.CostMonths},
		{Path: "clientPrice", Value: req.ClientPrice},
		{Path: "clientCurrency", Value: req.ClientCurrency},
		{Path: "clientMonths", Value: req.ClientMonths},
		{Path: "totalPaid", Value: req.TotalPaid},
	}
}
