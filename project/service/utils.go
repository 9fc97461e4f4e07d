package service

import "cloud.google.com/go/firestore"

func getProjectUpdates(req UpdateProjectRequest) []firestore.Update {
	return []firestore.Update{
		{Path: "projectName", Value: req.ProjectName},
		{Path: "domain", Value: req.Domain},
		{Path: "httpLink", Value: req.HTTPLink},
		{Path: "port", Value: req.Port},
		{Path: "firestoreProjectName", Value: req.FirestoreProjectName},
		{Path: "firestoreEmail", Value: req.FirestoreEmail},
		{Path: "firestoreId", Value: req.FirestoreID},
		{Path: "projectEmail", Value: req.ProjectEmail},
		{Path: "domainRegistrarLink", Value: req.DomainRegistrarLink},
		{Path: "hostingPanelLink", Value: req.HostingPanelLink},
		{Path: "billingPanelLink", Value: req.BillingPanelLink},
		{Path: "startDate", Value: req.StartDate},
		{Path: "domainRenewalDate", Value: req.DomainRenewalDate},
		{Path: "domainUsername", Value: req.DomainUsername},
		{Path: "domainPassword", Value: req.DomainPassword},
		{Path: "fileLink", Value: req.FileLink},
		{Path: "notes", Value: req.Notes},
	}
}
