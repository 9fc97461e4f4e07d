package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/webkraft/clientcms/project/domain"
	"github.com/webkraft/clientcms/project/service"
	"github.com/webkraft/clientcms/slice"
	"github.com/webkraft/clientcms/tableview"
)

func isValidCreateProjectRequest(req service.CreateProjectRequest) error {
	if req.ProjectName == "" {
		return domain.ErrInvalidProjectName
	}

	return nil
}

func isValidUpdateProjectRequest(req service.UpdateProjectRequest) error {
	if req.ProjectID == "" {
		return domain.ErrInvalidProjectID
	}

	if req.ProjectName == "" {
		return domain.ErrInvalidProjectName
	}

	return nil
}

func listProjectsRequestFromQuery(ctx *gin.Context) (service.ListProjectsRequest, error) {
	req := service.ListProjectsRequest{
		Query:  ctx.Query("q"),
		SortBy: ctx.Query("sortBy"),
		Order:  tableview.Direction(ctx.Query("order")),
	}

	if req.SortBy != "" && !slice.Contains(domain.SortableColumns, req.SortBy) {
		return service.ListProjectsRequest{}, domain.ErrInvalidSortColumn
	}

	return req, nil
}
