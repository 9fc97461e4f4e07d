package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/framework/web"
	"github.com/webkraft/clientcms/fsdal"
	"github.com/webkraft/clientcms/logger"
	"github.com/webkraft/clientcms/project/domain"
	"github.com/webkraft/clientcms/project/service"
	"github.com/webkraft/clientcms/project/service/iface"
)

type Projects struct {
	loggerProvider logger.Provider
	service        iface.ProjectsIface
}

func NewProjects(log logger.Provider, conn *connection.Connection) *Projects {
	s := service.NewProjectService(log, conn)

	return &Projects{
		log,
		s,
	}
}

func (h *Projects) CreateProject(ctx *gin.Context) error {
	var body service.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := isValidCreateProjectRequest(body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	project, err := h.service.CreateProject(ctx, body)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, project, http.StatusCreated)
}

func (h *Projects) GetProject(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")

	if projectID == "" {
		return web.NewRequestError(domain.ErrInvalidProjectID, http.StatusBadRequest)
	}

	project, err := h.service.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, fsdal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, project, http.StatusOK)
}

func (h *Projects) UpdateProject(ctx *gin.Context) error {
	var req service.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.ProjectID = ctx.Param("projectID")

	if err := isValidUpdateProjectRequest(req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	project, err := h.service.UpdateProject(ctx, req)
	if err != nil {
		if errors.Is(err, fsdal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, project, http.StatusOK)
}

func (h *Projects) DeleteProject(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")

	if projectID == "" {
		return web.NewRequestError(domain.ErrInvalidProjectID, http.StatusBadRequest)
	}

	if err := h.service.DeleteProject(ctx, projectID); err != nil {
		if errors.Is(err, fsdal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, map[string]interface{}{"success": true}, http.StatusOK)
}

func (h *Projects) ListProjects(ctx *gin.Context) error {
	req, err := listProjectsRequestFromQuery(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	projects, err := h.service.ListProjects(ctx, req)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, projects, http.StatusOK)
}
