package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/framework/web"
	"github.com/webkraft/clientcms/fsdal"
	"github.com/webkraft/clientcms/logger"
	"github.com/webkraft/clientcms/services/domain"
	"github.com/webkraft/clientcms/services/service"
	"github.com/webkraft/clientcms/services/service/iface"
)

type Services struct {
	loggerProvider logger.Provider
	service        iface.ServicesIface
}

func NewServices(log logger.Provider, conn *connection.Connection) *Services {
	s := service.NewSubscriptionService(log, conn)

	return &Services{
		log,
		s,
	}
}

func (h *Services) CreateService(ctx *gin.Context) error {
	var body service.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := isValidCreateServiceRequest(body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	svc, err := h.service.CreateService(ctx, body)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, svc, http.StatusCreated)
}

func (h *Services) GetService(ctx *gin.Context) error {
	serviceID := ctx.Param("serviceID")

	if serviceID == "" {
		return web.NewRequestError(domain.ErrInvalidServiceID, http.StatusBadRequest)
	}

	svc, err := h.service.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, fsdal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, svc, http.StatusOK)
}

func (h *Services) UpdateService(ctx *gin.Context) error {
	var req service.UpdateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.ServiceID = ctx.Param("serviceID")

	if err := isValidUpdateServiceRequest(req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	svc, err := h.service.UpdateService(ctx, req)
	if err != nil {
		if errors.Is(err, fsdal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, svc, http.StatusOK)
}

func (h *Services) DeleteService(ctx *gin.Context) error {
	serviceID := ctx.Param("serviceID")

	if serviceID == "" {
		return web.NewRequestError(domain.ErrInvalidServiceID, http.StatusBadRequest)
	}

	if err := h.service.DeleteService(ctx, serviceID); err != nil {
		if errors.Is(err, fsdal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, map[string]interface{}{"success": true}, http.StatusOK)
}

func (h *Services) ListServices(ctx *gin.Context) error {
	req, err := listServicesRequestFromQuery(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	services, err := h.service.ListServices(ctx, req)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, services, http.StatusOK)
}
