package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webkraft/clientcms/customer/domain"
	"github.com/webkraft/clientcms/customer/service"
	"github.com/webkraft/clientcms/customer/service/iface"
	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/framework/web"
	"github.com/webkraft/clientcms/fsdal"
	"github.com/webkraft/clientcms/logger"
)

type Customers struct {
	loggerProvider logger.Provider
	service        iface.CustomersIface
}

func NewCustomers(log logger.Provider, conn *connection.Connection) *Customers {
	s := service.NewCustomerService(log, conn)

	return &Customers{
		log,
		s,
	}
}

func (h *Customers) CreateCustomer(ctx *gin.Context) error {
	var body service.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := isValidCreateCustomerRequest(body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	customer, err := h.service.CreateCustomer(ctx, body)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, customer, http.StatusCreated)
}

func (h *Customers) GetCustomer(ctx *gin.Context) error {
	customerID := ctx.Param("customerID")

	if customerID == "" {
		return web.NewRequestError(domain.ErrInvalidCustomerID, http.StatusBadRequest)
	}

	customer, err := h.service.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, fsdal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, customer, http.StatusOK)
}

func (h *Customers) UpdateCustomer(ctx *gin.Context) error {
	var req service.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.CustomerID = ctx.Param("customerID")

	if err := isValidUpdateCustomerRequest(req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	customer, err := h.service.UpdateCustomer(ctx, req)
	if err != nil {
		if errors.Is(err, fsdal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, customer, http.StatusOK)
}

func (h *Customers) ListCustomers(ctx *gin.Context) error {
	req, err := listCustomersRequestFromQuery(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	customers, err := h.service.ListCustomers(ctx, req)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, customers, http.StatusOK)
}
