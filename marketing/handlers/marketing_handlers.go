package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/framework/web"
	"github.com/webkraft/clientcms/logger"
	"github.com/webkraft/clientcms/marketing/domain"
	"github.com/webkraft/clientcms/marketing/service"
	"github.com/webkraft/clientcms/marketing/service/iface"
)

type Marketing struct {
	loggerProvider logger.Provider
	service        iface.MarketingIface
}

func NewMarketing(log logger.Provider, conn *connection.Connection) *Marketing {
	s := service.NewMarketingService(log, conn)

	return &Marketing{
		log,
		s,
	}
}

func (h *Marketing) SendMarketingEmails(ctx *gin.Context) error {
	var body service.SendMarketingEmailsRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := isValidSendMarketingEmailsRequest(body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.SendMarketingEmails(ctx, body); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, map[string]interface{}{"success": true}, http.StatusOK)
}

var validate = validator.New()

func isValidSendMarketingEmailsRequest(req service.SendMarketingEmailsRequest) error {
	if req.Message == "" {
		return domain.ErrInvalidMessage
	}

	if len(req.Emails) == 0 {
		return domain.ErrNoRecipients
	}

	for _, email := range req.Emails {
		if err := validate.Var(email, "required,email"); err != nil {
			return domain.ErrInvalidEmail
		}
	}

	return nil
}
