package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webkraft/clientcms/framework/web"
)

func Health(ctx *gin.Context) error {
	_ = web.Respond(ctx, nil, http.StatusOK)
	return nil
}
