package api

import (
	"net/http"
	"os"

	"github.com/webkraft/clientcms/cmd/api/handlers"
	customerHandlers "github.com/webkraft/clientcms/customer/handlers"
	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/framework/mid"
	"github.com/webkraft/clientcms/framework/web"
	"github.com/webkraft/clientcms/logger"
	marketingHandlers "github.com/webkraft/clientcms/marketing/handlers"
	projectHandlers "github.com/webkraft/clientcms/project/handlers"
	servicesHandlers "github.com/webkraft/clientcms/services/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	customers := customerHandlers.NewCustomers(loggerProvider, a.conn)
	projects := projectHandlers.NewProjects(loggerProvider, a.conn)
	services := servicesHandlers.NewServices(loggerProvider, a.conn)
	marketing := marketingHandlers.NewMarketing(loggerProvider, a.conn)

	app.Get("/health", handlers.Health)

	customersGroup := web.NewGroup(app, "/customers")
	{
		customersGroup.Post("", customers.CreateCustomer)
		customersGroup.Get("", customers.ListCustomers)
		customersGroup.Get("/:customerID", customers.GetCustomer, mid.ValidatePathParamNotEmpty("customerID"))
		customersGroup.Put("/:customerID", customers.UpdateCustomer, mid.ValidatePathParamNotEmpty("customerID"))
	}

	projectsGroup := web.NewGroup(app, "/projects")
	{
		projectsGroup.Post("", projects.CreateProject)
		projectsGroup.Get("", projects.ListProjects)
		projectsGroup.Get("/:projectID", projects.GetProject, mid.ValidatePathParamNotEmpty("projectID"))
		projectsGroup.Put("/:projectID", projects.UpdateProject, mid.ValidatePathParamNotEmpty("projectID"))
		projectsGroup.Delete("/:projectID", projects.DeleteProject, mid.ValidatePathParamNotEmpty("projectID"))
	}

	servicesGroup := web.NewGroup(app, "/services")
	{
		servicesGroup.Post("", services.CreateService)
		servicesGroup.Get("", services.ListServices)
		servicesGroup.Get("/:serviceID", services.GetService, mid.ValidatePathParamNotEmpty("serviceID"))
		servicesGroup.Put("/:serviceID", services.UpdateService, mid.ValidatePathParamNotEmpty("serviceID"))
		servicesGroup.Delete("/:serviceID", services.DeleteService, mid.ValidatePathParamNotEmpty("serviceID"))
	}

	marketingGroup := web.NewGroup(app, "/marketing")
	{
		marketingGroup.Post("/send-emails", marketing.SendMarketingEmails)
	}

	return app
}
