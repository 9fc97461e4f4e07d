package common

import (
	"os"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the GCP project hosting the Firestore database.
	ProjectID string

	// GAEService is the app engine service name.
	GAEService string

	// GAEVersion is the deployed app engine version.
	GAEVersion string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	productionProject = "webkraft-clientcms"

	// TestProjectID is the project used by tests running against mocked clients.
	TestProjectID = "webkraft-clientcms-dev"
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", TestProjectID)

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "clientcms")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	Production = ProjectID == productionProject && !IsLocalhost
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
