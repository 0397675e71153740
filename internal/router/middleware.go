package router

import (
	"fmt"
	"os"

	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

// URLMiddleware sets the URL the backend is reachable at in the context,
// used by the controllers to build resource links. The API_URL environment
// variable takes precedence over the request host.
func URLMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		url, ok := os.LookupEnv("API_URL")
		if !ok {
			scheme := "https"
			if c.Request.TLS == nil {
				scheme = "http"
			}

			url = fmt.Sprintf("%s://%s", scheme, c.Request.Host)
		}

		c.Set(string(models.ContextURL), url)
	}
}
