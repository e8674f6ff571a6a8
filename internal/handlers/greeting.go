// Package handlers contains HTTP request handlers for the welcome service.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/welcome-service/internal/greeting"
)

// nameParam is the path parameter carrying the visitor name
const nameParam = "name"

// GreetingHandler exposes a greeting.Greeter over HTTP
type GreetingHandler struct {
	greeter greeting.Greeter
}

// NewGreetingHandler creates a new greeting handler
func NewGreetingHandler(greeter greeting.Greeter) *GreetingHandler {
	return &GreetingHandler{greeter: greeter}
}

// Root handles requests to the mount root
func (h *GreetingHandler) Root(c *gin.Context) {
	resp := h.greeter.HandleRoot(greeting.Request{Name: greeting.Absent()})
	c.String(http.StatusOK, resp.Body)
}

// Named handles requests carrying a name segment
func (h *GreetingHandler) Named(c *gin.Context) {
	req := greeting.Request{Name: greeting.Present(c.Param(nameParam))}
	resp := h.greeter.HandleNamed(req)
	c.String(http.StatusOK, resp.Body)
}

// Mount registers the greeting routes on r under prefix and returns the
// group they were registered on. An empty prefix or "/" mounts at the root.
func (h *GreetingHandler) Mount(r gin.IRouter, prefix string) gin.IRoutes {
	group := r.Group(NormalizePrefix(prefix))
	{
		group.GET("/", h.Root)
		group.HEAD("/", h.Root)
		group.GET("/:"+nameParam, h.Named)
		group.HEAD("/:"+nameParam, h.Named)
	}
	return group
}

// NormalizePrefix returns prefix with exactly one leading slash and no
// trailing slash. The root prefix normalizes to "".
func NormalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
