package middleware

import "github.com/gin-gonic/gin"

// pathSet is a set of exact request paths a middleware ignores
type pathSet map[string]struct{}

func newPathSet(paths ...string) pathSet {
	set := make(pathSet, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}

func (s pathSet) has(path string) bool {
	_, ok := s[path]
	return ok
}

// unless runs next for every request whose path is not in skip.
func unless(skip pathSet, next gin.HandlerFunc) gin.HandlerFunc {
	if len(skip) == 0 {
		return next
	}
	return func(c *gin.Context) {
		if skip.has(c.Request.URL.Path) {
			c.Next()
			return
		}
		next(c)
	}
}

func passThrough(c *gin.Context) {
	c.Next()
}
