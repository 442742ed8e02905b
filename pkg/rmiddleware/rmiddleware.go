package rmiddleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/DhavalSuthar-24/courtplan/pkg/responses"
	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into the standard 500 error envelope and logs the
// stack. A connection the client already dropped is aborted without a body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				c.Abort()
				return
			}

			slog.ErrorContext(c.Request.Context(), "panic recovered",
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("stack", string(debug.Stack())),
			)
			if c.Writer.Written() {
				c.Abort()
				return
			}
			responses.InternalServerError(c, "")
			c.Abort()
		}()
		c.Next()
	}
}
