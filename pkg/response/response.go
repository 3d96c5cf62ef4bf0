package response

import (
	"context"
	"fmt"
	"net/http"

	"assistant-srv/pkg/discord"
	pkgErrors "assistant-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: codeOK,
		Message:   messageOK,
		Data:      data,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Error writes an error response. HTTPError maps to its status code; anything
// else becomes a 500 and is reported to Discord when a client is configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	notify(c, discordClient, fmt.Sprintf("unhandled error: %v", err))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   messageInternalError,
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	notify(c, discordClient, fmt.Sprintf("panic recovered: %v", recovered))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   messageInternalError,
	})
}

func notify(c *gin.Context, discordClient discord.IDiscord, msg string) {
	if discordClient == nil {
		return
	}
	// Alerting is best-effort; never let it affect the response.
	go func() {
		_ = discordClient.SendError(context.Background(),
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), msg)
	}()
}
