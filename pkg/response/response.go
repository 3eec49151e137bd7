package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "dbt-guide/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. An *errors.HTTPError keeps its own status code,
// anything else is reported as 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	status := pkgErrors.ErrBadRequest.Code
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
	}

	c.JSON(status, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error and aborts the handler chain.
// err is recorded on the context, never sent to the client.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(pkgErrors.ErrInternalServerError.Code, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// NotFound sends 404 response and aborts the handler chain.
func NotFound(c *gin.Context) {
	abortWith(c, pkgErrors.ErrNotFound)
}

// TooManyRequests sends 429 response and aborts the handler chain.
func TooManyRequests(c *gin.Context) {
	abortWith(c, pkgErrors.ErrTooManyRequests)
}

func abortWith(c *gin.Context, e *pkgErrors.HTTPError) {
	c.AbortWithStatusJSON(e.Code, Resp{
		ErrorCode: e.Code,
		Message:   e.Message,
	})
}
