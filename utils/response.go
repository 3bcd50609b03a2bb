package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Respond writes the success envelope used by every endpoint.
func Respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// Fail writes the failure envelope. The error string reaches the client
// verbatim; validation-class failures are logged at warn, internal at error.
func Fail(c *gin.Context, err error) {
	ae := AsAppError(err)
	logger := GetLogger()
	if ae.Code == CodeInternal {
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		logger.Warn("request rejected", zap.String("path", c.FullPath()), zap.String("code", ae.Code), zap.String("reason", ae.Message))
	}
	c.JSON(ae.HTTPStatus, gin.H{"success": false, "error": ae.Message})
}
