package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services/container"
)

// HandleHealthFunc returns a gin handler for health check requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		switch method {
		case "ping":
			ctx.JSON(http.StatusOK, gin.H{
				"message": "pong",
				"status":  "healthy",
			})
		case "status":
			sqlDB, err := container.GetDB().DB()
			dbHealthy := err == nil && sqlDB.Ping() == nil
			ctx.JSON(http.StatusOK, gin.H{
				"status":   "running",
				"database": dbHealthy,
			})
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}
