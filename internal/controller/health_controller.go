package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (c *HealthController) Register(engine *gin.Engine) {
	engine.GET("/", c.Status)
}

func (c *HealthController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "skybm-backend",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
