package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, trainingHandler *TrainingHandler) {
	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		trainingGroup := apiV1.Group("/trainings")
		{
			// POST /api/v1/trainings/info
			trainingGroup.POST("/info", trainingHandler.GetTrainingInfo)
			// POST /api/v1/trainings/batch
			trainingGroup.POST("/batch", trainingHandler.GetBatchTrainingInfo)
		}
	}
}
