package handler

import (
	"context"
	"net/http"
	"time"

	"aratrack/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response.
// Checks DB and, when configured, Redis; reports the SMTP breaker state.
// Never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			}
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		body := gin.H{
			"ok":     status == http.StatusOK,
			"db":     dbStatus,
			"driver": db.Dialector.Name(),
			"redis":  redisStatus,
		}
		if smtpCB != nil {
			body["smtp"] = smtpCB.State().String()
		}
		c.JSON(status, body)
	}
}
