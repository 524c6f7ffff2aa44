package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shomadhan-be/config"
	"shomadhan-be/models"
)

const publicStatsCacheKey = "stats:public"
const publicStatsCacheTTL = 60 * time.Second

// GetStats returns the full aggregate projection for operator dashboards
func GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := getLifecycle().Stats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// GetPublicStats serves the home page counters, cached in Redis so the
// public page doesn't hammer the aggregation pipeline
func GetPublicStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cached, err := config.RedisClient.Get(config.Ctx, publicStatsCacheKey).Result(); err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	} else if !errors.Is(err, redis.Nil) {
		log.Println("stats cache read failed:", err)
	}

	stats, err := getLifecycle().Stats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := json.Marshal(gin.H{
		"success": true,
		"data": gin.H{
			"total":    stats.Total,
			"solved":   stats.Solved,
			"byStatus": stats.ByStatus,
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong"})
		return
	}

	if err := config.RedisClient.Set(config.Ctx, publicStatsCacheKey, body, publicStatsCacheTTL).Err(); err != nil {
		log.Println("stats cache write failed:", err)
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GetCatalogs exposes the static category/status/location reference data the
// complaint form is built from
func GetCatalogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"district":   models.District,
		"categories": models.Categories,
		"statuses":   models.Statuses,
		"upazilas":   models.Upazilas,
	})
}
