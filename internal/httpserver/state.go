package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tableside/internal/domain"
	"tableside/internal/kvstore"
)

// watchTimeout bounds how long a watch request can hold its connection
// before the client is told to retry.
const watchTimeout = 30 * time.Second

type putStateRequest struct {
	Value string `json:"value"`
}

func stateKey(deviceID, key string) string {
	return "state:" + deviceID + ":" + key
}

func getStateHandler(store kvstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := store.Get(c.Request.Context(), stateKey(c.Param("deviceId"), c.Param("key")))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not set"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"value": value})
	}
}

func putStateHandler(store kvstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req putStateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := store.Set(c.Request.Context(), stateKey(c.Param("deviceId"), c.Param("key")), req.Value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// watchStateHandler long-polls for the next write to the key. Clients call
// it in a loop instead of polling GET on a timer.
func watchStateHandler(store kvstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		updates, cancel := store.Subscribe(c.Request.Context(), stateKey(c.Param("deviceId"), c.Param("key")))
		defer cancel()

		select {
		case value, ok := <-updates:
			if !ok {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "subscription closed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"value": value})
		case <-time.After(watchTimeout):
			c.Status(http.StatusNoContent)
		case <-c.Request.Context().Done():
			c.Status(http.StatusRequestTimeout)
		}
	}
}
