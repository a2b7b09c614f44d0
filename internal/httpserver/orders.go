package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tableside/internal/service/order"
)

func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		created, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"orderId":   created.ID,
			"createdAt": created.CreatedAt,
		})
	}
}

// listOrdersHandler serves the owner dashboard: the restaurant's orders for
// a day, month or year, plus their aggregate stats.
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := time.Now()
		if raw := c.Query("date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
				return
			}
			date = parsed
		}

		orders, stats, err := svc.ListForDashboard(c.Request.Context(), currentRestaurant(c).ID, date, c.Query("period"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"stats":  stats,
		})
	}
}
