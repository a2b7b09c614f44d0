package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tableside/internal/domain"
	"tableside/internal/service/payment"
)

func processPaymentHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.ProcessInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		res, err := svc.Process(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				c.Status(http.StatusRequestTimeout)
				return
			}
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func popularTipHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.Query("restaurant_id")
		if restaurantID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id required"})
			return
		}
		popular, err := svc.PopularTip(c.Request.Context(), restaurantID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"popular": popular})
	}
}

func listPaymentMethodsHandler(m *payment.Methods) gin.HandlerFunc {
	return func(c *gin.Context) {
		methods, err := m.List(c.Request.Context(), c.Param("deviceId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if methods == nil {
			methods = []domain.SavedPaymentMethod{}
		}
		c.JSON(http.StatusOK, gin.H{"methods": methods})
	}
}

func addPaymentMethodHandler(m *payment.Methods) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.AddMethodInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		method, err := m.Add(c.Request.Context(), c.Param("deviceId"), req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"method": method})
	}
}

func setDefaultPaymentMethodHandler(m *payment.Methods) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := m.SetDefault(c.Request.Context(), c.Param("deviceId"), c.Param("methodId"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func removePaymentMethodHandler(m *payment.Methods) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := m.Remove(c.Request.Context(), c.Param("deviceId"), c.Param("methodId"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
