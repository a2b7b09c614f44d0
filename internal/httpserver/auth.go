package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tableside/internal/domain"
	"tableside/internal/service/auth"
	"tableside/internal/service/menu"
)

type loginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func registerHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		rest, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			// Validation and duplicate errors carry user-facing messages;
			// anything else is opaque.
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"restaurant": rest})
	}
}

func loginHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		rest, token, err := svc.Login(c.Request.Context(), req.Identifier, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.SetCookie(sessionCookie, token, svc.SessionTTLSeconds(), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"restaurant": rest})
	}
}

func logoutHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
			if err := svc.Logout(c.Request.Context(), token); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
				return
			}
		}
		c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func currentRestaurantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"restaurant": currentRestaurant(c)})
	}
}

// restaurantLookupHandler backs the customer menu page: the QR code only
// carries the access id.
func restaurantLookupHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rest, err := svc.GetByAccessID(c.Request.Context(), c.Param("accessId"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"restaurant": rest})
	}
}

// publicMenuHandler returns the restaurant plus its categories and items in
// one response so the menu page needs a single round trip.
func publicMenuHandler(authSvc *auth.Service, menuSvc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		rest, err := authSvc.GetByAccessID(ctx, c.Param("accessId"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		categories, err := menuSvc.ListCategories(ctx, rest.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		items, err := menuSvc.ListItems(ctx, rest.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		available := make([]domain.MenuItem, 0, len(items))
		for _, it := range items {
			if it.IsAvailable {
				available = append(available, it)
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"restaurant": rest,
			"categories": categories,
			"items":      available,
		})
	}
}
