package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tableside/internal/domain"
	"tableside/internal/service/auth"
)

// sessionCookie is the browser cookie carrying the owner session token.
const sessionCookie = "restaurant_session"

const restaurantKey = "restaurant"

// sessionMiddleware resolves the session cookie into the owning restaurant
// and aborts with 401 when the session is missing or stale.
func sessionMiddleware(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		rest, err := svc.LookupSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		c.Set(restaurantKey, rest)
		c.Next()
	}
}

// currentRestaurant pulls the restaurant stored by sessionMiddleware.
func currentRestaurant(c *gin.Context) *domain.Restaurant {
	v, ok := c.Get(restaurantKey)
	if !ok {
		return nil
	}
	rest, _ := v.(*domain.Restaurant)
	return rest
}
