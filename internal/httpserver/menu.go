package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tableside/internal/domain"
	"tableside/internal/service/menu"
)

func listMenuItemsHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListItems(c.Request.Context(), currentRestaurant(c).ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func createMenuItemHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menu.ItemInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		item, err := svc.AddItem(c.Request.Context(), currentRestaurant(c).ID, req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": item})
	}
}

func updateMenuItemHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menu.ItemInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		item, err := svc.UpdateItem(c.Request.Context(), currentRestaurant(c).ID, c.Param("id"), req)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
				return
			}
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

func deleteMenuItemHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.DeleteItem(c.Request.Context(), currentRestaurant(c).ID, c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func listCategoriesHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListCategories(c.Request.Context(), currentRestaurant(c).ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func createCategoryHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menu.CategoryInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		cat, err := svc.AddCategory(c.Request.Context(), currentRestaurant(c).ID, req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"category": cat})
	}
}
