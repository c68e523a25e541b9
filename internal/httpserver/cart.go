package httpserver

import (
	"errors"
	"net/http"

	"bitefinder/internal/cart"
	"bitefinder/internal/domain"
	"bitefinder/internal/pricing"

	"github.com/gin-gonic/gin"
)

type cartResponse struct {
	Items  []domain.CartItem `json:"items"`
	Totals pricing.Totals    `json:"totals"`
}

func toCartResponse(c domain.Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{Items: items, Totals: pricing.Compute(c.Items)}
}

func getCartHandler(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		current, err := store.Get(c.Request.Context(), sess.OwnerID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "could not load cart")
			return
		}
		c.JSON(http.StatusOK, toCartResponse(current))
	}
}

type addCartItemRequest struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
}

func addCartItemHandler(store cart.Store, restaurants restaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "restaurantId is required")
			return
		}

		r, err := restaurants.Get(c.Request.Context(), req.RestaurantID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, "restaurant not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "could not load restaurant")
			return
		}

		updated, err := store.AddItem(c.Request.Context(), sess.OwnerID, *r)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "could not update cart")
			return
		}
		c.JSON(http.StatusOK, toCartResponse(updated))
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "quantity is required")
			return
		}

		// Quantities below 1 are a deliberate no-op; the store enforces it.
		updated, err := store.UpdateQuantity(c.Request.Context(), sess.OwnerID, c.Param("restaurantId"), req.Quantity)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "could not update cart")
			return
		}
		c.JSON(http.StatusOK, toCartResponse(updated))
	}
}

func removeCartItemHandler(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		updated, err := store.RemoveItem(c.Request.Context(), sess.OwnerID, c.Param("restaurantId"))
		if err != nil {
			respondError(c, http.StatusInternalServerError, "could not update cart")
			return
		}
		c.JSON(http.StatusOK, toCartResponse(updated))
	}
}

func clearCartHandler(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if err := store.Clear(c.Request.Context(), sess.OwnerID); err != nil {
			respondError(c, http.StatusInternalServerError, "could not clear cart")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
