package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"bitefinder/internal/domain"
	restaurantsvc "bitefinder/internal/service/restaurant"

	"github.com/gin-gonic/gin"
)

func listRestaurantsHandler(svc restaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := restaurantsvc.Filters{
			Query:   c.Query("q"),
			Cuisine: c.Query("cuisine"),
		}
		if raw := c.Query("min_rating"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v < 0 || v > 5 {
				respondError(c, http.StatusBadRequest, "min_rating must be a number between 0 and 5")
				return
			}
			f.MinRating = v
		}

		restaurants, err := svc.List(c.Request.Context(), f)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "could not load restaurants")
			return
		}
		if restaurants == nil {
			restaurants = []domain.Restaurant{}
		}
		c.JSON(http.StatusOK, gin.H{
			"restaurants": restaurants,
			"count":       len(restaurants),
		})
	}
}

func cuisinesHandler(svc restaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cuisines, err := svc.Cuisines(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "could not load cuisines")
			return
		}
		if cuisines == nil {
			cuisines = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"cuisines": cuisines})
	}
}

func getRestaurantHandler(svc restaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, "restaurant not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "could not load restaurant")
			return
		}
		c.JSON(http.StatusOK, gin.H{"restaurant": r})
	}
}
