package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bitefinder/internal/domain"
	ordersvc "bitefinder/internal/service/order"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

func listOrdersHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v < 1 {
				respondError(c, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = v
		}

		orders, err := svc.ListRecent(c.Request.Context(), sess.OwnerID, limit)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "could not load orders")
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"count":  len(orders),
		})
	}
}

func getOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		o, err := svc.Get(c.Request.Context(), sess.OwnerID, c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, "order not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "could not load order")
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": o})
	}
}

func orderTrackingHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		o, err := svc.Get(c.Request.Context(), sess.OwnerID, c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, "order not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "could not load order")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orderId":           o.ID,
			"status":            o.Status,
			"estimatedDelivery": o.EstimatedDelivery,
			"stages":            ordersvc.Timeline(*o),
		})
	}
}

const qrImageSize = 256

// orderQRHandler renders the tracking URL as a PNG so the order can be
// followed from another device.
func orderQRHandler(svc orderService, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		o, err := svc.Get(c.Request.Context(), sess.OwnerID, c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, "order not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "could not load order")
			return
		}

		url := strings.TrimSuffix(publicBaseURL, "/") + "/orders/" + o.ID + "/tracking"
		png, err := qrcode.Encode(url, qrcode.Medium, qrImageSize)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "could not render qr code")
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}
