package httpserver

import (
	"errors"
	"net/http"

	"bitefinder/internal/checkout"
	ordersvc "bitefinder/internal/service/order"

	"github.com/gin-gonic/gin"
)

func checkoutHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		var in ordersvc.PlaceOrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid checkout payload")
			return
		}

		o, err := svc.PlaceOrder(c.Request.Context(), sess.OwnerID, in)
		if err != nil {
			var ve *ordersvc.ValidationError
			switch {
			case errors.As(err, &ve):
				respondValidation(c, ve.Fields)
			case errors.Is(err, ordersvc.ErrEmptyCart):
				respondError(c, http.StatusConflict, err.Error())
			case errors.Is(err, checkout.ErrPaymentDeclined):
				respondError(c, http.StatusPaymentRequired, err.Error())
			default:
				respondError(c, http.StatusInternalServerError, "checkout failed")
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": o})
	}
}
