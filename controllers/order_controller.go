package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rupeshthakur8550/FoodSpace/entity"
	"github.com/rupeshthakur8550/FoodSpace/pkg/metrics"
	"github.com/rupeshthakur8550/FoodSpace/pkg/resp"
	"github.com/rupeshthakur8550/FoodSpace/services"
)

type OrderController struct {
	Svc *services.OrderService
	M   *metrics.StoreMetrics
}

func NewOrderController(svc *services.OrderService, m *metrics.StoreMetrics) *OrderController {
	return &OrderController{Svc: svc, M: m}
}

// GET /api/order/getorder/:sellerId
func (ctl *OrderController) GetOrders(c *gin.Context) {
	sellerID, err := strconv.ParseUint(c.Param("sellerId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid seller id")
		return
	}

	orders, err := ctl.Svc.ListForSeller(uint(sellerID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	ctl.M.OrderListFetches.Inc()
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// PUT /api/order/updatestatus/:sellerId
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	sellerID, err := strconv.ParseUint(c.Param("sellerId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid seller id")
		return
	}

	var body struct {
		OrderID uint               `json:"orderId" binding:"required"`
		Status  entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.UpdateStatus(uint(sellerID), body.OrderID, body.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	ctl.M.StatusTransitions.WithLabelValues(string(body.Status)).Inc()
	c.Status(http.StatusNoContent)
}

// POST /api/order/placeorder/:userId
func (ctl *OrderController) PlaceOrder(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Svc.PlaceOrder(uint(userID), &req)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.M.OrdersPlaced.Add(float64(len(out.OrderIDs)))
	resp.Created(c, out)
}
