package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rupeshthakur8550/FoodSpace/pkg/metrics"
	"github.com/rupeshthakur8550/FoodSpace/pkg/resp"
	"github.com/rupeshthakur8550/FoodSpace/repository"
)

type DeliveryController struct {
	Repo *repository.DeliveryRepository
	M    *metrics.StoreMetrics
}

func NewDeliveryController(repo *repository.DeliveryRepository, m *metrics.StoreMetrics) *DeliveryController {
	return &DeliveryController{Repo: repo, M: m}
}

// GET /api/delivery/getaddress/:deliveryRef
func (ctl *DeliveryController) GetAddress(c *gin.Context) {
	ref := c.Param("deliveryRef")

	d, err := ctl.Repo.GetByRef(ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "delivery not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	ctl.M.AddressLookups.Inc()
	c.JSON(http.StatusOK, gin.H{"delivery": d.Fields()})
}
