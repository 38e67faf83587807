package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rupeshthakur8550/FoodSpace/controllers"
	"github.com/rupeshthakur8550/FoodSpace/pkg/metrics"
	"github.com/rupeshthakur8550/FoodSpace/pkg/resp"
	"github.com/rupeshthakur8550/FoodSpace/repository"
	"github.com/rupeshthakur8550/FoodSpace/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, m *metrics.StoreMetrics) {
	r.GET("/health", func(c *gin.Context) { resp.OK(c, nil) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	itemRepo := repository.NewItemRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, itemRepo, deliveryRepo)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc, m)
	itemCtrl := controllers.NewItemController(itemRepo)
	deliveryCtrl := controllers.NewDeliveryController(deliveryRepo, m)

	api := r.Group("/api")
	{
		api.GET("/order/getorder/:sellerId", orderCtrl.GetOrders)
		api.PUT("/order/updatestatus/:sellerId", orderCtrl.UpdateStatus)
		api.POST("/order/placeorder/:userId", orderCtrl.PlaceOrder)
		api.GET("/delivery/getaddress/:deliveryRef", deliveryCtrl.GetAddress)
		api.POST("/item/getallitems", itemCtrl.GetAllItems)
	}
}
