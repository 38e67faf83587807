package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rupeshthakur8550/FoodSpace/pkg/resp"
	"github.com/rupeshthakur8550/FoodSpace/repository"
)

type ItemController struct {
	Repo *repository.ItemRepository
}

func NewItemController(repo *repository.ItemRepository) *ItemController {
	return &ItemController{Repo: repo}
}

// POST /api/item/getallitems
func (ctl *ItemController) GetAllItems(c *gin.Context) {
	var body struct {
		Location string `json:"location"`
	}
	// an empty body is fine, it just means "everything"
	_ = c.ShouldBindJSON(&body)

	items, err := ctl.Repo.ListByLocation(body.Location)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}
