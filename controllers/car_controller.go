package controllers

import (
	"github.com/Silvia-kc/Project-Germany/pkg/resp"
	"github.com/Silvia-kc/Project-Germany/services"
	"github.com/Silvia-kc/Project-Germany/utils"

	"github.com/gin-gonic/gin"
)

type CarController struct {
	service *services.CarService
}

func NewCarController(s *services.CarService) *CarController {
	return &CarController{s}
}

// GET /api/cars — catalog grouped brand -> model -> attributes
func (ct *CarController) Catalog(c *gin.Context) {
	catalog, err := ct.service.Catalog(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	// raw map, no envelope: the browse page consumes this shape directly
	c.JSON(200, catalog)
}

// GET /api/brands
func (ct *CarController) Brands(c *gin.Context) {
	brands, err := ct.service.Brands(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(200, brands)
}

// GET /api/cars/mine (seller)
func (ct *CarController) Mine(c *gin.Context) {
	cars, err := ct.service.ListBySeller(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cars)
}

// POST /api/cars (seller only; the role gate is on the route)
func (ct *CarController) Create(c *gin.Context) {
	var req services.AddCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	car, err := ct.service.AddCar(c.Request.Context(), utils.CurrentUserID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, car)
}
