package handlers

import (
	"net/http"

	"gymfit_backend/internal/middleware"
	"gymfit_backend/internal/models"
	"gymfit_backend/internal/services"
	"gymfit_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TrainerHandler struct {
	*BaseHandler
	trainerService services.TrainerService
}

func NewTrainerHandler(base *BaseHandler, trainerService services.TrainerService) *TrainerHandler {
	return &TrainerHandler{
		BaseHandler:    base,
		trainerService: trainerService,
	}
}

// RegisterRoutes registers trainer routes, mirroring the member routes.
func (h *TrainerHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	trainers := rg.Group("/trainers")
	trainers.Use(authMW)
	{
		trainers.GET("", h.List)
		trainers.GET("/:id", h.Get)
		trainers.PATCH("/:id", h.Patch)

		admin := trainers.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.POST("", h.Create)
			admin.DELETE("/:id", h.Delete)
		}
	}
}

func (h *TrainerHandler) List(c *gin.Context) {
	trainers, err := h.trainerService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}

func (h *TrainerHandler) Get(c *gin.Context) {
	trainer, err := h.trainerService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) Create(c *gin.Context) {
	var req dto.CreateTrainerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	trainer, err := h.trainerService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trainer)
}

func (h *TrainerHandler) Patch(c *gin.Context) {
	var req dto.UpdateTrainerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	trainer, err := h.trainerService.Patch(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) Delete(c *gin.Context) {
	if err := h.trainerService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
