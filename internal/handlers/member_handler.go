package handlers

import (
	"net/http"

	"gymfit_backend/internal/middleware"
	"gymfit_backend/internal/models"
	"gymfit_backend/internal/services"
	"gymfit_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	*BaseHandler
	memberService services.MemberService
}

func NewMemberHandler(base *BaseHandler, memberService services.MemberService) *MemberHandler {
	return &MemberHandler{
		BaseHandler:   base,
		memberService: memberService,
	}
}

// RegisterRoutes registers member routes. Reads require authentication;
// attach and detach are reserved for admins.
func (h *MemberHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	members := rg.Group("/members")
	members.Use(authMW)
	{
		members.GET("", h.List)
		members.GET("/:id", h.Get)
		members.PATCH("/:id", h.Patch)

		admin := members.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.POST("", h.Create)
			admin.DELETE("/:id", h.Delete)
		}
	}
}

func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.memberService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req dto.CreateMemberRequest
	if !h.BindJSON(c, &req) {
		return
	}

	member, err := h.memberService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) Patch(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if !h.BindJSON(c, &req) {
		return
	}

	member, err := h.memberService.Patch(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.memberService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
