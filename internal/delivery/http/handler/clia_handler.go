package handler

import (
	"net/http"
	"strconv"

	"package-intake/internal/usecase/clia"
	"package-intake/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CLIAHandler serves both CLIA rosters; the two differ only in which service
// backs the routes.
type CLIAHandler struct {
	admins  *clia.AdminService
	members *clia.MemberService
}

func NewCLIAHandler(admins *clia.AdminService, members *clia.MemberService) *CLIAHandler {
	return &CLIAHandler{admins: admins, members: members}
}

func (h *CLIAHandler) RegisterRoutes(router *gin.RouterGroup) {
	admins := router.Group("/clia-admins")
	{
		admins.POST("", h.CreateAdmin)
		admins.GET("", h.ListAdmins)
		admins.GET("/user/:userId", h.GetAdminByUserID)
		admins.GET("/user/:userId/exists", h.AdminExists)
		admins.GET("/:id", h.GetAdmin)
		admins.PUT("/:id", h.UpdateAdmin)
		admins.DELETE("/:id", h.DeleteAdmin)
	}

	members := router.Group("/clia-members")
	{
		members.POST("", h.CreateMember)
		members.GET("", h.ListMembers)
		members.GET("/user/:userId", h.GetMemberByUserID)
		members.GET("/user/:userId/exists", h.MemberExists)
		members.GET("/:id", h.GetMember)
		members.PUT("/:id", h.UpdateMember)
		members.DELETE("/:id", h.DeleteMember)
	}
}

func (h *CLIAHandler) CreateAdmin(c *gin.Context) {
	var req clia.RosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.admins.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *CLIAHandler) GetAdmin(c *gin.Context) {
	id, ok := parseRosterID(c)
	if !ok {
		return
	}

	result, err := h.admins.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CLIAHandler) GetAdminByUserID(c *gin.Context) {
	result, err := h.admins.GetByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CLIAHandler) AdminExists(c *gin.Context) {
	exists, err := h.admins.IsAdmin(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (h *CLIAHandler) UpdateAdmin(c *gin.Context) {
	id, ok := parseRosterID(c)
	if !ok {
		return
	}

	var req clia.RosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.admins.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CLIAHandler) DeleteAdmin(c *gin.Context) {
	id, ok := parseRosterID(c)
	if !ok {
		return
	}

	if err := h.admins.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CLIAHandler) ListAdmins(c *gin.Context) {
	results, err := h.admins.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *CLIAHandler) CreateMember(c *gin.Context) {
	var req clia.RosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.members.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *CLIAHandler) GetMember(c *gin.Context) {
	id, ok := parseRosterID(c)
	if !ok {
		return
	}

	result, err := h.members.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CLIAHandler) GetMemberByUserID(c *gin.Context) {
	result, err := h.members.GetByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CLIAHandler) MemberExists(c *gin.Context) {
	exists, err := h.members.IsMember(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (h *CLIAHandler) UpdateMember(c *gin.Context) {
	id, ok := parseRosterID(c)
	if !ok {
		return
	}

	var req clia.RosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.members.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CLIAHandler) DeleteMember(c *gin.Context) {
	id, ok := parseRosterID(c)
	if !ok {
		return
	}

	if err := h.members.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CLIAHandler) ListMembers(c *gin.Context) {
	results, err := h.members.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func parseRosterID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid roster ID")
		return 0, false
	}
	return id, true
}
