package handler

import (
	"net/http"
	"strconv"

	domainReference "package-intake/internal/domain/reference"
	"package-intake/internal/usecase/reference"
	"package-intake/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	service *reference.Service
}

func NewReferenceHandler(service *reference.Service) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

func (h *ReferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	refs := router.Group("/inbound-shipment-references")
	{
		refs.POST("", h.CreateReference)
		refs.GET("", h.ListReferences)
		refs.GET("/type/:type", h.ListByType)
		refs.GET("/find", h.FindByTypeAndValue)
		refs.POST("/find-or-create", h.FindOrCreateReference)
		refs.GET("/:id", h.GetReference)
		refs.PUT("/:id", h.UpdateReference)
		refs.DELETE("/:id", h.DeleteReference)
	}
}

func (h *ReferenceHandler) CreateReference(c *gin.Context) {
	var req reference.CreateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *ReferenceHandler) GetReference(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid reference ID")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReferenceHandler) UpdateReference(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid reference ID")
		return
	}

	var req reference.UpdateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReferenceHandler) DeleteReference(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid reference ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReferenceHandler) FindByTypeAndValue(c *gin.Context) {
	refType := c.Query("type")
	value := c.Query("value")
	if refType == "" || value == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing type or value parameter")
		return
	}

	ref, err := h.service.Lookup(c.Request.Context(), refType, value)
	if err != nil {
		respondError(c, err)
		return
	}
	if ref == nil {
		respondError(c, domainReference.ErrReferenceNotFound)
		return
	}

	c.JSON(http.StatusOK, ref)
}

func (h *ReferenceHandler) FindOrCreateReference(c *gin.Context) {
	var req reference.FindOrCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ref, created, err := h.service.FindOrCreateFromRequest(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, ref)
}

func (h *ReferenceHandler) ListReferences(c *gin.Context) {
	results, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ReferenceHandler) ListByType(c *gin.Context) {
	results, err := h.service.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}
