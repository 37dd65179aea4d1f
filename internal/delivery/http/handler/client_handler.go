package handler

import (
	"net/http"
	"strconv"

	"package-intake/internal/usecase/client"
	"package-intake/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	service *client.Service
}

func NewClientHandler(service *client.Service) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) RegisterRoutes(router *gin.RouterGroup) {
	clients := router.Group("/clients")
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/search", h.SearchClients)
		clients.GET("/name/:name", h.GetByName)
		clients.GET("/updated-by/:user", h.ListByLastUpdateUser)
		clients.GET("/:id", h.GetClient)
		clients.GET("/:id/exists", h.ClientExists)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req client.ClientRequest
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

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ClientHandler) ClientExists(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	exists, err := h.service.Exists(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (h *ClientHandler) GetByName(c *gin.Context) {
	result, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	var req client.ClientRequest
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

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	results, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ClientHandler) ListByLastUpdateUser(c *gin.Context) {
	results, err := h.service.ListByLastUpdateUser(c.Request.Context(), c.Param("user"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ClientHandler) SearchClients(c *gin.Context) {
	term := c.Query("name")
	if term == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing name parameter")
		return
	}

	results, err := h.service.SearchByName(c.Request.Context(), term)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}
