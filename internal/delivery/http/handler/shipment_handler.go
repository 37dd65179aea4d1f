package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	domainShipment "package-intake/internal/domain/shipment"
	"package-intake/internal/usecase/shipment"
	appErrors "package-intake/pkg/errors"
	"package-intake/pkg/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type ShipmentHandler struct {
	service *shipment.Service
}

func NewShipmentHandler(service *shipment.Service) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/inbound-shipments")
	{
		shipments.POST("", h.CreateShipment)
		shipments.GET("", h.ListShipments)
		shipments.GET("/search", h.SearchShipments)
		shipments.POST("/search", h.SearchShipmentsByBody)
		shipments.GET("/today", h.ListToday)
		shipments.GET("/recent", h.ListRecent)
		shipments.GET("/date/:date", h.ListByScanDate)
		shipments.GET("/date-range", h.ListByScanDateRange)
		shipments.GET("/scanned", h.ListScanned)
		shipments.GET("/unscanned", h.ListUnscanned)
		shipments.GET("/scan-users", h.ListScanUsers)
		shipments.GET("/statuses", h.ListStatuses)
		shipments.GET("/tracking/:trackingNumber", h.GetByTrackingNumber)
		shipments.GET("/tracking/:trackingNumber/client/:clientId", h.LookupByTrackingForClient)
		shipments.GET("/order/:orderNumber", h.GetByOrderNumber)
		shipments.GET("/scan/:scannedNumber", h.LookupByScan)
		shipments.GET("/scan/:scannedNumber/all", h.ListByScanMatches)
		shipments.GET("/scan/:scannedNumber/client/:clientId", h.LookupByScanForClient)
		shipments.GET("/client/:client", h.ListByClient)
		shipments.GET("/status/:status", h.ListByStatus)
		shipments.GET("/:id", h.GetShipment)
		shipments.PUT("/:id", h.UpdateShipment)
		shipments.PUT("/:id/scan", h.RecordScan)
		shipments.DELETE("/:id", h.DeleteShipment)
	}
}

func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var req shipment.ShipmentRequest
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

func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ShipmentHandler) UpdateShipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req shipment.ShipmentRequest
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

func (h *ShipmentHandler) RecordScan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req shipment.ScanUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RecordScan(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	results, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ShipmentHandler) SearchShipments(c *gin.Context) {
	filter, ok := h.parseSearchFilter(c)
	if !ok {
		return
	}

	result, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchShipmentsByBody is the body-driven twin of SearchShipments for
// clients whose criteria outgrow a query string.
func (h *ShipmentHandler) SearchShipmentsByBody(c *gin.Context) {
	var req shipment.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	filter, err := req.Filter()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ShipmentHandler) parseSearchFilter(c *gin.Context) (*domainShipment.SearchFilter, bool) {
	filter := &domainShipment.SearchFilter{
		TrackingNumber: optionalQuery(c, "trackingNumber"),
		ScannedNumber:  optionalQuery(c, "scannedNumber"),
		Status:         optionalQuery(c, "status"),
		OrderNumber:    optionalQuery(c, "orderNumber"),
		Lab:            optionalQuery(c, "lab"),
		ScanUser:       optionalQuery(c, "scanUser"),
	}

	bounds := []struct {
		param string
		dest  **time.Time
	}{
		{"shipDateFrom", &filter.ShipDateFrom},
		{"shipDateTo", &filter.ShipDateTo},
		{"scanDateFrom", &filter.ScanDateFrom},
		{"scanDateTo", &filter.ScanDateTo},
		{"emailReceiveDateFrom", &filter.EmailReceiveDateFrom},
		{"emailReceiveDateTo", &filter.EmailReceiveDateTo},
		{"lastUpdateDateFrom", &filter.LastUpdateDateFrom},
		{"lastUpdateDateTo", &filter.LastUpdateDateTo},
	}
	for _, b := range bounds {
		parsed, ok := parseDateQuery(c, b.param)
		if !ok {
			return nil, false
		}
		*b.dest = parsed
	}

	// Unparsable paging values fall back to the defaults rather than failing
	// the request.
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	filter.Size, _ = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(shipment.DefaultPageSize)))

	return filter, true
}

func (h *ShipmentHandler) GetByTrackingNumber(c *gin.Context) {
	result, err := h.service.GetByTrackingNumber(c.Request.Context(), c.Param("trackingNumber"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ShipmentHandler) GetByOrderNumber(c *gin.Context) {
	result, err := h.service.GetByOrderNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ShipmentHandler) LookupByScan(c *gin.Context) {
	result, err := h.service.LookupByScan(c.Request.Context(), c.Param("scannedNumber"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ShipmentHandler) ListByScanMatches(c *gin.Context) {
	results, err := h.service.ListByScanMatches(c.Request.Context(), c.Param("scannedNumber"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ShipmentHandler) LookupByScanForClient(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("clientId"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	result, err := h.service.LookupByScanForClient(c.Request.Context(), c.Param("scannedNumber"), clientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ShipmentHandler) LookupByTrackingForClient(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("clientId"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	result, err := h.service.LookupByTrackingForClient(c.Request.Context(), c.Param("trackingNumber"), clientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ShipmentHandler) ListByClient(c *gin.Context) {
	results, err := h.service.ListByClient(c.Request.Context(), c.Param("client"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ShipmentHandler) ListByStatus(c *gin.Context) {
	results, err := h.service.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ShipmentHandler) ListScanned(c *gin.Context) {
	results, err := h.service.ListScanned(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ShipmentHandler) ListUnscanned(c *gin.Context) {
	results, err := h.service.ListUnscanned(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ShipmentHandler) ListToday(c *gin.Context) {
	results, err := h.service.ListToday(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ShipmentHandler) ListByScanDate(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		respondError(c, fmt.Errorf("%w: %q", appErrors.ErrInvalidDate, c.Param("date")))
		return
	}

	results, err := h.service.ListByScanDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ShipmentHandler) ListByScanDateRange(c *gin.Context) {
	from, ok := requireDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := requireDateQuery(c, "to")
	if !ok {
		return
	}

	results, err := h.service.ListByScanDateRange(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ShipmentHandler) ListRecent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	results, err := h.service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, results)
}

func (h *ShipmentHandler) ListScanUsers(c *gin.Context) {
	users, err := h.service.ScanUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *ShipmentHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.service.Statuses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return 0, false
	}
	return id, true
}

func optionalQuery(c *gin.Context, name string) *string {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	return &value
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		respondError(c, fmt.Errorf("%w: %s=%q", appErrors.ErrInvalidDate, name, value))
		return nil, false
	}
	return &parsed, true
}

func requireDateQuery(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		respondError(c, fmt.Errorf("%w: %s=%q", appErrors.ErrInvalidDate, name, value))
		return time.Time{}, false
	}
	return parsed, true
}

// respondList returns 204 for an empty result set, matching the consumers
// that treat "no rows" differently from an empty array.
func respondList[T any](c *gin.Context, results []T) {
	if len(results) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, results)
}
