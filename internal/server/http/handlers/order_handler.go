package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/server/http/dto"
)

// OrderHandler manages single-order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Details handles GET /api/admin/orders/:id.
func (h *OrderHandler) Details(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	details, err := h.facade.OrderDetails(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// Transition handles POST /api/admin/orders/:id/status.
func (h *OrderHandler) Transition(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.facade.TransitionOrder(c.Request.Context(), orderID, req.Status, CurrentAdminID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransitionResponse{
		Success:        true,
		Message:        result.Message,
		OrderID:        result.OrderID,
		PreviousStatus: string(result.PreviousStatus),
		Status:         string(result.Status),
		RestockedItems: result.RestockedItems,
	})
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid order id")
		return 0, false
	}
	return id, true
}

func toOrderDetailsResponse(details *model.OrderDetails) dto.OrderDetailsResponse {
	order := details.Order
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	history := make([]dto.HistoryEntryResponse, 0, len(details.History))
	for _, e := range details.History {
		history = append(history, dto.HistoryEntryResponse{
			Status:    string(e.Status),
			Note:      e.Note,
			AdminID:   e.AdminID,
			CreatedAt: e.CreatedAt,
		})
	}

	next := make([]string, 0, len(details.NextAllowed))
	for _, s := range details.NextAllowed {
		next = append(next, string(s))
	}

	return dto.OrderDetailsResponse{
		Success:     true,
		ID:          order.ID,
		Status:      string(order.Status),
		Total:       order.Total.StringFixed(2),
		Items:       items,
		History:     history,
		NextAllowed: next,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
