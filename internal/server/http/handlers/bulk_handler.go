package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/server/http/dto"
)

// BulkHandler exposes batch actions for one entity scope.
type BulkHandler struct {
	facade BulkFacade
	scope  model.BulkScope
}

// NewBulkHandler constructs BulkHandler bound to scope.
func NewBulkHandler(facade BulkFacade, scope model.BulkScope) *BulkHandler {
	return &BulkHandler{facade: facade, scope: scope}
}

// Execute handles POST /api/admin/{products,orders}/bulk.
func (h *BulkHandler) Execute(c *gin.Context) {
	var req dto.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.facade.ExecuteBulk(c.Request.Context(), model.BulkActionRequest{
		Scope:     h.scope,
		Action:    model.BulkAction(strings.ToLower(strings.TrimSpace(req.Action))),
		TargetIDs: req.IDs,
		AdminID:   CurrentAdminID(c),
	}, CurrentCapabilities(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkResponse{
		Success:     true,
		Message:     result.Message,
		Scope:       string(result.Scope),
		Action:      string(result.Action),
		Affected:    result.Affected,
		AffectedIDs: result.AffectedIDs,
	})
}
