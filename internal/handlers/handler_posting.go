package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// postingHandler records business events: sales, purchases and expenses.
type postingHandler struct {
	postingService portssvc.PostingSvc
	namer          dto.AccountNamer
}

func newPostingHandler(ps portssvc.PostingSvc, namer dto.AccountNamer) *postingHandler {
	return &postingHandler{postingService: ps, namer: namer}
}

// RegisterPostingRoutes registers the business event routes.
func RegisterPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvc, namer dto.AccountNamer) {
	h := newPostingHandler(postingService, namer)

	rg.POST("/sales", h.recordSale)
	rg.POST("/purchases", h.recordPurchase)
	rg.POST("/expenses", h.recordExpense)
}

// recordSale godoc
// @Summary Record a sale
// @Description Decrements stock and posts the revenue and cost-of-goods entries
// @Tags events
// @Accept  json
// @Produce  json
// @Param   sale body dto.RecordSaleRequest true "Sale"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Recording failed and was rolled back"
// @Failure 500 {object} map[string]string "Chart misconfigured"
// @Router /sales [post]
func (h *postingHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	sale, err := req.ToDomain()
	if err != nil {
		respondBindError(c, logger, err)
		return
	}

	posted, err := h.postingService.RecordSale(c.Request.Context(), sale)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record sale")
		return
	}

	logger.Info("Sale recorded", slog.String("event_id", posted.EventID), slog.Int("entries", len(posted.Entries)))
	c.JSON(http.StatusCreated, dto.ToPostingResponse(posted, h.namer))
}

// recordPurchase godoc
// @Summary Record a purchase
// @Description Increments stock and posts the inventory entry
// @Tags events
// @Accept  json
// @Produce  json
// @Param   purchase body dto.RecordPurchaseRequest true "Purchase"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Recording failed and was rolled back"
// @Router /purchases [post]
func (h *postingHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	purchase, err := req.ToDomain()
	if err != nil {
		respondBindError(c, logger, err)
		return
	}

	posted, err := h.postingService.RecordPurchase(c.Request.Context(), purchase)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record purchase")
		return
	}

	logger.Info("Purchase recorded", slog.String("event_id", posted.EventID))
	c.JSON(http.StatusCreated, dto.ToPostingResponse(posted, h.namer))
}

// recordExpense godoc
// @Summary Record an expense
// @Description Classifies the expense and posts it against cash or accounts payable
// @Tags events
// @Accept  json
// @Produce  json
// @Param   expense body dto.RecordExpenseRequest true "Expense"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /expenses [post]
func (h *postingHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	expense, err := req.ToDomain()
	if err != nil {
		respondBindError(c, logger, err)
		return
	}

	posted, err := h.postingService.RecordExpense(c.Request.Context(), expense)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record expense")
		return
	}

	logger.Info("Expense recorded", slog.String("event_id", posted.EventID))
	c.JSON(http.StatusCreated, dto.ToPostingResponse(posted, h.namer))
}
