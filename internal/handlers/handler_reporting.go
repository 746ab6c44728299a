package handlers

import (
	"net/http"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getFinancialSummary)
		reportingGroup.GET("/balances", h.getAccountBalances)
	}
}

// periodFromQuery binds the optional report window. It writes the error response itself and
// returns ok=false when the query is unusable.
func periodFromQuery(c *gin.Context) (*domain.Period, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return nil, false
	}
	if params.StartDate == "" && params.EndDate == "" {
		return nil, true
	}
	if params.StartDate == "" || params.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate must be given together"})
		return nil, false
	}

	period, err := domain.NewPeriod(params.StartDate, params.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &period, true
}

// getFinancialSummary godoc
// @Summary Financial statements
// @Description Income statement, balance sheet and cash-flow summary. Without dates the whole ledger is covered; with dates, opening balances plus the activity of the period
// @Tags reports
// @Produce  json
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/summary [get]
func (h *reportingHandler) getFinancialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := periodFromQuery(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.GetFinancialSummary(c.Request.Context(), period)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build financial summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}

// getAccountBalances godoc
// @Summary Account balances
// @Description Every account of the chart with its raw (debit-positive) and display balance
// @Tags reports
// @Produce  json
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD), inclusive"
// @Success 200 {array} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Router /reports/balances [get]
func (h *reportingHandler) getAccountBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := periodFromQuery(c)
	if !ok {
		return
	}

	balances, err := h.reportingService.GetAccountBalances(c.Request.Context(), period)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list account balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountBalanceResponses(balances))
}
