package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvc) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvc) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/resolve", h.resolveAccount)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Retrieves every account of the active chart, ordered by account id
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts := h.accountService.ListAccounts(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// resolveAccount godoc
// @Summary Resolve an account name
// @Description Maps a user-entered account name to its account
// @Tags accounts
// @Produce  json
// @Param   name query string true "Account name"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Missing name"
// @Failure 404 {object} map[string]string "Unknown account"
// @Router /accounts/resolve [get]
func (h *accountHandler) resolveAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ResolveAccountParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	account, err := h.accountService.ResolveAccountName(c.Request.Context(), params.Name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve account")
		return
	}

	logger.Debug("Account resolved", slog.String("name", params.Name), slog.String("account_id", account.ID))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
