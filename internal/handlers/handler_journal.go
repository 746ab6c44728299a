package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	namer          dto.AccountNamer
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade, namer dto.AccountNamer) *journalHandler {
	return &journalHandler{
		journalService: journalService,
		namer:          namer,
	}
}

// RegisterJournalRoutes registers journal specific routes
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, namer dto.AccountNamer) {
	h := newJournalHandler(journalService, namer)

	journals := rg.Group("/journal")
	{
		journals.GET("", h.listJournals)
		journals.POST("", h.createManualEntry)
		journals.GET("/:entryID", h.getJournal)
		journals.PUT("/:entryID", h.updateManualEntry)
		journals.DELETE("/:entryID", h.deleteJournal)
	}
}

// createManualEntry godoc
// @Summary Create a manual journal entry
// @Description Validates a user-composed entry (account names, balanced debits and credits) and appends it to the ledger
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   entry body dto.ManualEntryRequest true "Manual entry"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 422 {object} map[string]string "Entry rejected"
// @Failure 500 {object} map[string]string "Failed to create journal entry"
// @Router /journal [post]
func (h *journalHandler) createManualEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	entry, err := h.journalService.CreateManualEntry(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create journal entry")
		return
	}

	logger.Info("Manual journal entry created", slog.String("entry_id", entry.ID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(entry, h.namer))
}

// updateManualEntry godoc
// @Summary Edit a journal entry
// @Description Replaces date, description, reference and lines of an entry; id, creation time and origin are kept
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.ManualEntryRequest true "Manual entry"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 422 {object} map[string]string "Entry rejected"
// @Router /journal/{entryID} [put]
func (h *journalHandler) updateManualEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	entry, err := h.journalService.UpdateManualEntry(c.Request.Context(), entryID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update journal entry")
		return
	}

	logger.Info("Journal entry updated", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToJournalResponse(entry, h.namer))
}

// getJournal godoc
// @Summary Get a journal entry
// @Tags journal
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /journal/{entryID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.journalService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(entry, h.namer))
}

// listJournals godoc
// @Summary List journal entries
// @Description Lists entries newest first (creation time, then entry date) with token pagination
// @Tags journal
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 500)"
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /journal [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	res, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, res)
}

// deleteJournal godoc
// @Summary Delete a journal entry
// @Tags journal
// @Param   entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /journal/{entryID} [delete]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	if err := h.journalService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete journal entry")
		return
	}

	logger.Info("Journal entry deleted", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}
