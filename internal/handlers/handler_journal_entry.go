package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizledger/journal_entry_app/internal/apperrors"
	portssvc "github.com/bizledger/journal_entry_app/internal/core/ports/services"
	"github.com/bizledger/journal_entry_app/internal/dto"
	"github.com/bizledger/journal_entry_app/internal/middleware"
)

// journalEntryHandler handles HTTP requests related to journal entries.
type journalEntryHandler struct {
	entrySvc portssvc.JournalEntrySvcFacade
}

// newJournalEntryHandler creates a new journalEntryHandler.
func newJournalEntryHandler(entrySvc portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{entrySvc: entrySvc}
}

// respondEntryError maps engine errors to HTTP statuses. Unbalanced gets its
// own status so clients can route users to balance correction.
func respondEntryError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
	case errors.Is(err, apperrors.ErrUnbalanced):
		logger.Warn("Unbalanced entry rejected at posting", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrAlreadyReversed),
		errors.Is(err, apperrors.ErrVersionConflict):
		logger.Warn("Conflicting entry action", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Entry operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// createEntry godoc
// @Summary Create a journal entry draft
// @Description Creates a DRAFT journal entry with zero or more lines
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry header and lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /journal-entries [post]
func (h *journalEntryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entrySvc.CreateEntry(c.Request.Context(), req, actorID)
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry and its lines by ID
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /journal-entries/{entryID} [get]
func (h *journalEntryHandler) getEntry(c *gin.Context) {
	entry, err := h.entrySvc.GetEntryByID(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves a filtered, paginated list of journal entries
// @Tags journal-entries
// @Produce  json
// @Param   status query string false "Status filter"
// @Param   type query string false "Entry type filter"
// @Param   from query string false "Entry date lower bound (YYYY-MM-DD)"
// @Param   to query string false "Entry date upper bound (YYYY-MM-DD)"
// @Param   search query string false "Matches entry number, description or reference"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListEntriesResponse
// @Router /journal-entries [get]
func (h *journalEntryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind list entries query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.entrySvc.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// entryAction godoc
// @Summary Apply a lifecycle action to a journal entry
// @Description Drives the entry state machine: submit, approve, reject, post, reverse or cancel
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   action body dto.EntryActionRequest true "Action, entry version and action payload"
// @Success 200 {object} dto.EntryActionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Invalid state, already reversed or version conflict"
// @Failure 422 {object} map[string]string "Entry does not balance"
// @Router /journal-entries/{entryID}/actions [post]
func (h *journalEntryHandler) entryAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.EntryActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind entry action request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx := c.Request.Context()
	switch req.Action {
	case "submit":
		entry, err := h.entrySvc.SubmitForApproval(ctx, entryID, req.Version, actorID)
		if err != nil {
			respondEntryError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.EntryActionResponse{Entry: dto.ToJournalEntryResponse(entry)})
	case "approve":
		entry, err := h.entrySvc.Approve(ctx, entryID, req.Version, actorID)
		if err != nil {
			respondEntryError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.EntryActionResponse{Entry: dto.ToJournalEntryResponse(entry)})
	case "reject":
		entry, err := h.entrySvc.Reject(ctx, entryID, req.Version, actorID, req.Reason)
		if err != nil {
			respondEntryError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.EntryActionResponse{Entry: dto.ToJournalEntryResponse(entry)})
	case "post":
		entry, err := h.entrySvc.Post(ctx, entryID, req.Version, actorID)
		if err != nil {
			respondEntryError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.EntryActionResponse{Entry: dto.ToJournalEntryResponse(entry)})
	case "reverse":
		var reversalDate time.Time
		if req.ReversalDate != nil {
			reversalDate = *req.ReversalDate
		}
		original, reversal, err := h.entrySvc.Reverse(ctx, entryID, req.Version, reversalDate, actorID)
		if err != nil {
			respondEntryError(c, err)
			return
		}
		reversalResp := dto.ToJournalEntryResponse(reversal)
		c.JSON(http.StatusOK, dto.EntryActionResponse{
			Entry:         dto.ToJournalEntryResponse(original),
			ReversalEntry: &reversalResp,
		})
	case "cancel":
		entry, err := h.entrySvc.Cancel(ctx, entryID, req.Version, actorID)
		if err != nil {
			respondEntryError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.EntryActionResponse{Entry: dto.ToJournalEntryResponse(entry)})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action: " + req.Action})
	}
}

// addLine godoc
// @Summary Add a line to a draft entry
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   line body dto.AddLineRequest true "Entry version and line"
// @Success 200 {object} dto.JournalEntryResponse
// @Router /journal-entries/{entryID}/lines [post]
func (h *journalEntryHandler) addLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind add line request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entrySvc.AddLine(c.Request.Context(), c.Param("entryID"), req, actorID)
	if err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// updateLine godoc
// @Summary Update a line on a draft entry
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   lineID path string true "Line ID"
// @Param   patch body dto.UpdateLineRequest true "Entry version and line patch"
// @Success 200 {object} dto.JournalEntryResponse
// @Router /journal-entries/{entryID}/lines/{lineID} [put]
func (h *journalEntryHandler) updateLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind update line request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entrySvc.UpdateLine(c.Request.Context(), c.Param("entryID"), c.Param("lineID"), req, actorID)
	if err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// removeLine godoc
// @Summary Remove a line from a draft entry
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   lineID path string true "Line ID"
// @Param   body body dto.RemoveLineRequest true "Entry version"
// @Success 200 {object} dto.JournalEntryResponse
// @Router /journal-entries/{entryID}/lines/{lineID} [delete]
func (h *journalEntryHandler) removeLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RemoveLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind remove line request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entrySvc.RemoveLine(c.Request.Context(), c.Param("entryID"), c.Param("lineID"), req.Version, actorID)
	if err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// RegisterJournalEntryRoutes registers journal entry specific routes.
func RegisterJournalEntryRoutes(group *gin.RouterGroup, entrySvc portssvc.JournalEntrySvcFacade) {
	handler := newJournalEntryHandler(entrySvc)

	entries := group.Group("/journal-entries")
	{
		entries.POST("", handler.createEntry)
		entries.GET("", handler.listEntries)
		entries.GET("/:entryID", handler.getEntry)
		entries.POST("/:entryID/actions", handler.entryAction)
		entries.POST("/:entryID/lines", handler.addLine)
		entries.PUT("/:entryID/lines/:lineID", handler.updateLine)
		entries.DELETE("/:entryID/lines/:lineID", handler.removeLine)
	}
}
