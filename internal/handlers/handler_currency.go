package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizledger/journal_entry_app/internal/apperrors"
	portssvc "github.com/bizledger/journal_entry_app/internal/core/ports/services"
	"github.com/bizledger/journal_entry_app/internal/middleware"
)

// currencyHandler handles HTTP requests for currency reference data.
type currencyHandler struct {
	currencySvc portssvc.CurrencySvcFacade
}

func newCurrencyHandler(currencySvc portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencySvc: currencySvc}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Tags currencies
// @Produce  json
// @Success 200 {array} domain.Currency
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencySvc.ListCurrencies(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list currencies", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currencies"})
		return
	}
	c.JSON(http.StatusOK, currencies)
}

// getCurrency godoc
// @Summary Get a currency by code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency code"
// @Success 200 {object} domain.Currency
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	currency, err := h.currencySvc.GetCurrencyByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		return
	}
	c.JSON(http.StatusOK, currency)
}

// RegisterCurrencyRoutes registers currency specific routes.
func RegisterCurrencyRoutes(group *gin.RouterGroup, currencySvc portssvc.CurrencySvcFacade) {
	handler := newCurrencyHandler(currencySvc)

	currencies := group.Group("/currencies")
	{
		currencies.GET("", handler.listCurrencies)
		currencies.GET("/:code", handler.getCurrency)
	}
}
