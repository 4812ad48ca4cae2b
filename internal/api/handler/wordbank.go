package handler

import (
	"net/http"

	"github.com/partygamehq/partygame-go/internal/api/response"
	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/services/wordbank"
)

// WordBankHandler handles word bank endpoints
type WordBankHandler struct {
	wordBank *wordbank.Service
}

// NewWordBankHandler creates a new word bank handler
func NewWordBankHandler(wordBank *wordbank.Service) *WordBankHandler {
	return &WordBankHandler{wordBank: wordBank}
}

// Categories handles GET /api/v1/categories
func (h *WordBankHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := h.wordBank.Categories()
	if categories == nil {
		categories = []model.WordCategory{}
	}

	response.JSON(w, http.StatusOK, response.Categories{
		Success:    true,
		Categories: categories,
	})
}
