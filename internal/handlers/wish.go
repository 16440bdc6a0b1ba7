package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elsmrh/sami-yaya/internal/wishes"
	"github.com/elsmrh/sami-yaya/pkg/response"
)

// WishHandler serves AI-suggested guest-book wishes.
type WishHandler struct {
	svc *wishes.Service
}

func NewWishHandler(svc *wishes.Service) *WishHandler {
	return &WishHandler{svc: svc}
}

type wishRequest struct {
	Relationship string `json:"relationship" validate:"required"`
	Tone         string `json:"tone" validate:"required,oneof=Formel Drôle Touchant Poétique"`
}

// POST /api/wish
func (h *WishHandler) Suggest(c *gin.Context) {
	var req wishRequest
	if !bindAndValidate(c, &req) {
		return
	}

	wish := h.svc.Generate(c.Request.Context(), req.Relationship, req.Tone)
	response.Success(c, http.StatusOK, gin.H{"wish": wish})
}
