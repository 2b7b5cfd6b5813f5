package handlers

import (
	"net/http"

	"bookmychair/models"
	"bookmychair/services/chair"
	"bookmychair/utils"

	"github.com/gin-gonic/gin"
)

// ChairHandler serves the chair directory.
type ChairHandler struct {
	Service chair.ChairService
}

func NewChairHandler(svc chair.ChairService) *ChairHandler {
	return &ChairHandler{Service: svc}
}

func (h *ChairHandler) AddChairHandler(c *gin.Context) {
	var in models.NewChairInput
	if !bindBody(c, &in, "Invalid chair payload.") {
		return
	}
	created, err := h.Service.AddChair(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"chair": created})
}

// GetChairsHandler handles GET /chairs?type=&status=.
func (h *ChairHandler) GetChairsHandler(c *gin.Context) {
	var filter models.ChairFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query.", err.Error())
		return
	}
	chairs, err := h.Service.ListChairs(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if chairs == nil {
		chairs = []models.Chair{}
	}
	c.JSON(http.StatusOK, gin.H{"chairs": chairs})
}

func (h *ChairHandler) BlockChairHandler(c *gin.Context) {
	updated, err := h.Service.BlockChair(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chair": updated})
}

func (h *ChairHandler) SetChairStatusHandler(c *gin.Context) {
	var in models.StatusInput
	if !bindBody(c, &in, "Invalid status payload.") {
		return
	}
	updated, err := h.Service.SetStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chair": updated})
}

func (h *ChairHandler) DeleteChairHandler(c *gin.Context) {
	if err := h.Service.DeleteChair(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chair deleted"})
}
