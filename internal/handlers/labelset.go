package handlers

import (
	"net/http"
	"strconv"

	"anatomy-explorer-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LabelSetHandler struct {
	labelSetService *services.LabelSetService
}

func NewLabelSetHandler(labelSetService *services.LabelSetService) *LabelSetHandler {
	return &LabelSetHandler{labelSetService: labelSetService}
}

// Create godoc
// @Summary      Create a label set
// @Description  Mints a fresh UUID and stores the set under it
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        request body LabelSet true "Label set"
// @Success      200 {string} string "uuid"
// @Failure      400 {object} ErrorResponse
// @Router       /labels/ [post]
func (h *LabelSetHandler) Create(c *gin.Context) {
	h.upsert(c, uuid.NewString())
}

// Put godoc
// @Summary      Create or replace a label set
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        uuid path string true "Label set UUID"
// @Param        request body LabelSet true "Label set"
// @Success      200 {string} string "uuid"
// @Failure      400 {object} ErrorResponse
// @Router       /labels/{uuid} [put]
func (h *LabelSetHandler) Put(c *gin.Context) {
	id, ok := parseUUID(c, "uuid")
	if !ok {
		return
	}
	h.upsert(c, id)
}

func (h *LabelSetHandler) upsert(c *gin.Context, id string) {
	var req services.LabelSetInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.labelSetService.Upsert(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, id)
}

// Get godoc
// @Summary      Get a label set
// @Description  The reference is the integer id, or the UUID
// @Tags         labels
// @Produce      json
// @Param        id path string true "Label set id or UUID"
// @Success      200 {object} LabelSet
// @Failure      404 {object} nil
// @Router       /labels/{id} [get]
func (h *LabelSetHandler) Get(c *gin.Context) {
	ref := c.Param("id")
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		h.respond(c)(h.labelSetService.GetByID(id))
		return
	}
	if id, err := uuid.Parse(ref); err == nil {
		h.respond(c)(h.labelSetService.GetByUUID(id.String()))
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
}

// GetByUUID godoc
// @Summary      Get a label set by UUID
// @Tags         labels
// @Produce      json
// @Param        uuid path string true "Label set UUID"
// @Success      200 {object} LabelSet
// @Failure      404 {object} nil
// @Router       /labels/uuid/{uuid} [get]
func (h *LabelSetHandler) GetByUUID(c *gin.Context) {
	id, ok := parseUUID(c, "uuid")
	if !ok {
		return
	}
	h.respond(c)(h.labelSetService.GetByUUID(id))
}

func (h *LabelSetHandler) respond(c *gin.Context) func(*services.LabelSetInput, error) {
	return func(set *services.LabelSetInput, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, set)
	}
}

// Delete godoc
// @Summary      Delete a label set and its labels
// @Tags         labels
// @Param        uuid path string true "Label set UUID"
// @Success      200
// @Failure      404 {object} nil
// @Router       /labels/{uuid} [delete]
func (h *LabelSetHandler) Delete(c *gin.Context) {
	id, ok := parseUUID(c, "uuid")
	if !ok {
		return
	}
	if err := h.labelSetService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
