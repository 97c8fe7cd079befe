package handlers

import (
	"net/http"

	"anatomy-explorer-backend/internal/middleware"
	"anatomy-explorer-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipService *services.MembershipService
}

func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// AddLabelSet godoc
// @Summary      Add a label set to the current user
// @Description  Adding a set twice is an error
// @Tags         membership
// @Param        uuid path string true "Label set UUID"
// @Success      200
// @Failure      404 {object} nil
// @Failure      500 {object} ErrorResponse
// @Router       /users/labelsets/{uuid} [put]
func (h *MembershipHandler) AddLabelSet(c *gin.Context) {
	h.mutate(c, h.membershipService.AddLabelSet)
}

// RemoveLabelSet godoc
// @Summary      Remove a label set from the current user
// @Tags         membership
// @Param        uuid path string true "Label set UUID"
// @Success      200
// @Failure      404 {object} nil
// @Router       /users/labelsets/{uuid} [delete]
func (h *MembershipHandler) RemoveLabelSet(c *gin.Context) {
	h.mutate(c, h.membershipService.RemoveLabelSet)
}

// ListLabelSets godoc
// @Summary      Label sets the current user has added
// @Tags         membership
// @Produce      json
// @Success      200 {array} MemberItem
// @Router       /users/labelsets [get]
func (h *MembershipHandler) ListLabelSets(c *gin.Context) {
	h.list(c, h.membershipService.ListLabelSets)
}

// AddQuiz godoc
// @Summary      Add a quiz to the current user
// @Tags         membership
// @Param        uuid path string true "Quiz UUID"
// @Success      200
// @Failure      404 {object} nil
// @Failure      500 {object} ErrorResponse
// @Router       /users/quizzes/{uuid} [put]
func (h *MembershipHandler) AddQuiz(c *gin.Context) {
	h.mutate(c, h.membershipService.AddQuiz)
}

// RemoveQuiz godoc
// @Summary      Remove a quiz from the current user
// @Tags         membership
// @Param        uuid path string true "Quiz UUID"
// @Success      200
// @Failure      404 {object} nil
// @Router       /users/quizzes/{uuid} [delete]
func (h *MembershipHandler) RemoveQuiz(c *gin.Context) {
	h.mutate(c, h.membershipService.RemoveQuiz)
}

// ListQuizzes godoc
// @Summary      Quizzes the current user has added
// @Tags         membership
// @Produce      json
// @Success      200 {array} MemberItem
// @Router       /users/quizzes [get]
func (h *MembershipHandler) ListQuizzes(c *gin.Context) {
	h.list(c, h.membershipService.ListQuizzes)
}

func (h *MembershipHandler) mutate(c *gin.Context, op func(userID int64, uuid string) error) {
	id, ok := parseUUID(c, "uuid")
	if !ok {
		return
	}
	if err := op(middleware.UserFrom(c).ID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *MembershipHandler) list(c *gin.Context, op func(userID int64) ([]services.MemberItem, error)) {
	items, err := op(middleware.UserFrom(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
