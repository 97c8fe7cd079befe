package handlers

import (
	"net/http"
	"strconv"

	"anatomy-explorer-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Mints a fresh UUID; any id in the body is ignored. Answers null with 404 when labelSet does not exist.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body Quiz true "Quiz"
// @Success      200 {string} string "uuid"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} nil
// @Router       /quiz/ [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	h.upsert(c, uuid.NewString(), true)
}

// PutQuiz godoc
// @Summary      Create or replace a quiz
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        uuid path string true "Quiz UUID"
// @Param        request body Quiz true "Quiz"
// @Success      200 {string} string "uuid"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} nil
// @Router       /quiz/{uuid} [put]
func (h *QuizHandler) PutQuiz(c *gin.Context) {
	id, ok := parseUUID(c, "uuid")
	if !ok {
		return
	}
	h.upsert(c, id, false)
}

func (h *QuizHandler) upsert(c *gin.Context, id string, fresh bool) {
	var req services.QuizInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if fresh {
		req.ID = nil
	}

	id, err := h.quizService.Upsert(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, id)
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Description  The reference is the integer id, or the UUID
// @Tags         quizzes
// @Produce      json
// @Param        id path string true "Quiz id or UUID"
// @Success      200 {object} Quiz
// @Failure      404 {object} nil
// @Router       /quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	ref := c.Param("id")

	var (
		quiz *services.QuizInput
		err  error
	)
	if id, perr := strconv.ParseInt(ref, 10, 64); perr == nil {
		quiz, err = h.quizService.GetByID(id)
	} else if id, perr := uuid.Parse(ref); perr == nil {
		quiz, err = h.quizService.GetByUUID(id.String())
	} else {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// GetQuizByUUID godoc
// @Summary      Get a quiz by UUID
// @Tags         quizzes
// @Produce      json
// @Param        uuid path string true "Quiz UUID"
// @Success      200 {object} Quiz
// @Failure      404 {object} nil
// @Router       /quiz/uuid/{uuid} [get]
func (h *QuizHandler) GetQuizByUUID(c *gin.Context) {
	id, ok := parseUUID(c, "uuid")
	if !ok {
		return
	}
	quiz, err := h.quizService.GetByUUID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Description  Also removes its questions and every user's membership of it
// @Tags         quizzes
// @Param        uuid path string true "Quiz UUID"
// @Success      200
// @Failure      404 {object} nil
// @Router       /quiz/{uuid} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	id, ok := parseUUID(c, "uuid")
	if !ok {
		return
	}
	if err := h.quizService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
