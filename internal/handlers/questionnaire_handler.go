package handlers

import (
	"net/http"

	"homecare-tracker/internal/models"
	"homecare-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/Questionnaires?clientId=
func (h *Handler) ListQuestionnaires(c *gin.Context) {
	clientID, ok := queryID(c, "clientId")
	if !ok {
		return
	}

	questionnaires, err := h.store.ListQuestionnaires(c.Request.Context(), clientID)
	if err != nil {
		h.fail(c, err, "Questionnaire")
		return
	}
	respondList(c, questionnaires)
}

// GET /api/Questionnaires/:id: beserta client & jawaban (dengan teks pertanyaan).
func (h *Handler) GetQuestionnaire(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	questionnaire, err := h.store.GetQuestionnaireWithAnswers(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Questionnaire")
		return
	}
	c.JSON(http.StatusOK, questionnaire)
}

func (h *Handler) CreateQuestionnaire(c *gin.Context) {
	var input models.CreateQuestionnaireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	questionnaire := models.Questionnaire{
		Time:     input.Time,
		ClientID: input.ClientID,
		Redflag:  input.Redflag,
	}
	if err := h.store.CreateQuestionnaire(c.Request.Context(), &questionnaire); err != nil {
		h.fail(c, err, "Questionnaire")
		return
	}
	c.JSON(http.StatusCreated, questionnaire)
}

func (h *Handler) UpdateQuestionnaire(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input models.UpdateQuestionnaireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}
	if !checkBodyID(c, id, input.ID) {
		return
	}

	questionnaire := models.Questionnaire{
		ID:       input.ID,
		Time:     input.Time,
		ClientID: input.ClientID,
		Redflag:  input.Redflag,
		Version:  input.Version,
	}
	if err := h.store.UpdateQuestionnaire(c.Request.Context(), &questionnaire); err != nil {
		h.fail(c, err, "Questionnaire")
		return
	}
	utils.NoContent(c)
}

// DELETE /api/Questionnaires/:id: jawaban ikut terhapus.
func (h *Handler) DeleteQuestionnaire(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	questionnaire, err := h.store.DeleteQuestionnaire(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Questionnaire")
		return
	}
	c.JSON(http.StatusOK, questionnaire)
}

// -- Questions --

func (h *Handler) ListQuestions(c *gin.Context) {
	questions, err := h.store.ListQuestions(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Question")
		return
	}
	respondList(c, questions)
}

func (h *Handler) GetQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	question, err := h.store.GetQuestion(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Question")
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *Handler) CreateQuestion(c *gin.Context) {
	var input models.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	question := models.Question{Question: input.Question}
	if err := h.store.CreateQuestion(c.Request.Context(), &question); err != nil {
		h.fail(c, err, "Question")
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *Handler) UpdateQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input models.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}
	if !checkBodyID(c, id, input.ID) {
		return
	}

	question := models.Question{ID: input.ID, Question: input.Question, Version: input.Version}
	if err := h.store.UpdateQuestion(c.Request.Context(), &question); err != nil {
		h.fail(c, err, "Question")
		return
	}
	utils.NoContent(c)
}

func (h *Handler) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	question, err := h.store.DeleteQuestion(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Question")
		return
	}
	c.JSON(http.StatusOK, question)
}

// -- Answers --

// POST /api/Answers: bulk insert, satu transaksi.
func (h *Handler) CreateAnswers(c *gin.Context) {
	var input []models.AnswerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}
	if len(input) == 0 {
		utils.FieldErrorResponse(c, "body", "at least one answer is required")
		return
	}

	answers := make([]models.Answer, 0, len(input))
	for _, in := range input {
		answers = append(answers, models.Answer{
			QuestionnaireID: in.QuestionnaireID,
			QuestionID:      in.QuestionID,
			Answer:          in.Answer,
		})
	}
	if err := h.store.CreateAnswers(c.Request.Context(), answers); err != nil {
		h.fail(c, err, "Answer")
		return
	}
	utils.NoContent(c)
}

// GET /api/Answers?questionnaireId=
func (h *Handler) ListAnswers(c *gin.Context) {
	questionnaireID, ok := queryID(c, "questionnaireId")
	if !ok {
		return
	}

	answers, err := h.store.ListAnswers(c.Request.Context(), questionnaireID)
	if err != nil {
		h.fail(c, err, "Answer")
		return
	}
	respondList(c, answers)
}

func (h *Handler) GetAnswer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	answer, err := h.store.GetAnswer(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Answer")
		return
	}
	c.JSON(http.StatusOK, answer)
}

func (h *Handler) DeleteAnswer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	answer, err := h.store.DeleteAnswer(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Answer")
		return
	}
	c.JSON(http.StatusOK, answer)
}
