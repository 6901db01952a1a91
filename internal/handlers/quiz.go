package handlers

import (
	"fmt"
	"net/http"

	"JEWELVISTA_BACK-END/internal/dto"
	"JEWELVISTA_BACK-END/internal/models"
	"JEWELVISTA_BACK-END/internal/utils"
)

// heritageQuestions is the fixed heritage trivia set
var heritageQuestions = []models.QuizQuestion{
	{
		ID:       1,
		Question: "What does the 'Peacock' (Mayil) motif symbolize in bridal jewelry?",
		Options:  []string{"Wealth", "Beauty and Royalty", "Strength", "Longevity"},
		Correct:  "Beauty and Royalty",
	},
	{
		ID:       2,
		Question: "The 'Manga' (Mango) pattern is most commonly found in which necklace?",
		Options:  []string{"Kasu Mala", "Manga Haram", "Temple Haram", "Vanki"},
		Correct:  "Manga Haram",
	},
}

// QuizHandler serves and scores the heritage trivia quiz
type QuizHandler struct {
	questions []models.QuizQuestion
}

// NewQuizHandler creates a QuizHandler over the default question set
func NewQuizHandler() *QuizHandler {
	return &QuizHandler{questions: heritageQuestions}
}

// Quiz dispatches GET (serve) and POST (score) for /quiz
// @Summary Heritage quiz
// @Description GET returns the questions; POST scores submitted answers
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizSubmission false "Answers keyed q1, q2, ..."
// @Success 200 {object} dto.QuizResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quiz [post]
func (h *QuizHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.serve(w)
	case http.MethodPost:
		h.score(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *QuizHandler) serve(w http.ResponseWriter) {
	questions := make([]dto.QuizQuestionItem, 0, len(h.questions))
	for _, q := range h.questions {
		questions = append(questions, dto.QuizQuestionItem{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.QuizResponse{Questions: questions})
}

// score grades answers by exact string equality; passing is a perfect score
func (h *QuizHandler) score(w http.ResponseWriter, r *http.Request) {
	answers := map[string]string{}
	if utils.IsJSONRequest(r) {
		var sub dto.QuizSubmission
		if err := utils.DecodeJSONRequest(w, r, &sub); err != nil {
			return
		}
		answers = sub.Answers
	} else {
		if err := r.ParseForm(); err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid form data", err.Error())
			return
		}
		for _, q := range h.questions {
			key := fmt.Sprintf("q%d", q.ID)
			answers[key] = r.PostFormValue(key)
		}
	}

	score := 0
	for _, q := range h.questions {
		if answers[fmt.Sprintf("q%d", q.ID)] == q.Correct {
			score++
		}
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.QuizResultResponse{
		Score:  score,
		Total:  len(h.questions),
		Passed: score == len(h.questions),
	})
}
