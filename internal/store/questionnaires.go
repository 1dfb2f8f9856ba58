package store

import (
	"context"

	"homecare-tracker/internal/models"

	"gorm.io/gorm"
)

// ListQuestionnaires: clientID nil = semua questionnaire.
func (s *Store) ListQuestionnaires(ctx context.Context, clientID *uint64) ([]models.Questionnaire, error) {
	q := s.db.WithContext(ctx).Order("id")
	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}
	rows := []models.Questionnaire{}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) GetQuestionnaire(ctx context.Context, id uint64) (*models.Questionnaire, error) {
	return getByKey[models.Questionnaire](s.db.WithContext(ctx), "id", id)
}

// GetQuestionnaireWithAnswers me-resolve client dan pertanyaan dari setiap jawaban.
// Client atau pertanyaan yang hilang = ErrIntegrity.
func (s *Store) GetQuestionnaireWithAnswers(ctx context.Context, id uint64) (models.QuestionnaireWithAnswersView, error) {
	tx := s.db.WithContext(ctx)

	qn, err := getByKey[models.Questionnaire](tx, "id", id)
	if err != nil {
		return models.QuestionnaireWithAnswersView{}, err
	}
	client, err := clientView(tx, qn.ClientID)
	if err != nil {
		return models.QuestionnaireWithAnswersView{}, dangling(err, "questionnaire %d: client %d", qn.ID, qn.ClientID)
	}

	var answers []models.Answer
	if err := tx.Where("questionnaire_id = ?", qn.ID).Order("id").Find(&answers).Error; err != nil {
		return models.QuestionnaireWithAnswersView{}, err
	}

	views := make([]models.AnswerView, 0, len(answers))
	for _, a := range answers {
		question, err := getByKey[models.Question](tx, "id", a.QuestionID)
		if err != nil {
			return models.QuestionnaireWithAnswersView{}, dangling(err, "answer %d: question %d", a.ID, a.QuestionID)
		}
		views = append(views, models.AnswerView{
			QuestionID: question.ID,
			Question:   question.Question,
			Answer:     a.Answer,
		})
	}

	return models.QuestionnaireWithAnswersView{
		ID:      qn.ID,
		Client:  client,
		Time:    qn.Time,
		Answers: views,
		Redflag: qn.Redflag,
		Version: qn.Version,
	}, nil
}

func (s *Store) CreateQuestionnaire(ctx context.Context, q *models.Questionnaire) error {
	q.ID = 0
	q.Version = 1
	return s.db.WithContext(ctx).Create(q).Error
}

func (s *Store) UpdateQuestionnaire(ctx context.Context, q *models.Questionnaire) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		v, err := replace[models.Questionnaire](tx, q.ID, q.Version, q)
		if err != nil {
			return err
		}
		q.Version = v
		return nil
	})
}

// DeleteQuestionnaire ikut menghapus jawaban-jawabannya.
func (s *Store) DeleteQuestionnaire(ctx context.Context, id uint64) (*models.Questionnaire, error) {
	var out *models.Questionnaire
	err := s.tx(ctx, func(tx *gorm.DB) error {
		q, err := remove[models.Questionnaire](tx, "id", id)
		if err != nil {
			return err
		}
		if err := tx.Where("questionnaire_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		out = q
		return nil
	})
	return out, err
}

// -- Questions --

func (s *Store) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return list[models.Question](s.db.WithContext(ctx), "id")
}

func (s *Store) GetQuestion(ctx context.Context, id uint64) (*models.Question, error) {
	return getByKey[models.Question](s.db.WithContext(ctx), "id", id)
}

func (s *Store) CreateQuestion(ctx context.Context, q *models.Question) error {
	q.ID = 0
	q.Version = 1
	return s.db.WithContext(ctx).Create(q).Error
}

func (s *Store) UpdateQuestion(ctx context.Context, q *models.Question) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		v, err := replace[models.Question](tx, q.ID, q.Version, q)
		if err != nil {
			return err
		}
		q.Version = v
		return nil
	})
}

func (s *Store) DeleteQuestion(ctx context.Context, id uint64) (*models.Question, error) {
	var out *models.Question
	err := s.tx(ctx, func(tx *gorm.DB) error {
		q, err := remove[models.Question](tx, "id", id)
		out = q
		return err
	})
	return out, err
}

// -- Answers --

// CreateAnswers menyimpan semua jawaban dalam satu transaksi: semua masuk atau tidak sama sekali.
func (s *Store) CreateAnswers(ctx context.Context, answers []models.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return s.tx(ctx, func(tx *gorm.DB) error {
		return tx.Create(&answers).Error
	})
}

func (s *Store) ListAnswers(ctx context.Context, questionnaireID *uint64) ([]models.Answer, error) {
	q := s.db.WithContext(ctx).Order("id")
	if questionnaireID != nil {
		q = q.Where("questionnaire_id = ?", *questionnaireID)
	}
	rows := []models.Answer{}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) GetAnswer(ctx context.Context, id uint64) (*models.Answer, error) {
	return getByKey[models.Answer](s.db.WithContext(ctx), "id", id)
}

func (s *Store) DeleteAnswer(ctx context.Context, id uint64) (*models.Answer, error) {
	var out *models.Answer
	err := s.tx(ctx, func(tx *gorm.DB) error {
		a, err := remove[models.Answer](tx, "id", id)
		out = a
		return err
	})
	return out, err
}
