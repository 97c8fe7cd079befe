package services

import (
	"errors"
	"fmt"

	"anatomy-explorer-backend/internal/models"

	"gorm.io/gorm"
)

type QuizInput struct {
	ID        *int64          `json:"id,omitempty"`
	UUID      *string         `json:"uuid,omitempty"`
	Name      string          `json:"name" example:"Cranial nerves"`
	LabelSet  int64           `json:"labelSet" example:"1"`
	Shuffle   bool            `json:"shuffle"`
	Questions []QuestionInput `json:"questions"`
}

type QuestionInput struct {
	ID           *int64  `json:"id,omitempty"`
	QuestionType int16   `json:"questionType" example:"0"`
	TextPrompt   string  `json:"textPrompt" example:"Locate the optic nerve"`
	TextAnswer   *string `json:"textAnswer"`
	LabelID      *int64  `json:"labelId"`
	ShowRegions  *bool   `json:"showRegions"`
}

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// Upsert creates or replaces the quiz identified by uuid together with its
// questions. A quiz pointing at a missing label set is rejected with
// ErrNotFound before anything is written.
func (s *QuizService) Upsert(uuid string, input QuizInput) (string, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sets int64
		if err := tx.Model(&models.LabelSet{}).Where("id = ?", input.LabelSet).Count(&sets).Error; err != nil {
			return err
		}
		if sets == 0 {
			return fmt.Errorf("label set %d: %w", input.LabelSet, ErrNotFound)
		}

		prior, err := findQuizByUUID(tx, uuid)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		quiz := models.Quiz{
			UUID:       uuid,
			Name:       input.Name,
			LabelSetID: input.LabelSet,
			Shuffle:    boolToSmallint(input.Shuffle),
		}
		if prior != nil {
			quiz.ID = prior.ID
			err = tx.Save(&quiz).Error
		} else {
			err = tx.Create(&quiz).Error
		}
		if err != nil {
			return err
		}
		if quiz.ID == 0 {
			return fmt.Errorf("quiz %s was just inserted but is missing", uuid)
		}

		if err := tx.Where("quiz = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		if len(input.Questions) == 0 {
			return nil
		}

		questions := make([]models.Question, 0, len(input.Questions))
		for _, q := range input.Questions {
			questions = append(questions, models.Question{
				QuizID:       quiz.ID,
				QuestionType: q.QuestionType,
				TextPrompt:   q.TextPrompt,
				TextAnswer:   q.TextAnswer,
				LabelID:      q.LabelID,
				ShowRegions:  boolToSmallint(q.ShowRegions != nil && *q.ShowRegions),
			})
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		return "", err
	}
	return uuid, nil
}

func (s *QuizService) GetByID(id int64) (*QuizInput, error) {
	var quizzes []models.Quiz
	if err := s.db.Where("id = ?", id).Limit(1).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	if len(quizzes) == 0 {
		return nil, ErrNotFound
	}
	return s.load(&quizzes[0])
}

func (s *QuizService) GetByUUID(uuid string) (*QuizInput, error) {
	quiz, err := findQuizByUUID(s.db, uuid)
	if err != nil {
		return nil, err
	}
	return s.load(quiz)
}

func (s *QuizService) load(quiz *models.Quiz) (*QuizInput, error) {
	var questions []models.Question
	if err := s.db.Where("quiz = ?", quiz.ID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}

	out := &QuizInput{
		ID:        &quiz.ID,
		UUID:      &quiz.UUID,
		Name:      quiz.Name,
		LabelSet:  quiz.LabelSetID,
		Shuffle:   quiz.Shuffle != 0,
		Questions: make([]QuestionInput, 0, len(questions)),
	}
	for i := range questions {
		q := &questions[i]
		showRegions := q.ShowRegions != 0
		out.Questions = append(out.Questions, QuestionInput{
			ID:           &q.ID,
			QuestionType: q.QuestionType,
			TextPrompt:   q.TextPrompt,
			TextAnswer:   q.TextAnswer,
			LabelID:      q.LabelID,
			ShowRegions:  &showRegions,
		})
	}
	return out, nil
}

// Delete removes the quiz, its questions and every user's membership of it.
func (s *QuizService) Delete(uuid string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		quiz, err := findQuizByUUID(tx, uuid)
		if err != nil {
			return err
		}
		if err := tx.Where("quiz = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz = ?", quiz.ID).Delete(&models.UserQuiz{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Quiz{}, quiz.ID).Error
	})
}

func findQuizByUUID(db *gorm.DB, uuid string) (*models.Quiz, error) {
	var quizzes []models.Quiz
	if err := db.Where("uuid = ?", uuid).Limit(1).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	if len(quizzes) == 0 {
		return nil, ErrNotFound
	}
	return &quizzes[0], nil
}

func boolToSmallint(b bool) int16 {
	if b {
		return 1
	}
	return 0
}
