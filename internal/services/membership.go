package services

import (
	"fmt"

	"anatomy-explorer-backend/internal/models"

	"gorm.io/gorm"
)

// MemberItem summarises a label set or quiz a user has added.
type MemberItem struct {
	ID   int64  `json:"id" example:"3"`
	UUID string `json:"uuid" example:"0b7e2f0c-5a55-4c1e-9c0e-2f1a7c9d8e11"`
	Name string `json:"name" example:"head"`
}

type MembershipService struct {
	db *gorm.DB
}

func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{db: db}
}

// AddLabelSet records that the user uses the label set. Adding the same pair
// twice fails on the composite primary key and the error is returned as is.
func (s *MembershipService) AddLabelSet(userID int64, uuid string) error {
	set, err := findLabelSetByUUID(s.db, uuid)
	if err != nil {
		return err
	}
	return s.db.Create(&models.UserLabelSet{UserID: userID, LabelSetID: set.ID}).Error
}

func (s *MembershipService) RemoveLabelSet(userID int64, uuid string) error {
	set, err := findLabelSetByUUID(s.db, uuid)
	if err != nil {
		return err
	}
	res := s.db.Where("userid = ? AND labelset = ?", userID, set.ID).Delete(&models.UserLabelSet{})
	return checkDeleted(res, "label set", uuid)
}

func (s *MembershipService) ListLabelSets(userID int64) ([]MemberItem, error) {
	var ids []int64
	if err := s.db.Model(&models.UserLabelSet{}).Where("userid = ?", userID).Pluck("labelset", &ids).Error; err != nil {
		return nil, err
	}
	items := make([]MemberItem, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	var sets []models.LabelSet
	if err := s.db.Where("id IN ?", ids).Find(&sets).Error; err != nil {
		return nil, err
	}
	for _, set := range sets {
		items = append(items, MemberItem{ID: set.ID, UUID: set.UUID, Name: set.Name})
	}
	return items, nil
}

func (s *MembershipService) AddQuiz(userID int64, uuid string) error {
	quiz, err := findQuizByUUID(s.db, uuid)
	if err != nil {
		return err
	}
	return s.db.Create(&models.UserQuiz{UserID: userID, QuizID: quiz.ID}).Error
}

func (s *MembershipService) RemoveQuiz(userID int64, uuid string) error {
	quiz, err := findQuizByUUID(s.db, uuid)
	if err != nil {
		return err
	}
	res := s.db.Where("userid = ? AND quiz = ?", userID, quiz.ID).Delete(&models.UserQuiz{})
	return checkDeleted(res, "quiz", uuid)
}

func (s *MembershipService) ListQuizzes(userID int64) ([]MemberItem, error) {
	var ids []int64
	if err := s.db.Model(&models.UserQuiz{}).Where("userid = ?", userID).Pluck("quiz", &ids).Error; err != nil {
		return nil, err
	}
	items := make([]MemberItem, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	var quizzes []models.Quiz
	if err := s.db.Where("id IN ?", ids).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	for _, q := range quizzes {
		items = append(items, MemberItem{ID: q.ID, UUID: q.UUID, Name: q.Name})
	}
	return items, nil
}

// checkDeleted maps a membership delete onto its outcome: nothing deleted is
// ErrNotFound, more than one row means the primary key was not enforced.
func checkDeleted(res *gorm.DB, kind, uuid string) error {
	if res.Error != nil {
		return res.Error
	}
	switch res.RowsAffected {
	case 0:
		return fmt.Errorf("%s %s membership: %w", kind, uuid, ErrNotFound)
	case 1:
		return nil
	default:
		return fmt.Errorf("expected 1 deleted %s membership, deleted %d", kind, res.RowsAffected)
	}
}
