package services

import (
	"errors"
	"fmt"

	"anatomy-explorer-backend/internal/models"

	"gorm.io/gorm"
)

// LabelSetInput is the wire form of a label set and its labels.
type LabelSetInput struct {
	ID     *int64       `json:"id,omitempty"`
	UUID   *string      `json:"uuid,omitempty"`
	Name   string       `json:"name" example:"head"`
	Model  int64        `json:"model" example:"1"`
	Labels []LabelInput `json:"labels"`
}

type LabelInput struct {
	Colour   string `json:"colour" example:"#FF0000"`
	Name     string `json:"name" example:"eye"`
	Vertices string `json:"vertices" example:"[1,2,3]"`
}

type LabelSetService struct {
	db *gorm.DB
}

func NewLabelSetService(db *gorm.DB) *LabelSetService {
	return &LabelSetService{db: db}
}

// Upsert creates or replaces the label set identified by uuid and replaces
// its labels with the submitted list, all in one transaction.
func (s *LabelSetService) Upsert(uuid string, input LabelSetInput) (string, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		prior, err := findLabelSetByUUID(tx, uuid)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		set := models.LabelSet{
			UUID:    uuid,
			Name:    input.Name,
			ModelID: input.Model,
		}
		if prior != nil {
			set.ID = prior.ID
			err = tx.Save(&set).Error
		} else {
			err = tx.Create(&set).Error
		}
		if err != nil {
			return err
		}
		if set.ID == 0 {
			return fmt.Errorf("label set %s was just inserted but is missing", uuid)
		}

		if err := tx.Where("labelset = ?", set.ID).Delete(&models.Label{}).Error; err != nil {
			return err
		}
		if len(input.Labels) == 0 {
			return nil
		}

		labels := make([]models.Label, 0, len(input.Labels))
		for _, l := range input.Labels {
			labels = append(labels, models.Label{
				LabelSetID: set.ID,
				Name:       l.Name,
				Colour:     l.Colour,
				Vertices:   []byte(l.Vertices),
			})
		}
		return tx.Create(&labels).Error
	})
	if err != nil {
		return "", err
	}
	return uuid, nil
}

func (s *LabelSetService) GetByID(id int64) (*LabelSetInput, error) {
	var sets []models.LabelSet
	if err := s.db.Where("id = ?", id).Limit(1).Find(&sets).Error; err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, ErrNotFound
	}
	return s.load(&sets[0])
}

func (s *LabelSetService) GetByUUID(uuid string) (*LabelSetInput, error) {
	set, err := findLabelSetByUUID(s.db, uuid)
	if err != nil {
		return nil, err
	}
	return s.load(set)
}

func (s *LabelSetService) load(set *models.LabelSet) (*LabelSetInput, error) {
	var labels []models.Label
	if err := s.db.Where("labelset = ?", set.ID).Order("id ASC").Find(&labels).Error; err != nil {
		return nil, err
	}

	out := &LabelSetInput{
		ID:     &set.ID,
		UUID:   &set.UUID,
		Name:   set.Name,
		Model:  set.ModelID,
		Labels: make([]LabelInput, 0, len(labels)),
	}
	for _, l := range labels {
		out.Labels = append(out.Labels, LabelInput{
			Colour:   l.Colour,
			Name:     l.Name,
			Vertices: string(l.Vertices),
		})
	}
	return out, nil
}

// Delete removes the label set and its labels. Memberships pointing at it
// are left in place.
func (s *LabelSetService) Delete(uuid string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		set, err := findLabelSetByUUID(tx, uuid)
		if err != nil {
			return err
		}
		if err := tx.Where("labelset = ?", set.ID).Delete(&models.Label{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.LabelSet{}, set.ID).Error
	})
}

func findLabelSetByUUID(db *gorm.DB, uuid string) (*models.LabelSet, error) {
	var sets []models.LabelSet
	if err := db.Where("uuid = ?", uuid).Limit(1).Find(&sets).Error; err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, ErrNotFound
	}
	return &sets[0], nil
}
