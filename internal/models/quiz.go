package models

type Quiz struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID       string `gorm:"column:uuid;size:36;uniqueIndex;not null" json:"uuid"`
	Name       string `gorm:"not null" json:"name"`
	LabelSetID int64  `gorm:"column:labelset;not null;index" json:"labelSet"`
	Shuffle    int16  `gorm:"type:smallint;not null;default:0" json:"shuffle"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
