package models

type Question struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID       int64   `gorm:"column:quiz;not null;index" json:"quiz"`
	QuestionType int16   `gorm:"column:questiontype;type:smallint;not null" json:"questionType"`
	TextPrompt   string  `gorm:"column:textprompt;type:text;not null" json:"textPrompt"`
	TextAnswer   *string `gorm:"column:textanswer;type:text" json:"textAnswer,omitempty"`
	LabelID      *int64  `gorm:"column:label" json:"labelId,omitempty"`
	ShowRegions  int16   `gorm:"column:showregions;type:smallint;not null;default:0" json:"showRegions"`
}

func (Question) TableName() string {
	return "questions"
}
