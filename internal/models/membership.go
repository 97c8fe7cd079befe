package models

type UserLabelSet struct {
	UserID     int64 `gorm:"column:userid;primaryKey;autoIncrement:false"`
	LabelSetID int64 `gorm:"column:labelset;primaryKey;autoIncrement:false"`
}

func (UserLabelSet) TableName() string {
	return "userlabelsets"
}

type UserQuiz struct {
	UserID int64 `gorm:"column:userid;primaryKey;autoIncrement:false"`
	QuizID int64 `gorm:"column:quiz;primaryKey;autoIncrement:false"`
}

func (UserQuiz) TableName() string {
	return "userquizzes"
}
