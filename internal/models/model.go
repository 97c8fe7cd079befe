package models

// Model is an uploaded 3D mesh plus its optional material and texture files,
// all of which live in the models directory under their verbatim names.
type Model struct {
	ID       int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename string  `gorm:"size:255;uniqueIndex;not null" json:"filename"`
	Material *string `gorm:"column:material" json:"material"`
	Texture  *string `gorm:"column:texture" json:"texture"`
	Category *string `gorm:"column:category" json:"category"`
}

func (Model) TableName() string {
	return "models"
}
