package models

type LabelSet struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID    string `gorm:"column:uuid;size:36;uniqueIndex;not null" json:"uuid"`
	Name    string `gorm:"not null" json:"name"`
	ModelID int64  `gorm:"column:model;not null;index" json:"model"`
}

func (LabelSet) TableName() string {
	return "labelsets"
}

// Label is a coloured vertex selection. Vertices holds the client's JSON array
// of vertex indices verbatim; the server never parses it.
type Label struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	LabelSetID int64  `gorm:"column:labelset;not null;index" json:"labelSet"`
	Name       string `gorm:"not null" json:"name"`
	Colour     string `gorm:"size:32;not null" json:"colour"`
	Vertices   []byte `gorm:"not null" json:"-"`
}

func (Label) TableName() string {
	return "labels"
}
