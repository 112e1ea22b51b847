package entities

type Recipe struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string   `gorm:"size:50;not null" json:"nome"`
	NameKey     string   `gorm:"size:50;not null;uniqueIndex" json:"-"` // lower-cased Name
	Ingredients []string `gorm:"serializer:json;type:text;not null" json:"ingredientes"`
	Preparation string   `gorm:"type:text;not null" json:"modo_de_preparo"`

	Timestamp
}
