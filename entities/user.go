package entities

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:50;not null" json:"nome_usuario"`
	Email    string `gorm:"size:120;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`

	Timestamp
}
