package models

// User owns a favorites list. Deleting a user removes its favorites as well.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized

	Favorites []Favorite `json:"favorites_list" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
