package models

// Person is an immutable catalog entity.
type Person struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"type:varchar(100);not null"`
	HairColor string `json:"hair_color" gorm:"type:varchar(50);not null"`
}

func (Person) TableName() string {
	return "people"
}
