package models

// Planet is an immutable catalog entity.
type Planet struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"type:varchar(100);not null"`
	Diameter string `json:"diameter" gorm:"type:varchar(50);not null"`
}
