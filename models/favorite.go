package models

import "strings"

// TargetType discriminates which catalog table a favorite points at.
// Only the two values below are resolvable.
type TargetType string

const (
	TargetPeople  TargetType = "people"
	TargetPlanets TargetType = "planets"
)

// ParseTargetType normalizes user input to a known target type.
func ParseTargetType(s string) (TargetType, bool) {
	switch TargetType(strings.TrimSpace(strings.ToLower(s))) {
	case TargetPeople:
		return TargetPeople, true
	case TargetPlanets:
		return TargetPlanets, true
	}
	return "", false
}

func (t TargetType) Valid() bool {
	return t == TargetPeople || t == TargetPlanets
}

// Favorite links a user to a catalog entity. TargetName is a snapshot of the
// entity's name taken at creation time; it is not refreshed on rename.
// The composite unique index backs the duplicate check so racing inserts
// cannot slip past it.
type Favorite struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	TargetType TargetType `json:"target_type" gorm:"type:varchar(50);not null;uniqueIndex:idx_favorites_user_target"`
	TargetID   uint       `json:"target_id" gorm:"not null;uniqueIndex:idx_favorites_user_target"`
	TargetName string     `json:"target_name" gorm:"type:varchar(100);not null"`
	UserID     uint       `json:"user_id" gorm:"not null;index;uniqueIndex:idx_favorites_user_target"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
}
