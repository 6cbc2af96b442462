package services

import (
	"errors"

	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/models"

	"gorm.io/gorm"
)

// FavoriteService answers "does user U already favorite target (type, id)?"
// and resolves favorite rows back to their catalog entities.
type FavoriteService struct {
	DB *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{DB: db}
}

// Find returns the favorite row for the given target and user, or nil when
// no such row exists. Used both for the duplicate check before insert and
// to locate the row for deletion.
func (s *FavoriteService) Find(targetType models.TargetType, targetID, userID uint) (*models.Favorite, error) {
	var fav models.Favorite
	err := s.DB.
		Where("target_type = ? AND target_id = ? AND user_id = ?", targetType, targetID, userID).
		First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// ResolveName looks up the referenced catalog entity and returns its current
// name. ok is false when the entity does not exist or the type is unknown.
func (s *FavoriteService) ResolveName(targetType models.TargetType, targetID uint) (string, bool, error) {
	switch targetType {
	case models.TargetPeople:
		var person models.Person
		if err := s.DB.First(&person, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", false, nil
			}
			return "", false, err
		}
		return person.Name, true, nil
	case models.TargetPlanets:
		var planet models.Planet
		if err := s.DB.First(&planet, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", false, nil
			}
			return "", false, err
		}
		return planet.Name, true, nil
	}
	// Unknown tag. Cannot happen for rows written through the handlers.
	return "", false, nil
}

// ResolveTarget maps a favorite row to the Person or Planet it points at.
func (s *FavoriteService) ResolveTarget(fav *models.Favorite) (interface{}, bool, error) {
	switch fav.TargetType {
	case models.TargetPeople:
		var person models.Person
		if err := s.DB.First(&person, fav.TargetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, nil
			}
			return nil, false, err
		}
		return &person, true, nil
	case models.TargetPlanets:
		var planet models.Planet
		if err := s.DB.First(&planet, fav.TargetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, nil
			}
			return nil, false, err
		}
		return &planet, true, nil
	}
	return nil, false, nil
}
