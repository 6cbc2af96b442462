package models_test

import (
	"testing"

	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/models"

	"github.com/stretchr/testify/assert"
)

func TestParseTargetType(t *testing.T) {
	tt, ok := models.ParseTargetType("people")
	assert.True(t, ok)
	assert.Equal(t, models.TargetPeople, tt)

	tt, ok = models.ParseTargetType("  Planets ")
	assert.True(t, ok)
	assert.Equal(t, models.TargetPlanets, tt)

	_, ok = models.ParseTargetType("droids")
	assert.False(t, ok)

	_, ok = models.ParseTargetType("")
	assert.False(t, ok)
}

func TestTargetTypeValid(t *testing.T) {
	assert.True(t, models.TargetPeople.Valid())
	assert.True(t, models.TargetPlanets.Valid())
	assert.False(t, models.TargetType("droids").Valid())
	assert.False(t, models.TargetType("").Valid())
}
