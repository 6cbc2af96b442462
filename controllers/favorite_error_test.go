package controllers_test

import (
	"errors"
	"testing"

	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/routes"
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockAPI wires the router to a sqlmock-backed gorm DB so storage
// failures can be scripted.
func setupMockAPI(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       db,
		DriverName: "postgres",
	}), &gorm.Config{})
	require.NoError(t, err)

	utils.SetDB(gormDB)
	return routes.SetupRouter(), mock
}

func TestCreateFavoriteStorageErrorRollsBack(t *testing.T) {
	r, mock := setupMockAPI(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).AddRow(1, "a@x.com", "hash"))
	mock.ExpectQuery(`SELECT \* FROM "planets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "diameter"}).AddRow(5, "Tatooine", "10465"))
	mock.ExpectQuery(`SELECT \* FROM "favorites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "favorites"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	w := performRequest(r, "POST", "/favorite/planet/5", map[string]interface{}{"user_id": 1})
	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "Database error while adding favorite")
	assert.Contains(t, w.Body.String(), "insert failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFavoriteStorageErrorRollsBack(t *testing.T) {
	r, mock := setupMockAPI(t)

	mock.ExpectQuery(`SELECT \* FROM "favorites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "target_type", "target_id", "target_name", "user_id"}).
			AddRow(1, "planets", 5, "Tatooine", 1))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "favorites"`).
		WillReturnError(errors.New("delete failed"))
	mock.ExpectRollback()

	w := performRequest(r, "DELETE", "/favorite/planets/5/1", nil)
	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "Database error while deleting favorite")
	assert.Contains(t, w.Body.String(), "delete failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserStorageErrorRollsBack(t *testing.T) {
	r, mock := setupMockAPI(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).AddRow(1, "a@x.com", "hash"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "favorites"`).
		WillReturnError(errors.New("cascade failed"))
	mock.ExpectRollback()

	w := performRequest(r, "DELETE", "/user/1", nil)
	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "Database error while deleting user")
	assert.Contains(t, w.Body.String(), "cascade failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}
