package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/constants"
	"kelasvideo_backend/internals/features/users/auth/model"
)

func newRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}))
	return db
}

func testUser(name string) *model.UserModel {
	return &model.UserModel{
		UserName:     name,
		UserPassword: "hash",
		UserRole:     constants.RoleStudent,
	}
}

// Dua registrasi balapan dengan username sama: pre-check bisa lolos dua-duanya,
// unique index yang memutuskan. Error-nya harus terbaca sebagai ErrDuplicatedKey
// supaya controller membalas 409, bukan 500.
func TestCreateUserDuplicateUserName(t *testing.T) {
	db := newRepoDB(t)
	require.NoError(t, CreateUser(db, testUser("siswa_andi")))

	err := CreateUser(db, testUser("siswa_andi"))
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestIsUserNameTaken(t *testing.T) {
	db := newRepoDB(t)

	taken, err := IsUserNameTaken(db, "siswa_andi")
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, CreateUser(db, testUser("siswa_andi")))
	taken, err = IsUserNameTaken(db, "siswa_andi")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestFindUserByUserNameNotFound(t *testing.T) {
	db := newRepoDB(t)

	_, err := FindUserByUserName(db, "tidak_ada")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
