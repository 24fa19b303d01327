package db

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"datamarket/internal/config"
	"datamarket/internal/model"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	db, err := Open("oracle", "whatever")
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestMigrateAndReset(t *testing.T) {
	gormDB, err := Open(config.DriverSQLite, "file:db_migrate_test?mode=memory&cache=shared")
	require.NoError(t, err)

	require.NoError(t, Migrate(gormDB))
	assert.True(t, gormDB.Migrator().HasTable(&model.User{}))
	assert.True(t, gormDB.Migrator().HasIndex(&model.User{}, "Email"))

	require.NoError(t, Reset(gormDB))
	assert.False(t, gormDB.Migrator().HasTable(&model.User{}))
}

func TestOpen_LogsThroughLogrus(t *testing.T) {
	hook := test.NewGlobal()
	gormDB, err := Open(config.DriverSQLite, "file:db_logger_test?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, Migrate(gormDB))
	t.Cleanup(func() { _ = Reset(gormDB) })

	err = gormDB.First(&model.User{}, 999).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Empty(t, hook.AllEntries())

	var n int
	assert.Error(t, gormDB.Raw("SELECT count(*) FROM missing_table").Scan(&n).Error)
	require.NotEmpty(t, hook.AllEntries())
	assert.Contains(t, hook.LastEntry().Message, "missing_table")
}
