package dbtx_test

import (
	"context"
	"testing"

	"go-kafe/internal/shared/dbtx"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)
	return gdb, mock
}

func TestBind_RunsStatementsInsideTransaction(t *testing.T) {
	gdb, mock := openGorm(t)
	sqlDB, err := gdb.DB()
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := sqlDB.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	bound := dbtx.Bind(gdb, tx)
	err = bound.WithContext(context.Background()).Exec("UPDATE tenants SET name = ?", "x").Error
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBind_NilTxReturnsSameHandle(t *testing.T) {
	gdb, _ := openGorm(t)
	assert.Same(t, gdb, dbtx.Bind(gdb, nil))
}
