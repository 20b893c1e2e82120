// Package gormx holds the GORM helpers shared by the SQL repositories:
// dialect-aware row locking, duplicate key detection and the optimistic
// version check used by every Update.
package gormx

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	pqUniqueViolation   = "23505"
	mysqlDuplicateEntry = 1062
	sqliteDialectName   = "sqlite"
)

// ForUpdate adds SELECT ... FOR UPDATE when lock is set. SQLite has no row
// locks; its single connection already serializes transactions.
func ForUpdate(db *gorm.DB, lock bool) *gorm.DB {
	if !lock || db.Dialector.Name() == sqliteDialectName {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// IsDuplicateKey recognizes unique violations from every supported driver.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	return false
}

// CreateError maps a failed insert to a value error when the id is taken.
func CreateError(param string, id kernel.UUID, err error) error {
	if IsDuplicateKey(err) {
		return errs.NewValueIsInvalidErrorWithCause(param+" id", fmt.Errorf("%s already exists", id))
	}
	return err
}

// CheckVersioned interprets the result of a conditional
// UPDATE ... WHERE id = ? AND version = ?. No affected row means either the
// row is gone or another writer moved its version.
func CheckVersioned(db *gorm.DB, result *gorm.DB, model any, param string, id kernel.UUID) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(model).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(param, id.String())
	}
	return errs.NewVersionIsInvalidError(param)
}

// NotFound translates gorm.ErrRecordNotFound into the domain error.
func NotFound(err error, param string, id kernel.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id.String())
	}
	return err
}
