package sqlstore_test

import (
	"testing"

	"marketplace/internal/adapters/out/sqlstore"

	"github.com/stretchr/testify/suite"
)

type SQLiteRepositorySuite struct {
	RepositorySuite
}

func (s *SQLiteRepositorySuite) SetupSuite() {
	db, err := sqlstore.Open(sqlstore.Config{Driver: sqlstore.DriverSQLite, SQLitePath: ":memory:"})
	s.Require().NoError(err)
	s.Require().NoError(sqlstore.Migrate(db))
	s.db = db
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositorySuite))
}
