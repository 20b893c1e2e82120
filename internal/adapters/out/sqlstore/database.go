package sqlstore

import (
	"database/sql"
	"fmt"

	"marketplace/internal/adapters/out/sqlstore/catalogrepo"
	"marketplace/internal/adapters/out/sqlstore/notificationrepo"
	"marketplace/internal/adapters/out/sqlstore/orderrepo"
	"marketplace/internal/adapters/out/sqlstore/storerepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config selects the SQL dialect and its connection parameters. SQLitePath is
// only read by the sqlite driver; ":memory:" gives a throwaway database.
type Config struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// Open connects to the configured database. Postgres runs over a lib/pq
// connection pool handed to the GORM dialector. SQLite is limited to one open
// connection, which serializes its transactions.
func Open(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}

	switch cfg.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres pool: %w", err)
		}
		return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig)

	case DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		return gorm.Open(mysql.Open(dsn), gormConfig)

	case DriverSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormConfig)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// Migrate creates or alters every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.UserDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.PickupPointDTO{},
		&catalogrepo.PackDTO{},
		&storerepo.StoreDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&notificationrepo.NotificationDTO{},
	)
}
