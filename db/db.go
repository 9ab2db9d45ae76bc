package db

import (
	"os"
	"path/filepath"
	"strings"

	"renthub/config"
	"renthub/logger"
	"renthub/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// Connect opens the configured database (sqlite3 by default) and runs
// AutoMigrate when conf.AutoMigrate is set.
func Connect(conf config.Configuration) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch conf.Database {
	case "postgres", "postgresql":
		logger.Info("using postgres connection", "host", conf.DbHost, "db", conf.DbName)
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass + " sslmode=" + conf.DbSSLMode
		db, err = gorm.Open("postgres", path)
	default:
		logger.Info("using sqlite3 connection", "path", conf.SqlitePath)
		db, err = ConnectSQLite(conf.SqlitePath)
	}
	if err != nil {
		logger.Error("database connection failed", "error", err)
		return nil, err
	}

	db.SetLogger(logger.GormLogger{})
	db.LogMode(conf.Debug)

	if conf.AutoMigrate {
		if err := Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

// ConnectSQLite opens a sqlite database. In-memory databases are pinned to a
// single connection, otherwise every pooled connection would see its own
// empty database.
func ConnectSQLite(path string) (*gorm.DB, error) {
	inMemory := path == ":memory:" || strings.Contains(path, "mode=memory")
	if !inMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if inMemory {
		db.DB().SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate creates or updates every table the application uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.PropertyImage{},
		&models.Rental{},
		&models.Favorite{},
		&models.ContactRequest{},
		&models.Message{},
		&models.ResetCode{},
	).Error
}
