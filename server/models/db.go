package models

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	sqliteEncrypt "github.com/Daskott/gorm-sqlite-cipher"
	"github.com/pkg/errors"
	"github.com/rolodex-hq/rolodex/utils"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const DB_NAME = "rolodex.db"

// AutoMigrate opens the sqlite db under dbRootDir & migrates the schema.
// Running it against an already-initialized db is a no-op.
func AutoMigrate(passPhrase string, dbRootDir string) (*gorm.DB, error) {
	db, err := openDB(passPhrase, dbRootDir)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Contact{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate db schema")
	}

	return db, nil
}

// InitializeTestDb returns a handle to a throw-away in-memory db,
// migrated and ready for use in tests.
func InitializeTestDb() *gorm.DB {
	dsn := fmt.Sprintf("file:testdb_%v?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqliteEncrypt.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		log.Panicf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&Contact{}); err != nil {
		log.Panicf("failed to migrate test db: %v", err)
	}

	return db
}

// DbDirectory returns the 'db' folder under dbRootDir, creating it if needed.
func DbDirectory(dbRootDir string) (string, error) {
	dbDir := filepath.Join(dbRootDir, "db")

	err := utils.CreateDirIfNotExist(dbDir)
	if err != nil {
		return "", err
	}

	return dbDir, nil
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func openDB(passPhrase string, dbRootDir string) (*gorm.DB, error) {
	dbDSNVal, err := dbDSN(passPhrase, dbRootDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set sqlite DSN")
	}

	db, err := gorm.Open(sqliteEncrypt.Open(dbDSNVal), &gorm.Config{
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				LogLevel:                  gormLogger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	return db, nil
}

func dbDSN(passPhrase string, dbRootDir string) (string, error) {
	dbDir, err := DbDirectory(dbRootDir)
	if err != nil {
		return "", err
	}

	dbName := fmt.Sprintf("file:%v", filepath.Join(dbDir, DB_NAME))
	if passPhrase == "" {
		return fmt.Sprintf("%v?_journal_mode=WAL", dbName), nil
	}

	return fmt.Sprintf(
		"%v?_pragma_key=%s&_pragma_cipher_page_size=4096&_journal_mode=WAL",
		dbName,
		passPhrase,
	), nil
}
