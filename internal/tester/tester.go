package tester

import (
	"os"
	"path/filepath"

	"github.com/emrgen/pagesync/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db       *gorm.DB
	testPath string
)

// Setup creates a fresh test database file in its own directory and migrates it. Each test binary
// gets a separate directory so packages can be tested in parallel.
func Setup() {
	_ = os.Setenv("ENV", "test")

	var err error
	testPath, err = os.MkdirTemp("", "pagesync-test-")
	if err != nil {
		panic(err)
	}

	db, err = gorm.Open(sqlite.Open(filepath.Join(testPath, "pagesync.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	err = model.Migrate(db)
	if err != nil {
		panic(err)
	}
}

func TestDB() *gorm.DB {
	return db
}

// Reset empties every table between tests.
func Reset() {
	for _, table := range []any{&model.Relationship{}, &model.Meta{}, &model.Content{}} {
		err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error
		if err != nil {
			panic(err)
		}
	}
}

func RemoveDBFile() {
	if testPath == "" {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	err := os.RemoveAll(testPath)
	if err != nil {
		panic(err)
	}
}
