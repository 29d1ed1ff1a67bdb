package sqlite

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Connect opens the shared database handle for the process. The store is a
// single-writer design, so the pool is capped at one connection; that also
// keeps the foreign_keys pragma bound to every statement we run.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	db.DB().SetMaxOpenConns(1)
	db.LogMode(false)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "enable foreign keys")
	}

	logrus.WithField("path", path).Debug("sqlite connected")
	return db, nil
}
