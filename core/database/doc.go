// Package database handles the optional database connection backing the
// transfer journal.
//
// It wraps GORM and configures either a MySQL connection (with DSN timeouts
// and pool limits) or a SQLite database, which is mainly used for local runs
// and tests.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Journal disabled", zap.Error(err))
//	}
package database
