// Package database handles the optional database connection.
//
// It provides a wrapper around GORM to configure MySQL connections based on the
// application's configuration. The only consumer is the upload audit ledger
// (feature/audit), which is disabled unless DATABASE_ENABLED is set.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
