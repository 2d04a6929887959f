package app

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// openStore connects once at startup. A missing DB_URL or a failed ping
// leaves the process running without a store.
func openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) *sqlx.DB {
	if !cfg.StoreConfigured() {
		logger.Warn("running without store", "reason", "DB_URL empty")
		return nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary, cfg.ServiceName)
	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		logger.Error("open store failed, running without store", "error", err)
		return nil
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("store unreachable, running without store", "db_name", dbNameFromURL(dbURL), "error", err)
		closeDB(db, logger)
		return nil
	}

	logger.Info("store connected", "db_name", dbNameFromURL(dbURL), "max_open_conns", cfg.DBMaxOpenConns)
	return db
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("close store failed", "error", err)
	}
}
