package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

// ConnectPostgres opens the pool behind DATABASE_URL. Like ConnectMongo, a
// failed ping does not abort startup.
func ConnectPostgres(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Errorf("postgres connection error: %v", err)
	} else {
		log.Info("connected to postgres")
	}

	PostgresDB = db
	return db, nil
}

func ClosePostgres() {
	if PostgresDB == nil {
		return
	}
	if err := PostgresDB.Close(); err != nil {
		log.Errorf("postgres close: %v", err)
	}
}
