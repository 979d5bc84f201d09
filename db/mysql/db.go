// Package mysql implements the db interfaces on MySQL through upper/db.
// Schema migrations are embedded and applied on startup.
package mysql

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/mysql"

	"github.com/skillswap/skillswap-be/config"
	appDb "github.com/skillswap/skillswap-be/db"
)

//go:embed migrations
var embedMigrations embed.FS

type MySQLDB struct {
	*ChatDB
	*UserDB
	sess  db.Session
	sqlDB *sql.DB
}

func GetDatabase(cfg *config.DBConfig) (appDb.Database, error) {
	sqlDB, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("database open: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxIdleTime(0)

	if err := migrate(sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	sess, err := mysql.New(sqlDB)
	if err != nil {
		return nil, err
	}

	return &MySQLDB{
		ChatDB: getChatDB(sess),
		UserDB: getUserDB(sess),
		sess:   sess,
		sqlDB:  sqlDB,
	}, nil
}

func migrate(sqlDB *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func (mdb *MySQLDB) GetSQLDB() *sql.DB {
	return mdb.sqlDB
}

func (mdb *MySQLDB) Close() error {
	return mdb.sess.Close()
}
