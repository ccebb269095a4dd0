package database

import (
	"database/sql"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqliteDriverName = "sqlite3_unicode"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// sqlite's built-in LOWER only folds ASCII.
			return conn.RegisterFunc("lower", unicodeLower, true)
		},
	})
}

func unicodeLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// SQLite opens dsn with a LOWER that folds Unicode, so case-insensitive
// queries behave the same as on PostgreSQL.
func SQLite(dsn string) gorm.Dialector {
	return &sqlite.Dialector{DriverName: sqliteDriverName, DSN: dsn}
}
