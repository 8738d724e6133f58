package app

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/guttosm/dexboard/config"
)

func TestInitPostgres_OpenError(t *testing.T) {
	old := sqlOpener
	sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
		return nil, errors.New("open failed")
	}
	t.Cleanup(func() { sqlOpener = old })

	_, err := InitPostgres(config.Config{Postgres: config.PostgresConfig{URL: "postgres://u:p@h:5432/d"}})
	if err == nil {
		t.Fatalf("expected error from InitPostgres when open fails")
	}
}

func TestInitPostgres_PingError(t *testing.T) {
	old := sqlOpener
	sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		if err != nil {
			t.Fatalf("sqlmock new: %v", err)
		}
		mock.ExpectPing().WillReturnError(errors.New("ping failed"))
		return db, nil
	}
	t.Cleanup(func() { sqlOpener = old })

	_, err := InitPostgres(config.Config{Postgres: config.PostgresConfig{URL: "postgres://u:p@h:5432/d"}})
	if err == nil {
		t.Fatalf("expected ping error from InitPostgres")
	}
}

func TestInitPostgres_PassesDSN(t *testing.T) {
	var gotDriver, gotDSN string
	old := sqlOpener
	sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
		gotDriver, gotDSN = driverName, dataSourceName
		db, _, err := sqlmock.New()
		return db, err
	}
	t.Cleanup(func() { sqlOpener = old })

	db, err := InitPostgres(config.Config{Postgres: config.PostgresConfig{URL: "postgres://u:p@h:5432/d"}})
	if err != nil {
		t.Fatalf("InitPostgres: %v", err)
	}
	defer db.Close()

	if gotDriver != "postgres" || gotDSN != "postgres://u:p@h:5432/d" {
		t.Fatalf("driver=%q dsn=%q", gotDriver, gotDSN)
	}
}

func TestOpenRunLog_Disabled(t *testing.T) {
	db, err := openRunLog(config.Config{})
	if err != nil || db != nil {
		t.Fatalf("disabled run log must return nil, nil; got %v, %v", db, err)
	}
}
