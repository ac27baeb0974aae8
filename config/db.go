package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"employee/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DBMSMySQL    = "mysql"
	DBMSPostgres = "postgres"
)

func GetDBMS() string {
	return strings.ToLower(getEnv("DBMS", DBMSMySQL))
}

func GetDBPort() string {
	if GetDBMS() == DBMSPostgres {
		return getEnv("DB_PORT", "5432")
	}
	return getEnv("DB_PORT", "3306")
}

// GetMySQLDSN builds the MySQL connection string. clientFoundRows makes an
// UPDATE report matched rows, so rewriting a row with identical values still
// counts as found.
func GetMySQLDSN() string {
	cfg := mysql.NewConfig()
	cfg.User = getEnv("DB_USER", "")
	cfg.Passwd = getEnv("DB_PASSWORD", "")
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(getEnv("DB_HOST", "localhost"), GetDBPort())
	cfg.DBName = getEnv("DB_NAME", "")
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg.FormatDSN()
}

func GetPostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"), GetDBPort(), getEnv("DB_USER", ""),
		getEnv("DB_PASSWORD", ""), getEnv("DB_NAME", ""))
}

func GetDialector() (gorm.Dialector, error) {
	switch GetDBMS() {
	case DBMSMySQL:
		return gormmysql.Open(GetMySQLDSN()), nil
	case DBMSPostgres:
		return postgres.Open(GetPostgresDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported DBMS %q, expected %s or %s", GetDBMS(), DBMSMySQL, DBMSPostgres)
	}
}

func GetGormConfig(log *logrus.Logger) *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}
}

// BootDB opens the store and makes sure the employees table exists. A non-nil
// DB with an error means the connection is up but the table could not be created.
func BootDB(log *logrus.Logger) (*gorm.DB, error) {
	dialector, err := GetDialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, GetGormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Infof("Connected to %s database.", GetDBMS())

	if err := Migrate(db); err != nil {
		return db, err
	}

	log.Info("Employee table is ready.")
	return db, nil
}

// Migrate creates the employees table when it is absent and leaves an
// existing one alone.
func Migrate(db *gorm.DB) error {
	if db.Migrator().HasTable(&domain.Employee{}) {
		return nil
	}

	if err := db.Migrator().CreateTable(&domain.Employee{}); err != nil {
		return fmt.Errorf("failed to create employees table: %w", err)
	}
	return nil
}
