package infra

import (
	"database/sql"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// SetupDB は設定に応じて DB に接続する
// DB_DRIVER が無ければ DB_NAME がある場合は PostgreSQL、それ以外は SQLite
func SetupDB(cfg *Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         logger.Default.LogMode(logLevel(cfg)),
	}

	switch driver := resolveDriver(cfg.DB); driver {
	case DriverPostgres:
		db, err := gorm.Open(postgres.Open(postgresDSN(cfg)), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		log.Printf("[INFO] Setup postgres database: host=%s dbname=%s", cfg.DB.Host, cfg.DB.Name)
		return db, nil
	case DriverMySQL:
		db, err := gorm.Open(gormmysql.Open(mysqlDSN(cfg.DB)), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mysql: %w", err)
		}
		log.Printf("[INFO] Setup mysql database: host=%s dbname=%s", cfg.DB.Host, cfg.DB.Name)
		return db, nil
	case DriverSQLite:
		return OpenSQLite(cfg.DB.Path, gormConfig)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

const sqliteDriverName = "sqlite3_shareit"

var registerSQLiteOnce sync.Once

// registerSQLite は lower を Unicode 対応版に置き換えた SQLite ドライバーを登録する
// 組み込みの lower は ASCII しか変換しない
func registerSQLite() {
	registerSQLiteOnce.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", unicodeLower, true)
			},
		})
	})
}

func unicodeLower(v any) any {
	switch s := v.(type) {
	case string:
		return strings.ToLower(s)
	case []byte:
		return strings.ToLower(string(s))
	default:
		return v
	}
}

// OpenSQLite は path が空ならインメモリの DB を開く
// インメモリ DB は接続ごとに別物になるので接続を 1 本に絞る
func OpenSQLite(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	dsn := path
	if dsn == "" {
		dsn = ":memory:"
	}
	registerSQLite()
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: sqliteDriverName,
		DSN:        dsn + "?_foreign_keys=on",
	}), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if path == "" {
		log.Println("[INFO] Setup sqlite database (in-memory)")
	} else {
		log.Printf("[INFO] Setup sqlite database: %s", path)
	}
	return db, nil
}

// NewTestDB はテスト用のインメモリ DB をマイグレーション込みで返す
func NewTestDB(migrate func(*gorm.DB) error) (*gorm.DB, error) {
	db, err := OpenSQLite("", &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func resolveDriver(c DatabaseConfig) string {
	if c.Driver != "" {
		return c.Driver
	}
	if c.Name != "" {
		return DriverPostgres
	}
	return DriverSQLite
}

func postgresDSN(cfg *Config) string {
	// 本番環境ではsslmode=require、それ以外はsslmode=disable
	sslmode := "disable"
	if cfg.Env == "prod" {
		sslmode = "require"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		sslmode,
	)
}

func mysqlDSN(c DatabaseConfig) string {
	port := c.Port
	if port == "" {
		port = "3306"
	}
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, port)
	mc.DBName = c.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Timeout = 3 * time.Second
	mc.ReadTimeout = 5 * time.Second
	mc.WriteTimeout = 5 * time.Second
	return mc.FormatDSN()
}

func logLevel(cfg *Config) logger.LogLevel {
	if cfg.IsRelease() {
		return logger.Silent
	}
	return logger.Info
}
