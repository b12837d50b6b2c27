package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rpupo63/personal-blog/config"
	"github.com/rpupo63/personal-blog/errs"
	"github.com/rpupo63/personal-blog/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

type Database struct {
	db                    *gorm.DB
	userProfileRepo       *UserProfileRepo
	blogPostRepo          *BlogPostRepo
	commentRepo           *CommentRepo
	contactSubmissionRepo *ContactSubmissionRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                    db,
		userProfileRepo:       NewUserProfileRepo(db),
		blogPostRepo:          NewBlogPostRepo(db),
		commentRepo:           NewCommentRepo(db),
		contactSubmissionRepo: NewContactSubmissionRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserProfileRepo() *UserProfileRepo {
	return d.userProfileRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) ContactSubmissionRepo() *ContactSubmissionRepo {
	return d.contactSubmissionRepo
}

// Ping checks that the store answers. Used by the system status endpoint.
func (d Database) Ping() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Open connects to the store selected by DB_TYPE: a sqlite file (default) or postgres.
func Open(cfg map[string]string) (*gorm.DB, error) {
	dbType := strings.ToLower(config.GetString(cfg, "DB_TYPE", "sqlite"))

	gormConfig := &gorm.Config{
		PrepareStmt: false,
		Logger:      newGormLogger(),
	}

	switch dbType {
	case "sqlite":
		return OpenSQLite(config.GetString(cfg, "DB_FILE", "./database.sqlite"), gormConfig)
	case "postgres", "supa":
		dsn, err := postgresDSN(dbType, cfg)
		if err != nil {
			return nil, err
		}
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), gormConfig)
		if err != nil {
			return nil, errs.NewDatabaseConnectionError(err)
		}
		if err := useReadReplicas(db, config.GetList(cfg, "DB_READ_REPLICAS", nil)); err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
}

// OpenSQLite opens a sqlite database file (":memory:" works too) with foreign keys enforced on the
// connection. The pool is limited to a single connection so the pragma and in-memory data are
// shared by every request.
func OpenSQLite(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	if gormConfig == nil {
		gormConfig = &gorm.Config{Logger: newGormLogger()}
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gormConfig)
	if err != nil {
		return nil, errs.NewDatabaseConnectionError(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errs.NewDatabaseConnectionError(err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		path = "file::memory:"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

func postgresDSN(dbType string, cfg map[string]string) (string, error) {
	if dbType == "supa" {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(cfg, "SUPABASE_DB_HOST", ""),
			config.GetString(cfg, "SUPABASE_DB_USER", ""),
			config.GetString(cfg, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(cfg, "SUPABASE_DB_NAME", ""),
			config.GetString(cfg, "SUPABASE_DB_PORT", "5432"),
		), nil
	}

	dsn := config.GetString(cfg, "DATABASE_URL", "")
	if dsn == "" {
		return "", errors.New("DATABASE_URL is required when DB_TYPE=postgres")
	}
	return dsn, nil
}

// useReadReplicas routes reads to the given postgres DSNs through the dbresolver plugin
func useReadReplicas(db *gorm.DB, dsns []string) error {
	if len(dsns) == 0 {
		return nil
	}

	replicas := make([]gorm.Dialector, 0, len(dsns))
	for _, dsn := range dsns {
		replicas = append(replicas, postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}))
	}

	if err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})); err != nil {
		return fmt.Errorf("failed to register read replicas: %w", err)
	}
	return nil
}

// EnableForeignKeys turns on foreign-key enforcement. Postgres always enforces them.
func EnableForeignKeys(db *gorm.DB) error {
	if db.Dialector.Name() != "sqlite" {
		return nil
	}
	return db.Exec("PRAGMA foreign_keys = ON").Error
}

// ApplySchema creates the tables from the static model definitions. It is safe to run against an
// already-initialized store.
func ApplySchema(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return errs.NewSchemaApplyError(err)
	}
	return nil
}

func newGormLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}
