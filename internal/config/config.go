package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	App
	Storage
	PostgreSQL
	HTTP
}

type App struct {
	UploadsDirectory  string
	StagingDirectory  string
	ArchivesDirectory string
	LogosDirectory    string
	Workers           int
	CardFormat        string
	MaxSpreadsheet    int64
	MaxLogo           int64
	StallTimeout      time.Duration
	Retention         time.Duration
	JanitorInterval   time.Duration
}

type Storage struct {
	Backend     string
	S3Region    string
	S3Endpoint  string
	S3Bucket    string
	S3Prefix    string
	S3AccessKey string
	S3SecretKey string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			UploadsDirectory:  cmd.String("uploads-dir"),
			StagingDirectory:  cmd.String("staging-dir"),
			ArchivesDirectory: cmd.String("archives-dir"),
			LogosDirectory:    cmd.String("logos-dir"),
			Workers:           cmd.Int("workers"),
			CardFormat:        cmd.String("card-format"),
			MaxSpreadsheet:    cmd.Int64("max-spreadsheet-size"),
			MaxLogo:           cmd.Int64("max-logo-size"),
			StallTimeout:      cmd.Duration("stall-timeout"),
			Retention:         cmd.Duration("retention"),
			JanitorInterval:   cmd.Duration("janitor-interval"),
		},
		Storage: Storage{
			Backend:     cmd.String("storage"),
			S3Region:    cmd.String("s3-region"),
			S3Endpoint:  cmd.String("s3-endpoint"),
			S3Bucket:    cmd.String("s3-bucket"),
			S3Prefix:    cmd.String("s3-prefix"),
			S3AccessKey: cmd.String("s3-access-key"),
			S3SecretKey: cmd.String("s3-secret-key"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
