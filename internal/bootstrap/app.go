package bootstrap

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"miniblog/internal/config"
	"miniblog/internal/model"
	sqliteClient "miniblog/internal/platform/sqlite"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB

	// SessionSecret signs session cookies. When the config leaves it empty a
	// fresh secret is generated here, so a restart logs everyone out.
	SessionSecret string
	Location      *time.Location

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	return NewWithConfig(ctx, cfg)
}

func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := sqliteClient.New(ctx, cfg.SQLite.Path)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.Tag{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	secret := cfg.Auth.SessionSecret
	if secret == "" {
		secret, err = randomSecret()
		if err != nil {
			return nil, err
		}
	}

	loc, err := time.LoadLocation(cfg.App.TimeZone)
	if err != nil {
		log.Printf("load time zone %q failed, falling back to UTC: %v", cfg.App.TimeZone, err)
		loc = time.UTC
	}

	return &App{
		Config:        cfg,
		DB:            db,
		SessionSecret: secret,
		Location:      loc,
		StartedAt:     time.Now(),
	}, nil
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}

func (a *App) SessionTTL() time.Duration {
	return time.Duration(a.Config.Auth.SessionTTLMinute) * time.Minute
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session secret failed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
