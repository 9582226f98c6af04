package repo

import (
	"Alternify/internal/model"
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД по DSN и накатывает миграции.
// "file:..." или "*.db": SQLite (modernc), иначе PostgreSQL.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "file:") || strings.HasSuffix(dsn, ".db") {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	} else {
		dial = postgres.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт таблицы queries, recommendations, donations.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Query{}, &model.Recommendation{}, &model.Donation{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// NewGormStore собирает Store поверх одного *gorm.DB.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Queries:         NewQueryRepository(db),
		Recommendations: NewRecommendationRepository(db),
		Donations:       NewDonationRepository(db),
		Tx:              NewTransactor(db),
		Close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}
