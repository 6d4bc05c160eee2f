package journal

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/touchplay/event"
)

// SQLite stores attempts in a local database file
type SQLite struct {
	db  *gorm.DB
	log zerolog.Logger
}

// OpenSQLite opens or creates the journal at path and migrates the schema
func OpenSQLite(path string, log zerolog.Logger) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Attempt{}); err != nil {
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	log.Info().Str("path", path).Msg("journal opened")
	return &SQLite{db: db, log: log}, nil
}

// Record inserts a, assigning its ID
func (s *SQLite) Record(a *Attempt) error {
	if err := s.db.Create(a).Error; err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// Recent returns up to limit attempts, newest first
func (s *SQLite) Recent(limit int) ([]Attempt, error) {
	var out []Attempt
	err := s.db.Order("finished_at desc").Order("id desc").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}
	return out, nil
}

// Stats aggregates every attempt of play
func (s *SQLite) Stats(play string) (Stats, error) {
	var row struct {
		Attempts  int
		Completed int
		Failed    int
		BestScore int
	}
	err := s.db.Model(&Attempt{}).
		Select(
			"COUNT(*) AS attempts, "+
				"COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0) AS completed, "+
				"COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0) AS failed, "+
				"COALESCE(MAX(score), 0) AS best_score",
			string(event.AttemptCompleted), string(event.AttemptFailed),
		).
		Where("play = ?", play).
		Scan(&row).Error
	if err != nil {
		return Stats{}, fmt.Errorf("attempt stats: %w", err)
	}
	return Stats{
		Play:      play,
		Attempts:  row.Attempts,
		Completed: row.Completed,
		Failed:    row.Failed,
		BestScore: row.BestScore,
	}, nil
}

// Close releases the database handle
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
