package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/hungryops/lunchpick/internal/session"
	"github.com/hungryops/lunchpick/internal/utils"
	"github.com/hungryops/lunchpick/pkg/storage"
)

// resolveStatePath picks the state database location: --db flag, then config,
// then the default under ~/.config/lunchpick.
func resolveStatePath() (string, error) {
	dbPath, _ := rootCmd.PersistentFlags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("db.path")
	}
	return utils.GetAbsStatePath(dbPath)
}

// openSession opens the locked state database and loads (or seeds) the
// session. The returned closer releases the lock and the database.
func openSession(ctx context.Context) (*session.Session, func(), error) {
	path, err := resolveStatePath()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("could not create state directory: %w", err)
	}

	lock, err := utils.NewStateLock(path)
	if err != nil {
		return nil, nil, err
	}
	if err := lock.Lock(); err != nil {
		return nil, nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		lock.Unlock()
		return nil, nil, err
	}

	sess, err := session.Open(ctx, db)
	if err != nil {
		db.Close()
		lock.Unlock()
		return nil, nil, err
	}

	closer := func() {
		if err := db.Close(); err != nil {
			utils.Log.Warnf("Error closing state database: %s", err)
		}
		if err := lock.Unlock(); err != nil {
			utils.Log.Warnf("Error releasing state lock: %s", err)
		}
	}
	return sess, closer, nil
}
