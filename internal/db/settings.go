package db

import (
	"context"
	"strconv"
)

func (s *Store) GetSettings(ctx context.Context) (Settings, error) {
	rows := []struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}{}
	if err := s.db.SelectContext(ctx, &rows, `
		SELECT key, CAST(value AS TEXT) AS value
		FROM settings
	`); err != nil {
		return Settings{}, err
	}
	settings := DefaultSettings()
	for _, row := range rows {
		switch row.Key {
		case "clock_limit_min":
			if v, err := strconv.ParseFloat(row.Value, 64); err == nil {
				settings.ClockLimitMin = v
			}
		case "clock_increment":
			if v, err := strconv.Atoi(row.Value); err == nil {
				settings.ClockIncrement = v
			}
		case "variant":
			if row.Value != "" {
				settings.Variant = row.Value
			}
		case "rated":
			if v, err := strconv.ParseBool(row.Value); err == nil {
				settings.Rated = v
			}
		case "random_color":
			if v, err := strconv.ParseBool(row.Value); err == nil {
				settings.RandomColor = v
			}
		}
	}
	return settings, nil
}

func (s *Store) UpdateSettings(ctx context.Context, settings Settings) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	upsert := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	values := [][2]any{
		{"clock_limit_min", settings.ClockLimitMin},
		{"clock_increment", settings.ClockIncrement},
		{"variant", settings.Variant},
		{"rated", settings.Rated},
		{"random_color", settings.RandomColor},
	}
	for _, kv := range values {
		if _, err = tx.ExecContext(ctx, upsert, kv[0], kv[1]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
