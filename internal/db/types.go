package db

import "time"

// Settings are the values the schedule form starts with.
type Settings struct {
	ClockLimitMin  float64 `db:"clock_limit_min"`
	ClockIncrement int     `db:"clock_increment"`
	Variant        string  `db:"variant"`
	Rated          bool    `db:"rated"`
	RandomColor    bool    `db:"random_color"`
}

func DefaultSettings() Settings {
	return Settings{
		ClockLimitMin:  5,
		ClockIncrement: 3,
		Variant:        "standard",
		Rated:          true,
		RandomColor:    false,
	}
}

// Session is a logged-in operator and the API token their requests run with.
type Session struct {
	ID         string    `db:"id"`
	Username   string    `db:"username"`
	APIToken   string    `db:"api_token"`
	CreatedAt  time.Time `db:"-"`
	LastSeenAt time.Time `db:"-"`
}
