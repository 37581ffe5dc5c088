package postgres

import (
	"database/sql"
	"time"
)

type contestantTableModel struct {
	ID          int64          `db:"id"`
	PublicID    string         `db:"public_id"`
	Name        string         `db:"name"`
	Nickname    sql.NullString `db:"nickname"`
	CountryCode sql.NullString `db:"country_code"`
	AvatarURL   sql.NullString `db:"avatar_url"`
	Wins        int64          `db:"wins"`
	Losses      int64          `db:"losses"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type contestantInsertModel struct {
	PublicID    string    `db:"public_id"`
	Name        string    `db:"name"`
	Nickname    *string   `db:"nickname"`
	CountryCode *string   `db:"country_code"`
	AvatarURL   *string   `db:"avatar_url"`
	Wins        int64     `db:"wins"`
	Losses      int64     `db:"losses"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
