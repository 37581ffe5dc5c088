package contestant

import (
	"fmt"
	"strings"
	"time"
)

// Contestant is a competitor tracked with a running win/loss record.
type Contestant struct {
	ID          string
	Name        string
	Nickname    string
	CountryCode string
	AvatarURL   string
	Wins        int64
	Losses      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Contestant) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("contestant id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("contestant name is required")
	}
	if c.Wins < 0 {
		return fmt.Errorf("contestant wins cannot be negative")
	}
	if c.Losses < 0 {
		return fmt.Errorf("contestant losses cannot be negative")
	}

	return nil
}

// Patch carries the descriptive fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Name        *string
	Nickname    *string
	CountryCode *string
	AvatarURL   *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Nickname == nil && p.CountryCode == nil && p.AvatarURL == nil
}

// Apply returns c with the supplied patch fields merged in.
func (p Patch) Apply(c Contestant) Contestant {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Nickname != nil {
		c.Nickname = *p.Nickname
	}
	if p.CountryCode != nil {
		c.CountryCode = *p.CountryCode
	}
	if p.AvatarURL != nil {
		c.AvatarURL = *p.AvatarURL
	}

	return c
}

// Counter names one of the record counters.
type Counter string

const (
	CounterWins   Counter = "wins"
	CounterLosses Counter = "losses"
)

func (c Counter) Valid() bool {
	switch c {
	case CounterWins, CounterLosses:
		return true
	default:
		return false
	}
}

// Bump returns item with the counter incremented by one.
func (c Counter) Bump(item Contestant) Contestant {
	switch c {
	case CounterWins:
		item.Wins++
	case CounterLosses:
		item.Losses++
	}
	return item
}
