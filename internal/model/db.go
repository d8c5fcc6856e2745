package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuestionType string

const (
	QuestionSingle   QuestionType = "single"
	QuestionMultiple QuestionType = "multiple"
	QuestionText     QuestionType = "text"
)

// HasOptions reports whether answers are picked from a fixed option list.
func (t QuestionType) HasOptions() bool {
	return t == QuestionSingle || t == QuestionMultiple
}

type Question struct {
	ID        string       `gorm:"primaryKey;size:64;not null"` // q1..q11 for the seeded set
	Text      string       `gorm:"not null"`
	Type      QuestionType `gorm:"size:32;not null"` // single, multiple, text; unknown values are kept as-is
	Options   []string     `gorm:"serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PricingEntry struct {
	Size      string          `gorm:"primaryKey;size:8;not null"` // bottle size in ml: 35, 50
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	UpdatedAt time.Time
}

type Order struct {
	ID              string    `gorm:"primaryKey;size:36;not null"`
	Responses       Responses `gorm:"serializer:json"`
	Size            string    `gorm:"size:8;index"`
	Gift            bool      `gorm:"not null"`
	Note            string
	UserDescription string
	AdminFormula    string
	Paid            bool            `gorm:"not null;index"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"` // copied from pricing at submission
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
