package dto

import (
	"perfume-designer/internal/model"

	"github.com/shopspring/decimal"
)

// DesignRequest is a submitted quiz. Values holds every form field so answers
// can be read by question id once the question types are known.
type DesignRequest struct {
	Values map[string][]string
	Size   string
	Gift   bool
	Note   string
}

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type PricingRequest struct {
	Size  string `form:"size"`
	Price string `form:"price"`
}

type QuestionRequest struct {
	ID      string `form:"id"`
	Text    string `form:"text"`
	Type    string `form:"type"`
	Options string `form:"options"` // comma separated
}

type OrderSummary struct {
	Order *model.Order
	// CurrentPrice is the price of the order's size right now, which can
	// differ from the price stored at submission.
	CurrentPrice decimal.Decimal
}

type Dashboard struct {
	Pricing   []*model.PricingEntry
	Questions []*model.Question
	Orders    []*model.Order
}
