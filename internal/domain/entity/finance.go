package entity

import (
	"time"
)

const (
	FinanceTypeIncome  = "income"
	FinanceTypeExpense = "expense"
)

type FinanceEntry struct {
	ID          string    `json:"id" bson:"_id"`
	Type        string    `json:"type" bson:"type"` // income, expense
	Category    string    `json:"category" bson:"category"`
	Amount      float64   `json:"amount" bson:"amount"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Date        time.Time `json:"date" bson:"date"`
	RecordedBy  string    `json:"recorded_by" bson:"recordedBy"`
	CreatedAt   time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updatedAt"`
}

type FinanceSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Net          float64 `json:"net"`
}
