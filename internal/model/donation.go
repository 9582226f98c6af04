package model

import "time"

// Donation плоская запись пожертвования. Создаётся один раз и не меняется.
type Donation struct {
	ID            string    `gorm:"primaryKey;type:uuid" json:"_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
}
