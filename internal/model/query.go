package model

import "time"

// Query: опубликованный продукт, к которому ищут альтернативы.
type Query struct {
	ID string `gorm:"primaryKey;type:uuid" json:"_id"`

	ProductName string `json:"product_name"`
	ImageURL    string `json:"image_url"`
	Details     string `json:"details"`
	QueryTitle  string `json:"query_title"`
	Brand       string `json:"brand"`

	UserEmail string `gorm:"index" json:"user_email"`
	UserName  string `json:"user_name,omitempty"`
	UserImage string `json:"user_image,omitempty"`

	// Меняется только через AdjustCount
	RecommendationCount int64 `gorm:"not null;default:0" json:"recommendation_count"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// QueryFields: редактируемые поля, которые полностью заменяет update.
type QueryFields struct {
	ProductName string `json:"product_name"`
	ImageURL    string `json:"image_url"`
	Details     string `json:"details"`
	QueryTitle  string `json:"query_title"`
	Brand       string `json:"brand"`
}

// EditableColumns колонки, входящие в набор замены при update.
var EditableColumns = []string{"product_name", "image_url", "details", "query_title", "brand"}
