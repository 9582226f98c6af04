package model

import "time"

// Recommendation: альтернатива, предложенная к Query.
type Recommendation struct {
	ID string `gorm:"primaryKey;type:uuid" json:"_id"`

	// Ссылка на queries.id хранится как обычный текст, без внешнего ключа.
	QueryID string `gorm:"not null;index" json:"queryId"`

	RecommendationTitle     string `json:"recommendation_title"`
	RecommendedProductName  string `json:"recommended_product_name"`
	RecommendedProductImage string `json:"recommended_product_image"`
	RecommendationReason    string `json:"recommendation_reason"`

	RecommenderEmail string `gorm:"index" json:"recommender_email"`
	RecommenderName  string `json:"recommender_name,omitempty"`

	// Копия полей исходного запроса; UserEmail: автор Query (получатель рекомендации).
	QueryTitle  string `json:"query_title,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	UserEmail   string `gorm:"index" json:"user_email"`
	UserName    string `json:"user_name,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
