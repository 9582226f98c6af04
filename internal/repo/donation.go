package repo

import (
	"Alternify/internal/model"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type donationRepo struct {
	db *gorm.DB
}

// NewDonationRepository создаёт реализацию репозитория для Donation.
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepo{db: db}
}

func (r *donationRepo) Create(ctx context.Context, d *model.Donation) (string, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if err := conn(ctx, r.db).Create(d).Error; err != nil {
		return "", err
	}
	return d.ID, nil
}
