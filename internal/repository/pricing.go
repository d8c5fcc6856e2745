package repository

import (
	"context"
	"errors"
	"perfume-designer/internal/model"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PricingRepository interface {
	GetPrice(ctx context.Context, size string) (decimal.Decimal, bool, error)
	SetPrice(ctx context.Context, size string, price decimal.Decimal) error
	List(ctx context.Context) ([]*model.PricingEntry, error)
}

type pricingRepoImpl struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) PricingRepository {
	return &pricingRepoImpl{
		db: db,
	}
}

func (r *pricingRepoImpl) GetPrice(ctx context.Context, size string) (decimal.Decimal, bool, error) {
	var entry model.PricingEntry
	err := r.db.WithContext(ctx).
		Where("size = ?", size).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}

	return entry.Price, true, nil
}

func (r *pricingRepoImpl) SetPrice(ctx context.Context, size string, price decimal.Decimal) error {
	entry := &model.PricingEntry{
		Size:  size,
		Price: price,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "size"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"price":      price,
			"updated_at": time.Now(),
		}),
	}).Create(entry).Error
}

func (r *pricingRepoImpl) List(ctx context.Context) ([]*model.PricingEntry, error) {
	var entries []*model.PricingEntry
	err := r.db.WithContext(ctx).Order("size").Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
