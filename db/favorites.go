package db

import (
	"renthub/models"

	"github.com/jinzhu/gorm"
)

type favoriteRepo struct{ db *gorm.DB }

func (r favoriteRepo) Find(tenantID, propertyID int64) (models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.Where("tenant_id = ? AND property_id = ?", tenantID, propertyID).First(&favorite).Error
	return favorite, classify("find favorite", "favorite", err)
}

func (r favoriteRepo) Add(favorite *models.Favorite) error {
	return classify("add favorite", "favorite", r.db.Create(favorite).Error)
}

func (r favoriteRepo) Remove(tenantID, propertyID int64) error {
	res := r.db.Where("tenant_id = ? AND property_id = ?", tenantID, propertyID).Delete(&models.Favorite{})
	return affected("remove favorite", "favorite", res)
}

func (r favoriteRepo) ListByTenant(tenantID int64) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Where("tenant_id = ?", tenantID).Order("id desc").Find(&favorites).Error
	return favorites, classify("list favorites", "favorite", err)
}

func (r favoriteRepo) DeleteByProperty(propertyID int64) error {
	err := r.db.Where("property_id = ?", propertyID).Delete(&models.Favorite{}).Error
	return classify("delete property favorites", "favorite", err)
}

func (r favoriteRepo) DeleteByTenant(tenantID int64) error {
	err := r.db.Where("tenant_id = ?", tenantID).Delete(&models.Favorite{}).Error
	return classify("delete tenant favorites", "favorite", err)
}
