package db

import (
	"renthub/models"
	"renthub/store"

	"github.com/jinzhu/gorm"
)

type rentalRepo struct{ db *gorm.DB }

func (r rentalRepo) Insert(rental *models.Rental) error {
	return classify("insert rental", "rental", r.db.Create(rental).Error)
}

func (r rentalRepo) FindByID(id int64) (models.Rental, error) {
	var rental models.Rental
	err := r.db.Where("id = ?", id).First(&rental).Error
	return rental, classify("find rental", "rental", err)
}

func (r rentalRepo) Update(rental *models.Rental) error {
	return classify("update rental", "rental", r.db.Save(rental).Error)
}

func (r rentalRepo) UpdateStatus(id int64, status string) error {
	res := r.db.Model(&models.Rental{}).Where("id = ?", id).Update("status", status)
	return affected("update rental status", "rental", res)
}

func (r rentalRepo) Delete(id int64) error {
	return affected("delete rental", "rental", r.db.Where("id = ?", id).Delete(&models.Rental{}))
}

func (r rentalRepo) List(f store.RentalFilter) ([]models.Rental, error) {
	q := r.db.Model(&models.Rental{})
	if f.OwnerID != 0 {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.TenantID != 0 {
		q = q.Where("tenant_id = ?", f.TenantID)
	}
	if f.PropertyID != 0 {
		q = q.Where("property_id = ?", f.PropertyID)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN (?)", f.Statuses)
	}
	if !f.EndsBefore.IsZero() {
		q = q.Where("end_date < ?", f.EndsBefore)
	}

	var rentals []models.Rental
	err := q.Order("id desc").Find(&rentals).Error
	return rentals, classify("list rentals", "rental", err)
}

func (r rentalRepo) CountLive(propertyID int64) (int, error) {
	var n int
	err := r.db.Model(&models.Rental{}).
		Where("property_id = ? AND status IN (?)", propertyID, models.LiveRentalStatuses).
		Count(&n).Error
	return n, classify("count live rentals", "rental", err)
}

func (r rentalRepo) DeleteByProperty(propertyID int64) error {
	err := r.db.Where("property_id = ?", propertyID).Delete(&models.Rental{}).Error
	return classify("delete property rentals", "rental", err)
}
