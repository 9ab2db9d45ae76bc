package db

import (
	"renthub/models"
	"renthub/store"

	"github.com/jinzhu/gorm"
)

type contactRepo struct{ db *gorm.DB }

func (r contactRepo) Create(request *models.ContactRequest) error {
	return classify("create contact request", "contact request", r.db.Create(request).Error)
}

func (r contactRepo) FindByID(id int64) (models.ContactRequest, error) {
	var request models.ContactRequest
	err := r.db.Where("id = ?", id).First(&request).Error
	return request, classify("find contact request", "contact request", err)
}

func (r contactRepo) UpdateStatus(id int64, status string) error {
	res := r.db.Model(&models.ContactRequest{}).Where("id = ?", id).Update("status", status)
	return affected("update contact request status", "contact request", res)
}

func (r contactRepo) List(f store.ContactRequestFilter) ([]models.ContactRequest, error) {
	q := r.db.Model(&models.ContactRequest{})
	if f.OwnerID != 0 {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.TenantID != 0 {
		q = q.Where("tenant_id = ?", f.TenantID)
	}
	var requests []models.ContactRequest
	err := q.Order("id desc").Find(&requests).Error
	return requests, classify("list contact requests", "contact request", err)
}

func (r contactRepo) DeleteByProperty(propertyID int64) error {
	err := r.db.Where("property_id = ?", propertyID).Delete(&models.ContactRequest{}).Error
	return classify("delete property contact requests", "contact request", err)
}

func (r contactRepo) DeleteByUser(userID int64) error {
	err := r.db.Where("owner_id = ? OR tenant_id = ?", userID, userID).Delete(&models.ContactRequest{}).Error
	return classify("delete user contact requests", "contact request", err)
}
