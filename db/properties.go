package db

import (
	"strings"

	"renthub/models"
	"renthub/store"

	"github.com/jinzhu/gorm"
)

type propertyRepo struct{ db *gorm.DB }

func (r propertyRepo) FindByID(id int64) (models.Property, error) {
	var property models.Property
	err := r.db.Where("id = ?", id).First(&property).Error
	return property, classify("find property", "property", err)
}

func (r propertyRepo) Search(f store.PropertyFilter) ([]models.Property, error) {
	q := r.db.Model(&models.Property{})
	if f.OwnerID != 0 {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN (?)", f.Statuses)
	}
	if f.City != "" {
		q = q.Where("LOWER(city) = ?", strings.ToLower(f.City))
	}
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if f.MinRent > 0 {
		q = q.Where("rent_amount >= ?", f.MinRent)
	}
	if f.MaxRent > 0 {
		q = q.Where("rent_amount <= ?", f.MaxRent)
	}
	if f.MinBedrooms > 0 {
		q = q.Where("bedrooms >= ?", f.MinBedrooms)
	}
	if f.Furnished != nil {
		q = q.Where("furnished = ?", *f.Furnished)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var properties []models.Property
	err := q.Order("id desc").Find(&properties).Error
	return properties, classify("search properties", "property", err)
}

func (r propertyRepo) IDsByOwner(ownerID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&models.Property{}).Where("owner_id = ?", ownerID).Order("id asc").Pluck("id", &ids).Error
	return ids, classify("list owner properties", "property", err)
}

func (r propertyRepo) Create(property *models.Property) error {
	return classify("create property", "property", r.db.Create(property).Error)
}

func (r propertyRepo) Update(property *models.Property) error {
	return classify("update property", "property", r.db.Save(property).Error)
}

func (r propertyRepo) UpdateStatus(id int64, status string) error {
	res := r.db.Model(&models.Property{}).Where("id = ?", id).Update("status", status)
	return affected("update property status", "property", res)
}

func (r propertyRepo) SwapStatus(id int64, from, to string) (bool, error) {
	res := r.db.Model(&models.Property{}).Where("id = ? AND status = ?", id, from).Update("status", to)
	if res.Error != nil {
		return false, classify("swap property status", "property", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r propertyRepo) Delete(id int64) error {
	return affected("delete property", "property", r.db.Where("id = ?", id).Delete(&models.Property{}))
}

type imageRepo struct{ db *gorm.DB }

func (r imageRepo) ListByProperty(propertyID int64) ([]models.PropertyImage, error) {
	var images []models.PropertyImage
	err := r.db.Where("property_id = ?", propertyID).Order("sort_order asc, id asc").Find(&images).Error
	return images, classify("list property images", "image", err)
}

func (r imageRepo) Create(image *models.PropertyImage) error {
	return classify("create property image", "image", r.db.Create(image).Error)
}

func (r imageRepo) DeleteByProperty(propertyID int64) error {
	err := r.db.Where("property_id = ?", propertyID).Delete(&models.PropertyImage{}).Error
	return classify("delete property images", "image", err)
}
