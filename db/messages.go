package db

import (
	"renthub/models"

	"github.com/jinzhu/gorm"
)

type messageRepo struct{ db *gorm.DB }

func (r messageRepo) Create(message *models.Message) error {
	return classify("create message", "message", r.db.Create(message).Error)
}

func (r messageRepo) ListForUser(userID int64) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("sender_id = ? OR recipient_id = ?", userID, userID).Order("id desc").Find(&messages).Error
	return messages, classify("list messages", "message", err)
}

func (r messageRepo) DetachProperty(propertyID int64) error {
	err := r.db.Model(&models.Message{}).Where("property_id = ?", propertyID).
		UpdateColumn("property_id", gorm.Expr("NULL")).Error
	return classify("detach messages", "message", err)
}

func (r messageRepo) DeleteByUser(userID int64) error {
	err := r.db.Where("sender_id = ? OR recipient_id = ?", userID, userID).Delete(&models.Message{}).Error
	return classify("delete user messages", "message", err)
}

type resetCodeRepo struct{ db *gorm.DB }

func (r resetCodeRepo) Create(code *models.ResetCode) error {
	return classify("create reset code", "reset code", r.db.Create(code).Error)
}

func (r resetCodeRepo) Latest(userID int64) (models.ResetCode, error) {
	var code models.ResetCode
	err := r.db.Where("user_id = ?", userID).Order("id desc").First(&code).Error
	return code, classify("find reset code", "reset code", err)
}

func (r resetCodeRepo) DeleteByUser(userID int64) error {
	err := r.db.Where("user_id = ?", userID).Delete(&models.ResetCode{}).Error
	return classify("delete reset codes", "reset code", err)
}
