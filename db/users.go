package db

import (
	"renthub/models"

	"github.com/jinzhu/gorm"
)

type userRepo struct{ db *gorm.DB }

func (r userRepo) FindByID(id int64) (models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	return user, classify("find user", "user", err)
}

func (r userRepo) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, classify("find user by email", "user", err)
}

func (r userRepo) FindByRole(role string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("id asc").Find(&users).Error
	return users, classify("find users by role", "user", err)
}

func (r userRepo) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id asc").Find(&users).Error
	return users, classify("list users", "user", err)
}

func (r userRepo) Create(user *models.User) error {
	return classify("create user", "user", r.db.Create(user).Error)
}

// UpdateRole keeps the legacy is_admin flag in step with the role.
func (r userRepo) UpdateRole(id int64, role string) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"role":     role,
		"is_admin": role == models.ROLE_ADMIN,
	})
	return affected("update user role", "user", res)
}

func (r userRepo) UpdatePassword(id int64, hash string) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", hash)
	return affected("update password", "user", res)
}

func (r userRepo) Delete(id int64) error {
	return affected("delete user", "user", r.db.Where("id = ?", id).Delete(&models.User{}))
}
