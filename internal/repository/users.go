package repository

import (
	"context"

	"mindgarden/internal/database"
	"mindgarden/internal/models"

	"gorm.io/gorm"
)

// CreateUser inserts the user and its initial metrics snapshot in one
// transaction, returning the new user id.
func CreateUser(ctx context.Context, name, email string) (int, error) {
	var userID int
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := models.User{Name: name, Email: email}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		metrics := models.HealthMetric{
			UserID:      user.ID,
			EnergyLevel: 3,
			MoodScore:   0.5,
		}
		if err := tx.Create(&metrics).Error; err != nil {
			return err
		}

		userID = user.ID
		return nil
	})
	return userID, err
}

func GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := database.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
