package database

import (
	"fmt"
	"time"

	"mindgarden/internal/config"
	logging "mindgarden/internal/logging"
	"mindgarden/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Create our custom GORM logger
	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = logger.Warn

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create custom indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.User{},
		&models.HealthMetric{},
		&models.UserData{},
		&models.AnalysisResult{},
		&models.ChatSession{},
		&models.ChatMessage{},
		&models.EmotionAnalysis{},
		&models.EmotionHistory{},
		&models.SoapNote{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_analysis_user_time ON analysis_results (user_id, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_user_data_user_type ON user_data (user_id, data_type);`,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_session_time ON chat_messages (session_id, "timestamp");`,
	}
	for _, idx := range indexes {
		if err := DB.Exec(idx).Error; err != nil {
			log.Fatal("Failed to create custom index", zap.Error(err))
		}
	}
	log.Info("Custom indexes ensured successfully.")
}

// Seed populates an empty database with one sample patient, metrics, and an
// active session, mirroring the demo data the platform ships with. It is a
// no-op when any users already exist.
func Seed(log *zap.Logger) {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Error("Failed to check for existing users, skipping seed", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{Name: "Alex", Email: "alex@example.com"}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		metrics := models.HealthMetric{
			UserID:       user.ID,
			EnergyLevel:  3,
			GrowthPoints: 2450,
			CheckIns:     24,
			EnergyStreak: 7,
			MoodScore:    0.5,
		}
		if err := tx.Create(&metrics).Error; err != nil {
			return err
		}

		primary := "Joy"
		confidence := 30.0
		duration := 25
		session := models.ChatSession{
			PatientID:         user.ID,
			TherapistID:       1,
			SessionDate:       time.Now(),
			Status:            models.SessionActive,
			DurationMinutes:   &duration,
			PrimaryEmotion:    &primary,
			EmotionConfidence: &confidence,
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		messages := []models.ChatMessage{
			{
				SessionID:  session.ID,
				SenderType: models.SenderPatient,
				SenderID:   user.ID,
				Content:    "I also reconnected with an old friend, which made me feel better. These small moments have been bright spots in an otherwise difficult time.",
				Timestamp:  time.Now(),
			},
			{
				SessionID:  session.ID,
				SenderType: models.SenderTherapist,
				SenderID:   1,
				Content:    "That's wonderful to hear about the gardening and reconnecting with your friend. These are excellent coping strategies. Have you been practicing any of the mindfulness techniques we discussed in our last session?",
				Timestamp:  time.Now(),
			},
		}
		return tx.Create(&messages).Error
	})
	if err != nil {
		log.Error("Failed to seed sample data", zap.Error(err))
		return
	}
	log.Info("Sample data created successfully.")
}
