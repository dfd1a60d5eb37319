package main

import (
	"os"
	"path/filepath"

	"mindgarden/internal/analysis"
	"mindgarden/internal/config"
	"mindgarden/internal/database"
	logger "mindgarden/internal/logging"
	"mindgarden/internal/router"

	"go.uber.org/zap"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".", logger.DefaultRotation)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Database
	database.Init(log)
	if config.Conf.Server.SeedSampleData {
		database.Seed(log)
	}

	// Upload directories for voice messages, call recordings, and feedback
	// attachments must exist before the first multipart request.
	uploadRoot := config.Conf.Uploads.Directory
	for _, dir := range []string{"", "calls", "voice", "social", "feedback"} {
		if err := os.MkdirAll(filepath.Join(uploadRoot, dir), 0755); err != nil {
			log.Fatal("Failed to create upload directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	// Select the classifier once at startup and inject it into the pipeline.
	classifier, mlMode := analysis.NewClassifier(config.Conf.ML, log)

	// Setup router, passing the logger and classifier to it
	r := router.Setup(log, classifier, mlMode)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
