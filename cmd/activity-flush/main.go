package main

import (
	"flag"
	"log"
	"time"

	"github.com/wakili/console/internal/config"
	"github.com/wakili/console/internal/database"
	"github.com/wakili/console/internal/model"
)

func main() {
	// Parse command line flags
	dryRun := flag.Bool("dry-run", false, "Show what would be deleted without actually deleting")
	retention := flag.Duration("retention", 0, "Override ACTIVITY_RETENTION from the environment")
	flag.Parse()

	startTime := time.Now()
	log.Println("Starting activity flush job...")

	// Load configuration
	cfg := config.Load()
	keep := cfg.ActivityRetention
	if *retention > 0 {
		keep = *retention
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migration to ensure tables exist
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	cutoff := time.Now().Add(-keep)
	log.Printf("Retention window: %v (cutoff %s)", keep, cutoff.Format(time.RFC3339))

	var stale int64
	if err := db.Model(&model.Activity{}).Where("created_at < ?", cutoff).Count(&stale).Error; err != nil {
		log.Fatalf("Failed to count stale activities: %v", err)
	}

	if *dryRun {
		log.Printf("[DRY RUN] Would delete %d activity entries", stale)
		log.Println("[DRY RUN] No changes made")
		return
	}

	result := db.Where("created_at < ?", cutoff).Delete(&model.Activity{})
	if result.Error != nil {
		log.Fatalf("Failed to delete stale activities: %v", result.Error)
	}

	elapsed := time.Since(startTime)
	log.Printf("Activity flush complete. Deleted %d entries in %v", result.RowsAffected, elapsed)
}
