package main

import (
	"flag"
	"log"

	"github.com/wakili/console/internal/auth"
	"github.com/wakili/console/internal/config"
	"github.com/wakili/console/internal/database"
	"github.com/wakili/console/internal/fixture"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	// Parse command line flags
	adminPassword := flag.String("admin-password", "changeme123", "Password assigned to seeded admin accounts")
	withAdmins := flag.Bool("admins", true, "Seed admin accounts")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migration
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	totalInserted := 0
	totalSkipped := 0

	ins, skip := seedSlice(db, "law categories", fixture.LawCategories())
	totalInserted, totalSkipped = totalInserted+ins, totalSkipped+skip

	ins, skip = seedSlice(db, "user accounts", fixture.UserAccounts())
	totalInserted, totalSkipped = totalInserted+ins, totalSkipped+skip

	ins, skip = seedSlice(db, "verification requests", fixture.VerificationRequests())
	totalInserted, totalSkipped = totalInserted+ins, totalSkipped+skip

	ins, skip = seedSlice(db, "credentials", fixture.Credentials())
	totalInserted, totalSkipped = totalInserted+ins, totalSkipped+skip

	ins, skip = seedSlice(db, "reviews", fixture.Reviews())
	totalInserted, totalSkipped = totalInserted+ins, totalSkipped+skip

	if *withAdmins {
		ins, skip = seedAdmins(db, *adminPassword)
		totalInserted, totalSkipped = totalInserted+ins, totalSkipped+skip
	}

	log.Printf("Seeding complete. Total inserted: %d, Total skipped: %d", totalInserted, totalSkipped)
}

func seedSlice[T any](db *gorm.DB, kind string, rows []T) (inserted int, skipped int) {
	for i := range rows {
		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows[i])
		if result.Error != nil {
			log.Printf("Error inserting %s row: %v", kind, result.Error)
			skipped++
			continue
		}
		if result.RowsAffected > 0 {
			inserted++
		} else {
			skipped++
		}
	}
	log.Printf("%s: inserted=%d, skipped=%d", kind, inserted, skipped)
	return inserted, skipped
}

func seedAdmins(db *gorm.DB, password string) (inserted int, skipped int) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	for _, admin := range fixture.Admins() {
		admin.PasswordHash = hash

		var count int64
		db.Model(&admin).Where("email = ?", admin.Email).Count(&count)
		if count > 0 {
			skipped++
			continue
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Printf("Error inserting admin %s: %v", admin.Email, err)
			skipped++
			continue
		}
		inserted++
	}
	log.Printf("admin accounts: inserted=%d, skipped=%d", inserted, skipped)
	return inserted, skipped
}
