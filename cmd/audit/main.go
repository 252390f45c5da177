package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wakili/console/internal/config"
	"github.com/wakili/console/internal/model"
	"github.com/wakili/console/internal/moderation"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Issue is a single data integrity violation found during the audit.
type Issue struct {
	Kind    string
	ID      string
	Type    string
	Details string
}

type auditable struct {
	kind   string
	id     string
	status string
	reason string
	rules  moderation.Ruleset
}

func main() {
	workers := flag.Int("workers", 10, "Number of parallel workers")
	outputFile := flag.String("output", "audit_results.json", "Output file for results")
	flag.Parse()

	cfg := config.Load()
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	rowChan := make(chan auditable, *workers*10)
	issueChan := make(chan Issue, 1000)

	var processed int64
	var issueCount int64
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rowChan {
				for _, issue := range auditRow(row) {
					issueChan <- issue
					atomic.AddInt64(&issueCount, 1)
				}
				p := atomic.AddInt64(&processed, 1)
				if p%1000 == 0 {
					fmt.Printf("Progress: %d rows processed, issues found: %d\n",
						p, atomic.LoadInt64(&issueCount))
				}
			}
		}()
	}

	// Collect issues
	var issues []Issue
	var issuesMu sync.Mutex
	done := make(chan bool)
	go func() {
		for issue := range issueChan {
			issuesMu.Lock()
			issues = append(issues, issue)
			issuesMu.Unlock()
		}
		done <- true
	}()

	startTime := time.Now()
	total := feedRows(db, rowChan, issueChan, &issueCount)

	close(rowChan)
	wg.Wait()
	close(issueChan)
	<-done

	elapsed := time.Since(startTime)
	fmt.Printf("\n=== Audit Complete ===\n")
	fmt.Printf("Total rows: %d\n", total)
	if total > 0 {
		fmt.Printf("Issues found: %d (%.2f%%)\n", len(issues), float64(len(issues))/float64(total)*100)
	} else {
		fmt.Printf("Issues found: %d\n", len(issues))
	}
	fmt.Printf("Time elapsed: %v\n", elapsed)

	// Group issues by type
	issuesByType := make(map[string][]Issue)
	for _, issue := range issues {
		issuesByType[issue.Type] = append(issuesByType[issue.Type], issue)
	}

	fmt.Printf("\n=== Issues by Type ===\n")
	for typ, typeIssues := range issuesByType {
		fmt.Printf("%s: %d\n", typ, len(typeIssues))
	}

	// Save results
	output := map[string]interface{}{
		"summary": map[string]interface{}{
			"total":   total,
			"issues":  len(issues),
			"elapsed": elapsed.String(),
		},
		"issuesByType": issuesByType,
		"issues":       issues,
	}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	if err := os.WriteFile(*outputFile, jsonData, 0644); err != nil {
		log.Printf("Failed to write output file: %v", err)
	} else {
		fmt.Printf("\nResults saved to %s\n", *outputFile)
	}
}

// feedRows streams every moderated table through the worker channel and
// runs the table-level checks that need the whole dataset.
func feedRows(db *gorm.DB, rowChan chan<- auditable, issueChan chan<- Issue, issueCount *int64) int64 {
	var total int64

	verificationRules := moderation.DecisionRules("verification")
	credentialRules := moderation.DecisionRules("credential")
	reviewRules := moderation.ReviewRules()
	accountRules := moderation.AccountRules()

	var verifications []model.VerificationRequest
	db.Find(&verifications)
	for _, v := range verifications {
		total++
		rowChan <- auditable{kind: "verification", id: v.ID, status: v.Status, reason: v.RejectionReason, rules: verificationRules}
	}

	var credentials []model.Credential
	db.Find(&credentials)
	for _, cr := range credentials {
		total++
		rowChan <- auditable{kind: "credential", id: cr.ID, status: cr.Status, reason: cr.RejectionReason, rules: credentialRules}
	}

	var reviews []model.Review
	db.Find(&reviews)
	for _, r := range reviews {
		total++
		rowChan <- auditable{kind: "review", id: r.ID, status: r.Status, reason: r.FlagReason, rules: reviewRules}
	}

	var users []model.UserAccount
	db.Find(&users)
	for _, u := range users {
		total++
		rowChan <- auditable{kind: "user", id: u.ID, status: u.Status, reason: u.SuspensionReason, rules: accountRules}
	}

	// Duplicate admin emails break the login uniqueness assumption.
	var admins []model.Admin
	db.Find(&admins)
	seen := make(map[string]string)
	for _, a := range admins {
		total++
		email := strings.ToLower(a.Email)
		if firstID, ok := seen[email]; ok {
			issueChan <- Issue{
				Kind:    "admin",
				ID:      a.ID,
				Type:    "DUPLICATE_EMAIL",
				Details: fmt.Sprintf("Email '%s' already used by admin %s", a.Email, firstID),
			}
			atomic.AddInt64(issueCount, 1)
		} else {
			seen[email] = a.ID
		}
	}

	return total
}

func auditRow(row auditable) []Issue {
	var issues []Issue

	if !row.rules.Known(row.status) {
		issues = append(issues, Issue{
			Kind:    row.kind,
			ID:      row.id,
			Type:    "UNKNOWN_STATUS",
			Details: fmt.Sprintf("Status '%s' is not part of the %s lifecycle", row.status, row.rules.Kind),
		})
		return issues
	}

	// Statuses that were reached through a reason-gated transition must
	// carry that reason. Flagged reviews keep the reason on the flag itself.
	needsReason := row.rules.NeedsReason[row.status] ||
		(row.kind == "review" && row.status == model.ReviewStatusFlagged)
	if needsReason && strings.TrimSpace(row.reason) == "" {
		issues = append(issues, Issue{
			Kind:    row.kind,
			ID:      row.id,
			Type:    "MISSING_REASON",
			Details: fmt.Sprintf("Status '%s' requires a recorded reason", row.status),
		})
	}

	return issues
}
