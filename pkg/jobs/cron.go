package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nexaai/nexa-backend/pkg/backup"
	"github.com/nexaai/nexa-backend/pkg/tokenstore"
)

// sweepBatchSize caps one DueForRefresh page. The sweep loops until the
// store returns an empty page, so the cap only bounds memory, not coverage.
const sweepBatchSize = 500

// CronManager manages scheduled ledger jobs
type CronManager struct {
	cron          *cron.Cron
	store         *tokenstore.Store
	backup        *backup.Service
	retentionDays int
	logger        *log.Logger
}

// NewCronManager creates a new cron manager. The backup service may be nil
// when S3 is not configured; backup jobs are skipped in that case.
func NewCronManager(store *tokenstore.Store, backupSvc *backup.Service, retentionDays int, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:          cron.New(),
		store:         store,
		backup:        backupSvc,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Hourly at :05: top up accounts whose refresh window elapsed while they
	// were away. The lazy on-access refresh covers active users; this sweep
	// covers everyone else so a returning user always sees a full allowance.
	_, err := cm.cron.AddFunc("5 * * * *", func() {
		cm.logger.Println("🕐 Running allowance sweep...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		cm.RunAllowanceSweep(ctx)
	})
	if err != nil {
		return err
	}

	if cm.backup != nil {
		// Daily at 3 AM: full ledger backup to S3
		_, err = cm.cron.AddFunc("0 3 * * *", func() {
			cm.logger.Println("🕐 Running nightly ledger backup...")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()

			result, err := cm.backup.CreateBackup(ctx)
			if err != nil {
				cm.logger.Printf("❌ Nightly backup failed: %v", err)
				return
			}
			cm.logger.Printf("✅ Nightly backup completed: %s (%d bytes)", result.Filename, result.FileSize)
		})
		if err != nil {
			return err
		}

		// Weekly on Sunday at 4 AM: archive the transaction audit trail,
		// then prune rows past retention. Prune only runs after a
		// successful archive so history is never lost.
		_, err = cm.cron.AddFunc("0 4 * * 0", func() {
			cm.logger.Println("🕐 Running weekly transaction archive...")

			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Hour)
			defer cancel()

			if _, err := cm.backup.ArchiveTransactions(ctx); err != nil {
				cm.logger.Printf("❌ Transaction archive failed, skipping prune: %v", err)
				return
			}

			if cm.retentionDays > 0 {
				cutoff := time.Now().UTC().AddDate(0, 0, -cm.retentionDays)
				pruned, err := cm.store.PruneTransactions(ctx, cutoff)
				if err != nil {
					cm.logger.Printf("❌ Failed to prune transactions: %v", err)
					return
				}
				cm.logger.Printf("🗑️  Pruned %d transactions older than %d days", pruned, cm.retentionDays)
			}

			cm.logger.Println("✅ Weekly transaction archive completed")
		})
		if err != nil {
			return err
		}
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Hourly at :05: Allowance sweep")
	if cm.backup != nil {
		cm.logger.Println("  - Daily at 3 AM: Ledger backup")
		cm.logger.Println("  - Weekly on Sunday at 4 AM: Transaction archive and prune")
	}

	return nil
}

// RunAllowanceSweep refreshes every account whose daily window has elapsed.
// Exposed for manual triggering from an admin shell.
func (cm *CronManager) RunAllowanceSweep(ctx context.Context) {
	var refreshed, failed int

	for {
		due, err := cm.store.DueForRefresh(ctx, sweepBatchSize)
		if err != nil {
			cm.logger.Printf("❌ Allowance sweep aborted: %v", err)
			return
		}
		if len(due) == 0 {
			break
		}

		pageRefreshed := 0
		for _, userID := range due {
			if err := cm.store.RefreshDailyAllowance(ctx, userID); err != nil {
				cm.logger.Printf("⚠️ Failed to refresh allowance for %s: %v", userID, err)
				failed++
				continue
			}
			pageRefreshed++
		}
		refreshed += pageRefreshed

		// A short page means the backlog is drained. A page with no
		// progress means the store keeps returning the same failing rows.
		if len(due) < sweepBatchSize || pageRefreshed == 0 {
			break
		}
	}

	cm.logger.Printf("✅ Allowance sweep completed: %d refreshed, %d failed", refreshed, failed)
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
