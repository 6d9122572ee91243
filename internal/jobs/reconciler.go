package jobs

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Reconciler recomputes the denormalized user counters from their source
// tables. reputation mirrors SUM(reputation_events.delta); report_count and
// verified_report_count mirror price_reports. Normal traffic maintains them
// transactionally, this catches drift from manual fixes or bugs.
type Reconciler struct {
	cron   *cron.Cron
	db     *gorm.DB
	logger *zap.Logger
}

func NewReconciler(db *gorm.DB, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		cron:   cron.New(),
		db:     db,
		logger: logger,
	}
}

func (r *Reconciler) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, func() {
		r.logger.Info("counter reconciliation started")
		r.Run()
	})
	if err != nil {
		return err
	}
	r.cron.Start()
	r.logger.Info("reconciler scheduled", zap.String("schedule", schedule))
	return nil
}

func (r *Reconciler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("reconciler stopped")
}

func (r *Reconciler) Run() {
	r.fix("reputation", `
		UPDATE users u SET reputation = s.total
		FROM (
			SELECT user_id, COALESCE(SUM(delta), 0) AS total
			FROM reputation_events
			WHERE deleted_at IS NULL
			GROUP BY user_id
		) s
		WHERE s.user_id = u.id AND u.reputation <> s.total`)

	r.fix("report_count", `
		UPDATE users u SET report_count = s.total
		FROM (
			SELECT user_id, COUNT(*) AS total
			FROM price_reports
			WHERE user_id IS NOT NULL AND deleted_at IS NULL
			GROUP BY user_id
		) s
		WHERE s.user_id = u.id AND u.report_count <> s.total`)

	r.fix("verified_report_count", `
		UPDATE users u SET verified_report_count = s.total
		FROM (
			SELECT user_id, COUNT(*) AS total
			FROM price_reports
			WHERE user_id IS NOT NULL AND status = 'verified' AND deleted_at IS NULL
			GROUP BY user_id
		) s
		WHERE s.user_id = u.id AND u.verified_report_count <> s.total`)
}

func (r *Reconciler) fix(counter, query string) {
	res := r.db.Exec(query)
	if res.Error != nil {
		r.logger.Error("counter reconciliation failed",
			zap.String("counter", counter),
			zap.Error(res.Error))
		return
	}
	if res.RowsAffected > 0 {
		r.logger.Warn("counter drift corrected",
			zap.String("counter", counter),
			zap.Int64("rows", res.RowsAffected))
	}
}
