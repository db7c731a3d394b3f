package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueScanSchedule runs the scan at the top of every hour.
const DefaultOverdueScanSchedule = "0 0 * * * *"

// OverdueOrdersFinder lists open orders whose deadline has passed.
type OverdueOrdersFinder interface {
	Handle(ctx context.Context, query queries.GetOverdueOrdersQuery) ([]queries.GetOverdueOrdersQueryResponse, error)
}

// OverdueOrdersJob periodically reports overdue orders as warnings so staff can chase them.
type OverdueOrdersJob struct {
	finder   OverdueOrdersFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewOverdueOrdersJob creates the scan job. An empty schedule falls back to
// DefaultOverdueScanSchedule; schedules use the six-field cron format with seconds.
func NewOverdueOrdersJob(finder OverdueOrdersFinder, schedule string, logger *slog.Logger) *OverdueOrdersJob {
	if schedule == "" {
		schedule = DefaultOverdueScanSchedule
	}
	return &OverdueOrdersJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_orders_job"),
		now:      time.Now,
	}
}

// Start schedules the scan.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started", "schedule", j.schedule)
	return nil
}

// Run performs one scan and returns the number of overdue orders found.
func (j *OverdueOrdersJob) Run(ctx context.Context) int {
	query, err := queries.NewGetOverdueOrdersQuery(kernel.DateFromTime(j.now()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		return 0
	}

	overdue, err := j.finder.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		return 0
	}

	for _, o := range overdue {
		j.logger.WarnContext(ctx, "Order is overdue",
			"order_code", o.Code.String(),
			"customer", o.CustomerName,
			"mobile_no", o.MobileNo,
			"status", o.Status.String(),
			"deadline", o.Deadline.String(),
			"balance", o.Balance.String(),
		)
	}

	return len(overdue)
}

// Stop waits for a running scan to finish.
func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
