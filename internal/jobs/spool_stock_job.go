package jobs

import (
	"context"
	"log/slog"

	"printshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SpoolStockJob periodically scans for visible materials with no spools left
// and logs a restock warning for each.
type SpoolStockJob struct {
	handler queries.GetDepletedMaterialsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSpoolStockJob creates a new job for spool stock checks.
func NewSpoolStockJob(handler queries.GetDepletedMaterialsQueryHandler, logger *slog.Logger) *SpoolStockJob {
	return &SpoolStockJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "spool_stock_job"),
	}
}

// Start begins the spool stock job to run daily at six in the morning.
func (j *SpoolStockJob) Start() error {
	_, err := j.cron.AddFunc("0 0 6 * * *", func() {
		ctx := context.Background()

		materials, err := j.handler.Handle(ctx, queries.NewGetDepletedMaterialsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Spool stock job failed", "error", err)
			return
		}

		for _, m := range materials {
			j.logger.WarnContext(ctx, "Material is out of spools",
				"materialId", m.ID.String(),
				"ownerId", m.OwnerID,
				"title", m.Title,
				"brand", m.Brand,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Spool stock job started (running daily)")
	return nil
}

// Stop stops the spool stock job.
func (j *SpoolStockJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Spool stock job stopped")
}
