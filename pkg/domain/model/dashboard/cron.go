package dashboard

import (
	"fmt"
	"math"

	"github.com/m-mizutani/mctl/pkg/domain/model/gateway"
)

// CronStatus is the outcome of a job's last run
type CronStatus string

const (
	CronStatusSuccess CronStatus = "success"
	CronStatusError   CronStatus = "error"
)

// CronJob is the display record for one scheduled job
type CronJob struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Schedule     string     `json:"schedule"`
	Enabled      bool       `json:"enabled"`
	LastRun      string     `json:"lastRun"`
	NextRun      string     `json:"nextRun"`
	Status       CronStatus `json:"status"`
	LastDuration string     `json:"lastDuration"`
}

const (
	notAvailable = "N/A"
	neverRun     = "Never"
)

// NewCronJob reshapes the scheduler's job state for display
func NewCronJob(raw gateway.CronJob, tf TimeFormatter) CronJob {
	job := CronJob{
		Name:         raw.Name,
		Description:  raw.Description,
		Schedule:     notAvailable,
		Enabled:      raw.Enabled,
		LastRun:      neverRun,
		NextRun:      notAvailable,
		Status:       CronStatusError,
		LastDuration: notAvailable,
	}
	if job.Description == "" {
		job.Description = raw.Name
	}
	if raw.Schedule != nil && raw.Schedule.Expr != "" {
		job.Schedule = raw.Schedule.Expr
	}

	if st := raw.State; st != nil {
		job.LastRun = tf.FormatMillis(st.LastRunAtMs.Int64(), neverRun)
		job.NextRun = tf.FormatMillis(st.NextRunAtMs.Int64(), notAvailable)
		job.Status = DeriveCronStatus(st.LastStatus)
		job.LastDuration = FormatDuration(st.LastDurationMs.Int64())
	}

	return job
}

// DeriveCronStatus maps the gateway's "ok" flag to success and everything else to error
func DeriveCronStatus(lastStatus string) CronStatus {
	if lastStatus == gateway.LastStatusOK {
		return CronStatusSuccess
	}
	return CronStatusError
}

// FormatDuration renders milliseconds as whole seconds, e.g. 4200 -> "4s"
func FormatDuration(ms int64) string {
	if ms <= 0 {
		return notAvailable
	}
	return fmt.Sprintf("%ds", int64(math.Round(float64(ms)/1000)))
}
