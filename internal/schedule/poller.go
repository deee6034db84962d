package schedule

import (
	"fmt"

	"github.com/robfig/cron/v3"

	appLog "github.com/cwarden/agenda/internal/log"
)

// Poller calls reload on a cron schedule. It covers data files on
// filesystems that do not deliver change notifications.
type Poller struct {
	cron *cron.Cron
	spec string
}

// NewPoller validates spec (standard five-field cron syntax or a
// descriptor such as "@every 5m") without starting anything.
func NewPoller(spec string, reload func() error) (*Poller, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := reload(); err != nil {
			appLog.Error("scheduled reload failed", err, "spec", spec)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return &Poller{cron: c, spec: spec}, nil
}

func (p *Poller) Start() {
	appLog.Debug("reload poller started", "spec", p.spec)
	p.cron.Start()
}

// Stop halts the schedule and waits for a running reload to finish.
func (p *Poller) Stop() {
	<-p.cron.Stop().Done()
}
