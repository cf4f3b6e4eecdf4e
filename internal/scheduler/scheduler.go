package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Jobs are the callbacks fired by the scheduler. Either may be nil.
type Jobs struct {
	ReloadCompanies func()
	RefreshStock    func()
}

// Scheduler manages the periodic refresh tasks.
type Scheduler struct {
	Cron *cron.Cron
	Jobs Jobs
}

// NewScheduler creates a new Scheduler. Specs use six fields (with seconds).
func NewScheduler(jobs Jobs) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Jobs: jobs,
	}
}

// RegisterAll registers the company reload and stock refresh tasks.
// An empty spec leaves that task disabled.
func (s *Scheduler) RegisterAll(companiesCron, refreshCron string) error {
	if companiesCron != "" && s.Jobs.ReloadCompanies != nil {
		if _, err := s.Cron.AddFunc(companiesCron, s.companiesTask); err != nil {
			return fmt.Errorf("register companies task: %w", err)
		}
		log.Printf("[INFO] companies reload scheduled: %s", companiesCron)
	}
	if refreshCron != "" && s.Jobs.RefreshStock != nil {
		if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
			return fmt.Errorf("register refresh task: %w", err)
		}
		log.Printf("[INFO] stock refresh scheduled: %s", refreshCron)
	}
	return nil
}

// Len returns the number of registered tasks.
func (s *Scheduler) Len() int { return len(s.Cron.Entries()) }

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) companiesTask() {
	log.Println("[INFO] running scheduled companies reload")
	s.Jobs.ReloadCompanies()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running scheduled stock refresh")
	s.Jobs.RefreshStock()
}
