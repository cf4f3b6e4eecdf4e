package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRegisterAll_SkipsEmpty(t *testing.T) {
	s := NewScheduler(Jobs{ReloadCompanies: func() {}, RefreshStock: func() {}})
	if err := s.RegisterAll("", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected no tasks, got %d", s.Len())
	}
}

func TestRegisterAll_BadSpec(t *testing.T) {
	s := NewScheduler(Jobs{RefreshStock: func() {}})
	if err := s.RegisterAll("", "every five minutes"); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestRegisterAll_NilJobIgnored(t *testing.T) {
	s := NewScheduler(Jobs{RefreshStock: func() {}})
	if err := s.RegisterAll("0 0 * * * *", "0 */5 * * * *"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 task, got %d", s.Len())
	}
}

func TestScheduler_Fires(t *testing.T) {
	var fired atomic.Int32
	s := NewScheduler(Jobs{RefreshStock: func() { fired.Add(1) }})
	if err := s.RegisterAll("", "* * * * * *"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Start()
	deadline := time.Now().Add(3 * time.Second)
	for fired.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	s.Stop()
	if fired.Load() == 0 {
		t.Fatal("refresh job never fired")
	}
}
