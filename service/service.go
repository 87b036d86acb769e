package service

import (
	"errors"
	"fmt"
	"log"
)

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: the speaker, the timer scheduler
//
// Lifecycle:
//  1. Construction
//  2. Start() - acquire devices, launch background goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// funcService adapts plain functions to Service
type funcService struct {
	name  string
	start func() error
	stop  func()
}

// Func builds a Service from start and stop callbacks, either may be nil
func Func(name string, start func() error, stop func()) Service {
	return &funcService{name: name, start: start, stop: stop}
}

func (s *funcService) Name() string { return s.name }

func (s *funcService) Start() error {
	if s.start == nil {
		return nil
	}
	return s.start()
}

func (s *funcService) Stop() error {
	if s.stop != nil {
		s.stop()
	}
	return nil
}

type entry struct {
	svc      Service
	optional bool
	running  bool
}

// Hub starts services in registration order and stops them in reverse
type Hub struct {
	entries []*entry
	index   map[string]*entry
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{index: make(map[string]*entry)}
}

// Register adds a service whose start failure aborts StartAll
func (h *Hub) Register(svc Service) error {
	return h.add(svc, false)
}

// RegisterOptional adds a service whose start failure is logged and skipped
func (h *Hub) RegisterOptional(svc Service) error {
	return h.add(svc, true)
}

func (h *Hub) add(svc Service, optional bool) error {
	if _, dup := h.index[svc.Name()]; dup {
		return fmt.Errorf("service %q already registered", svc.Name())
	}
	e := &entry{svc: svc, optional: optional}
	h.entries = append(h.entries, e)
	h.index[svc.Name()] = e
	return nil
}

// StartAll starts every service; on a required failure the already running ones are stopped
func (h *Hub) StartAll() error {
	for _, e := range h.entries {
		if e.running {
			continue
		}
		if err := e.svc.Start(); err != nil {
			if e.optional {
				log.Printf("service %s unavailable err=%v", e.svc.Name(), err)
				continue
			}
			stopErr := h.StopAll()
			return errors.Join(fmt.Errorf("start %s: %w", e.svc.Name(), err), stopErr)
		}
		e.running = true
	}
	return nil
}

// Running reports whether name started successfully and has not been stopped
func (h *Hub) Running(name string) bool {
	e, ok := h.index[name]
	return ok && e.running
}

// StopAll stops running services in reverse registration order
func (h *Hub) StopAll() error {
	var errs []error
	for i := len(h.entries) - 1; i >= 0; i-- {
		e := h.entries[i]
		if !e.running {
			continue
		}
		if err := e.svc.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", e.svc.Name(), err))
		}
		e.running = false
	}
	return errors.Join(errs...)
}
