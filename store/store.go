// Package store holds the latest generated plan per session. There is no
// durable persistence: a plan lives in memory until the session generates a
// new one or the process exits.
package store

import (
	"sync"

	"content-planner/models"
)

// PlanStore is a session-scoped single-slot container. Replace swaps the
// whole plan; it never mutates a previously stored one.
type PlanStore struct {
	mu    sync.RWMutex
	plans map[string]*models.Plan
}

func NewPlanStore() *PlanStore {
	return &PlanStore{plans: make(map[string]*models.Plan)}
}

// Replace stores plan as the session's current plan, dropping any prior one.
func (s *PlanStore) Replace(sessionID string, plan *models.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[sessionID] = plan
}

// Current returns the session's retained plan, if any.
func (s *PlanStore) Current(sessionID string) (*models.Plan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	plan, ok := s.plans[sessionID]
	return plan, ok
}

// Clear drops the session's plan.
func (s *PlanStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.plans, sessionID)
}
