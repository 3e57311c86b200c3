package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-planner/models"
	"content-planner/store"
)

func TestPlanStoreReplaceAndCurrent(t *testing.T) {
	s := store.NewPlanStore()

	_, ok := s.Current("session-a")
	assert.False(t, ok)

	first := &models.Plan{ID: "plan-1"}
	s.Replace("session-a", first)

	got, ok := s.Current("session-a")
	require.True(t, ok)
	assert.Equal(t, "plan-1", got.ID)

	// A new generation fully replaces the prior plan.
	s.Replace("session-a", &models.Plan{ID: "plan-2"})
	got, ok = s.Current("session-a")
	require.True(t, ok)
	assert.Equal(t, "plan-2", got.ID)
}

func TestPlanStoreSessionsAreIsolated(t *testing.T) {
	s := store.NewPlanStore()
	s.Replace("session-a", &models.Plan{ID: "plan-a"})

	_, ok := s.Current("session-b")
	assert.False(t, ok)
}

func TestPlanStoreClear(t *testing.T) {
	s := store.NewPlanStore()
	s.Replace("session-a", &models.Plan{ID: "plan-a"})
	s.Clear("session-a")

	_, ok := s.Current("session-a")
	assert.False(t, ok)
}
