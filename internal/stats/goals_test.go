package stats

import (
	"testing"

	"runlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestEvaluateGoals(t *testing.T) {
	weekRuns := []models.Run{
		{DistanceKm: 10, DurationSec: 3000},
		{DistanceKm: 10, DurationSec: 3200},
	}
	monthRuns := []models.Run{
		{DistanceKm: 10, DurationSec: 3000},
		{DistanceKm: 10, DurationSec: 3200},
		{DistanceKm: 20, DurationSec: 6400},
	}

	t.Run("nil goal produces no entries", func(t *testing.T) {
		p := EvaluateGoals(nil, weekRuns, monthRuns)
		assert.Nil(t, p.WeeklyDistance)
		assert.Nil(t, p.WeeklyRuns)
		assert.Nil(t, p.Pace)
		assert.Nil(t, p.MonthlyDistance)
	})

	t.Run("unconfigured targets are omitted, not zero-filled", func(t *testing.T) {
		goal := &models.WeeklyGoal{TargetKm: floatPtr(40)}
		p := EvaluateGoals(goal, weekRuns, monthRuns)

		require.NotNil(t, p.WeeklyDistance)
		assert.Nil(t, p.WeeklyRuns)
		assert.Nil(t, p.Pace)
		assert.Nil(t, p.MonthlyDistance)

		assert.Equal(t, 20.0, p.WeeklyDistance.Current)
		assert.Equal(t, 40.0, p.WeeklyDistance.Target)
		assert.Equal(t, 50.0, p.WeeklyDistance.PercentComplete)
		assert.False(t, p.WeeklyDistance.Reached)
	})

	t.Run("percent is clamped at 100 when the target is passed", func(t *testing.T) {
		goal := &models.WeeklyGoal{TargetKm: floatPtr(15)}
		p := EvaluateGoals(goal, weekRuns, monthRuns)
		require.NotNil(t, p.WeeklyDistance)
		assert.Equal(t, 100.0, p.WeeklyDistance.PercentComplete)
		assert.True(t, p.WeeklyDistance.Reached)
	})

	t.Run("run-count target", func(t *testing.T) {
		goal := &models.WeeklyGoal{TargetRuns: intPtr(4)}
		p := EvaluateGoals(goal, weekRuns, monthRuns)
		require.NotNil(t, p.WeeklyRuns)
		assert.Equal(t, 2.0, p.WeeklyRuns.Current)
		assert.Equal(t, 50.0, p.WeeklyRuns.PercentComplete)
	})

	t.Run("pace target reached when current pace is at or below it", func(t *testing.T) {
		// 6200 s over 20 km is 310 s/km.
		goal := &models.WeeklyGoal{TargetPaceSecPerKm: intPtr(320)}
		p := EvaluateGoals(goal, weekRuns, monthRuns)
		require.NotNil(t, p.Pace)
		assert.InDelta(t, 310, p.Pace.Current, 0.001)
		assert.True(t, p.Pace.Reached)
		assert.Equal(t, 100.0, p.Pace.PercentComplete)
	})

	t.Run("pace target with no runs this week", func(t *testing.T) {
		goal := &models.WeeklyGoal{TargetPaceSecPerKm: intPtr(320)}
		p := EvaluateGoals(goal, nil, nil)
		require.NotNil(t, p.Pace)
		assert.Equal(t, 0.0, p.Pace.Current)
		assert.Equal(t, 0.0, p.Pace.PercentComplete)
		assert.False(t, p.Pace.Reached)
	})

	t.Run("monthly distance target uses month runs", func(t *testing.T) {
		goal := &models.WeeklyGoal{TargetMonthlyKm: floatPtr(80)}
		p := EvaluateGoals(goal, weekRuns, monthRuns)
		require.NotNil(t, p.MonthlyDistance)
		assert.Equal(t, 40.0, p.MonthlyDistance.Current)
		assert.Equal(t, 50.0, p.MonthlyDistance.PercentComplete)
	})
}
