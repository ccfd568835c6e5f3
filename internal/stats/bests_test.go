package stats

import (
	"testing"
	"time"

	"runlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 7, 0, 0, 0, time.UTC)
}

func TestComputePersonalBests(t *testing.T) {
	t.Run("band picks lowest duration regardless of order", func(t *testing.T) {
		runs := []models.Run{
			{ID: 1, Date: day(1), DistanceKm: 5.0, DurationSec: 1500},
			{ID: 2, Date: day(2), DistanceKm: 5.4, DurationSec: 1400},
		}
		pbs := ComputePersonalBests(runs)

		fiveK := pbs.Distances[0]
		require.Equal(t, "5K", fiveK.Label)
		require.NotNil(t, fiveK.Run)
		assert.Equal(t, uint(2), fiveK.Run.ID)

		// Reversed input picks the same winner.
		pbs = ComputePersonalBests([]models.Run{runs[1], runs[0]})
		assert.Equal(t, uint(2), pbs.Distances[0].Run.ID)
	})

	t.Run("empty band reports nil", func(t *testing.T) {
		runs := []models.Run{
			{ID: 1, Date: day(1), DistanceKm: 5.0, DurationSec: 1500},
		}
		pbs := ComputePersonalBests(runs)
		labels := map[string]*models.Run{}
		for _, e := range pbs.Distances {
			labels[e.Label] = e.Run
		}
		assert.NotNil(t, labels["5K"])
		assert.Nil(t, labels["10K"])
		assert.Nil(t, labels["Half marathon"])
		assert.Nil(t, labels["Marathon"])
	})

	t.Run("band boundaries are inclusive", func(t *testing.T) {
		runs := []models.Run{
			{ID: 1, Date: day(1), DistanceKm: 4.9, DurationSec: 1500},
			{ID: 2, Date: day(2), DistanceKm: 5.5, DurationSec: 1600},
			{ID: 3, Date: day(3), DistanceKm: 5.6, DurationSec: 1000},
		}
		pbs := ComputePersonalBests(runs)
		require.NotNil(t, pbs.Distances[0].Run)
		assert.Equal(t, uint(1), pbs.Distances[0].Run.ID)
	})

	t.Run("best pace ignores runs under three kilometers", func(t *testing.T) {
		runs := []models.Run{
			{ID: 1, Date: day(1), DistanceKm: 1.0, DurationSec: 200},  // 200 s/km sprint
			{ID: 2, Date: day(2), DistanceKm: 10.0, DurationSec: 3000}, // 300 s/km
			{ID: 3, Date: day(3), DistanceKm: 5.0, DurationSec: 1400},  // 280 s/km
		}
		pbs := ComputePersonalBests(runs)
		require.NotNil(t, pbs.BestPace)
		assert.Equal(t, uint(3), pbs.BestPace.Run.ID)
		assert.InDelta(t, 280, pbs.BestPace.PaceSecPerKm, 0.001)
	})

	t.Run("no qualifying pace run", func(t *testing.T) {
		pbs := ComputePersonalBests([]models.Run{
			{ID: 1, Date: day(1), DistanceKm: 2.0, DurationSec: 600},
		})
		assert.Nil(t, pbs.BestPace)
	})

	t.Run("longest run tie resolves to most recent", func(t *testing.T) {
		// Date-descending order, as the repository returns them.
		runs := []models.Run{
			{ID: 2, Date: day(10), DistanceKm: 21.1, DurationSec: 7100},
			{ID: 1, Date: day(1), DistanceKm: 21.1, DurationSec: 7000},
		}
		pbs := ComputePersonalBests(runs)
		require.NotNil(t, pbs.LongestRun)
		assert.Equal(t, uint(2), pbs.LongestRun.ID)
	})

	t.Run("empty history", func(t *testing.T) {
		pbs := ComputePersonalBests(nil)
		assert.Len(t, pbs.Distances, 4)
		for _, e := range pbs.Distances {
			assert.Nil(t, e.Run)
		}
		assert.Nil(t, pbs.BestPace)
		assert.Nil(t, pbs.LongestRun)
	})
}
