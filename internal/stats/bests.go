package stats

import (
	"runlog/internal/models"
)

// Reference distances matched against a tolerance band rather than an exact
// value, so slightly-long GPS tracks still count.
var distanceBands = []struct {
	Label string
	MinKm float64
	MaxKm float64
}{
	{"5K", 4.9, 5.5},
	{"10K", 9.8, 10.5},
	{"Half marathon", 21.0, 21.5},
	{"Marathon", 42.0, 42.5},
}

// minDistanceForPaceKm filters out short jogs whose pace is not meaningful.
const minDistanceForPaceKm = 3

type BestEntry struct {
	Label string      `json:"label"`
	Run   *models.Run `json:"run"`
}

type BestPace struct {
	PaceSecPerKm float64     `json:"pace_sec_per_km"`
	Run          *models.Run `json:"run"`
}

type PersonalBests struct {
	Distances  []BestEntry `json:"distances"`
	BestPace   *BestPace   `json:"best_pace"`
	LongestRun *models.Run `json:"longest_run"`
}

// ComputePersonalBests scans the full history for the fastest run inside each
// reference band, the best pace over at least 3 km, and the single longest
// run. A band with no qualifying run reports a nil run. Equal longest
// distances resolve to the most recent run: callers pass runs ordered by date
// descending and the scan keeps the first strict maximum.
func ComputePersonalBests(runs []models.Run) PersonalBests {
	pbs := PersonalBests{Distances: make([]BestEntry, 0, len(distanceBands))}

	for _, band := range distanceBands {
		var best *models.Run
		for i := range runs {
			r := &runs[i]
			if r.DistanceKm < band.MinKm || r.DistanceKm > band.MaxKm {
				continue
			}
			if best == nil || r.DurationSec < best.DurationSec {
				best = r
			}
		}
		pbs.Distances = append(pbs.Distances, BestEntry{Label: band.Label, Run: best})
	}

	for i := range runs {
		r := &runs[i]
		if r.DistanceKm < minDistanceForPaceKm {
			continue
		}
		pace := r.PaceSecPerKm()
		if pbs.BestPace == nil || pace < pbs.BestPace.PaceSecPerKm {
			pbs.BestPace = &BestPace{PaceSecPerKm: pace, Run: r}
		}
	}

	for i := range runs {
		r := &runs[i]
		if pbs.LongestRun == nil || r.DistanceKm > pbs.LongestRun.DistanceKm {
			pbs.LongestRun = r
		}
	}

	return pbs
}
