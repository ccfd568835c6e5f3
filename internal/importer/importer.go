// Package importer turns parsed GPX tracks or Strava activities into stored
// runs, skipping degenerate entries and duplicates of already-stored runs.
package importer

import (
	"fmt"
	"math"
	"time"

	"runlog/internal/gpx"
	"runlog/internal/models"
	"runlog/internal/repository"
	"runlog/internal/strava"
)

type Result struct {
	Imported int          `json:"imported"`
	Skipped  int          `json:"skipped"`
	Runs     []models.Run `json:"runs,omitempty"`
}

type Importer struct {
	runRepo repository.RunRepository
}

func New(runRepo repository.RunRepository) *Importer {
	return &Importer{runRepo: runRepo}
}

// dedupKey is the documented duplicate heuristic: calendar day plus distance
// rounded to two decimals. Two genuinely distinct same-day runs of equal
// rounded distance will merge; that tolerance is intentional.
func dedupKey(date time.Time, distanceKm float64) string {
	return fmt.Sprintf("%s_%.2f", date.UTC().Format("2006-01-02"), distanceKm)
}

// existingKeys loads the dedup key set once per import call. The set is local
// to the call; concurrent imports by the same user may still race, which is
// an accepted edge case.
func (im *Importer) existingKeys(userID uint) (map[string]bool, error) {
	existing, err := im.runRepo.FindDateDistanceByUserID(userID)
	if err != nil {
		return nil, err
	}
	keys := make(map[string]bool, len(existing))
	for _, r := range existing {
		keys[dedupKey(r.Date, r.DistanceKm)] = true
	}
	return keys, nil
}

// ImportTracks persists the reduced GPX tracks as runs. Degenerate tracks
// (zero distance or duration) and duplicates are skipped; importing the same
// file twice is a no-op the second time.
func (im *Importer) ImportTracks(userID uint, tracks []gpx.Track) (*Result, error) {
	keys, err := im.existingKeys(userID)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	var candidates []models.Run
	for _, track := range tracks {
		if track.DistanceKm <= 0 || track.DurationSec <= 0 {
			result.Skipped++
			continue
		}

		key := dedupKey(track.Date, track.DistanceKm)
		if keys[key] {
			result.Skipped++
			continue
		}
		keys[key] = true

		notes := "Imported from GPX"
		if track.Name != "" {
			notes = "Imported from GPX: " + track.Name
		}

		candidates = append(candidates, models.Run{
			UserID:      userID,
			Date:        track.Date,
			DistanceKm:  track.DistanceKm,
			DurationSec: track.DurationSec,
			Type:        models.RunTypeEasy,
			Notes:       &notes,
			TrackPoints: track.Points,
		})
	}

	if err := im.runRepo.CreateBatch(candidates); err != nil {
		return nil, err
	}

	result.Imported = len(candidates)
	result.Runs = candidates
	return result, nil
}

// ImportStravaActivities persists upstream running activities. Non-running
// activity types must be filtered out by the caller before this point.
func (im *Importer) ImportStravaActivities(userID uint, activities []strava.Activity) (*Result, error) {
	keys, err := im.existingKeys(userID)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	var candidates []models.Run
	for _, a := range activities {
		distanceKm := math.Round(a.Distance/1000*100) / 100
		if distanceKm <= 0 || a.MovingTime <= 0 {
			result.Skipped++
			continue
		}

		key := dedupKey(a.StartDate, distanceKm)
		if keys[key] {
			result.Skipped++
			continue
		}
		keys[key] = true

		run := models.Run{
			UserID:      userID,
			Date:        a.StartDate.UTC(),
			DistanceKm:  distanceKm,
			DurationSec: a.MovingTime,
			Type:        models.RunTypeEasy,
		}
		if a.Name != "" {
			name := a.Name
			run.Notes = &name
		}
		candidates = append(candidates, run)
	}

	if err := im.runRepo.CreateBatch(candidates); err != nil {
		return nil, err
	}

	result.Imported = len(candidates)
	result.Runs = candidates
	return result, nil
}
