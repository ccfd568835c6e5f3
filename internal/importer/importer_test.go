package importer

import (
	"testing"
	"time"

	"runlog/internal/gpx"
	"runlog/internal/models"
	"runlog/internal/repository"
	"runlog/internal/strava"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunRepo keeps runs in memory; only the methods the importer touches do
// real work.
type fakeRunRepo struct {
	runs []models.Run
}

func (f *fakeRunRepo) Create(run *models.Run) error {
	f.runs = append(f.runs, *run)
	return nil
}

func (f *fakeRunRepo) CreateBatch(runs []models.Run) error {
	f.runs = append(f.runs, runs...)
	return nil
}

func (f *fakeRunRepo) FindDateDistanceByUserID(userID uint) ([]models.Run, error) {
	var out []models.Run
	for _, r := range f.runs {
		if r.UserID == userID {
			out = append(out, models.Run{Date: r.Date, DistanceKm: r.DistanceKm})
		}
	}
	return out, nil
}

func (f *fakeRunRepo) FindByIDAndUserID(id, userID uint) (*models.Run, error) { return nil, nil }
func (f *fakeRunRepo) FindPageByUserID(userID uint, filter repository.RunFilter) ([]models.Run, int64, error) {
	return nil, 0, nil
}
func (f *fakeRunRepo) Update(run *models.Run) error     { return nil }
func (f *fakeRunRepo) Delete(id, userID uint) error     { return nil }
func (f *fakeRunRepo) FindByUserIDAndDateRange(userID uint, from, to *time.Time) ([]models.Run, error) {
	return nil, nil
}
func (f *fakeRunRepo) FindByUserIDAndDateSpan(userID uint, from, to time.Time) ([]models.Run, error) {
	return nil, nil
}
func (f *fakeRunRepo) FindAllByUserID(userID uint) ([]models.Run, error)          { return f.runs, nil }
func (f *fakeRunRepo) FindRecentByUserID(userID uint, limit int) ([]models.Run, error) {
	return f.runs, nil
}
func (f *fakeRunRepo) CountByUserID(userID uint) (int64, error) { return int64(len(f.runs)), nil }

func sampleTrack(day int, distanceKm float64) gpx.Track {
	return gpx.Track{
		Date:        time.Date(2024, 3, day, 7, 0, 0, 0, time.UTC),
		DistanceKm:  distanceKm,
		DurationSec: 3000,
		Name:        "Morning Run",
		Points:      [][]float64{{45.07, 7.68}, {45.08, 7.69}},
	}
}

func TestImportTracks(t *testing.T) {
	t.Run("importing twice is idempotent", func(t *testing.T) {
		repo := &fakeRunRepo{}
		imp := New(repo)
		tracks := []gpx.Track{sampleTrack(11, 10.25), sampleTrack(12, 5.4)}

		first, err := imp.ImportTracks(1, tracks)
		require.NoError(t, err)
		assert.Equal(t, 2, first.Imported)
		assert.Equal(t, 0, first.Skipped)

		second, err := imp.ImportTracks(1, tracks)
		require.NoError(t, err)
		assert.Equal(t, 0, second.Imported)
		assert.Equal(t, 2, second.Skipped)
		assert.Len(t, repo.runs, 2)
	})

	t.Run("intra-batch duplicates are inserted once", func(t *testing.T) {
		repo := &fakeRunRepo{}
		imp := New(repo)
		tracks := []gpx.Track{sampleTrack(11, 10.25), sampleTrack(11, 10.25)}

		result, err := imp.ImportTracks(1, tracks)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("degenerate tracks are discarded", func(t *testing.T) {
		repo := &fakeRunRepo{}
		imp := New(repo)

		zeroDistance := sampleTrack(11, 0)
		zeroDuration := sampleTrack(12, 5)
		zeroDuration.DurationSec = 0

		result, err := imp.ImportTracks(1, []gpx.Track{zeroDistance, zeroDuration})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Imported)
		assert.Equal(t, 2, result.Skipped)
		assert.Empty(t, repo.runs)
	})

	t.Run("notes carry the track name and runs default to easy", func(t *testing.T) {
		repo := &fakeRunRepo{}
		imp := New(repo)

		result, err := imp.ImportTracks(1, []gpx.Track{sampleTrack(11, 10.25)})
		require.NoError(t, err)
		require.Len(t, result.Runs, 1)

		run := result.Runs[0]
		assert.Equal(t, models.RunTypeEasy, run.Type)
		require.NotNil(t, run.Notes)
		assert.Equal(t, "Imported from GPX: Morning Run", *run.Notes)
	})
}

func TestImportStravaActivities(t *testing.T) {
	t.Run("distance converts from meters and dedups against stored runs", func(t *testing.T) {
		repo := &fakeRunRepo{}
		imp := New(repo)
		activities := []strava.Activity{
			{Name: "Lunch Run", Type: "Run", StartDate: time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC), Distance: 10250, MovingTime: 3000},
		}

		first, err := imp.ImportStravaActivities(1, activities)
		require.NoError(t, err)
		require.Equal(t, 1, first.Imported)
		assert.Equal(t, 10.25, first.Runs[0].DistanceKm)
		require.NotNil(t, first.Runs[0].Notes)
		assert.Equal(t, "Lunch Run", *first.Runs[0].Notes)

		second, err := imp.ImportStravaActivities(1, activities)
		require.NoError(t, err)
		assert.Equal(t, 0, second.Imported)
		assert.Equal(t, 1, second.Skipped)
	})

	t.Run("a stored GPX run blocks the matching Strava activity", func(t *testing.T) {
		repo := &fakeRunRepo{}
		imp := New(repo)

		_, err := imp.ImportTracks(1, []gpx.Track{sampleTrack(11, 10.25)})
		require.NoError(t, err)

		result, err := imp.ImportStravaActivities(1, []strava.Activity{
			{Type: "Run", StartDate: time.Date(2024, 3, 11, 7, 30, 0, 0, time.UTC), Distance: 10250, MovingTime: 2900},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Imported)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("degenerate activities are discarded", func(t *testing.T) {
		repo := &fakeRunRepo{}
		imp := New(repo)

		result, err := imp.ImportStravaActivities(1, []strava.Activity{
			{Type: "Run", StartDate: time.Date(2024, 3, 11, 7, 0, 0, 0, time.UTC), Distance: 0, MovingTime: 3000},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Imported)
		assert.Equal(t, 1, result.Skipped)
	})
}
