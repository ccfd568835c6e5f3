package gpx

import (
	"encoding/xml"
	"errors"
	"math"
	"strconv"
	"time"
)

var (
	// ErrInvalidFormat means the payload is not a GPX document at all.
	ErrInvalidFormat = errors.New("invalid GPX format")
	// ErrNoTracks means the document parsed but contains no <trk> elements.
	ErrNoTracks = errors.New("no tracks found in GPX file")
)

// maxDisplayPoints bounds the polyline kept for map rendering.
const maxDisplayPoints = 200

const earthRadiusKm = 6371

// Track is the reduced form of one GPX <trk>: enough to create a run plus an
// optional down-sampled polyline for display.
type Track struct {
	Date        time.Time
	DistanceKm  float64
	DurationSec int
	Name        string
	Points      [][]float64
}

type gpxPoint struct {
	Lat  string `xml:"lat,attr"`
	Lon  string `xml:"lon,attr"`
	Time string `xml:"time"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxTrack struct {
	Name     string       `xml:"name"`
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxFile struct {
	XMLName xml.Name   `xml:"gpx"`
	Tracks  []gpxTrack `xml:"trk"`
}

type point struct {
	lat, lon float64
	time     time.Time // zero when the trkpt carries no timestamp
}

// Haversine returns the great-circle distance in kilometers between two
// latitude/longitude pairs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Parse reads a GPX document and reduces each track with at least two valid
// points to a Track. Tracks with fewer than two parseable points are skipped
// silently; a document with no <trk> at all is an error.
func Parse(data []byte) ([]Track, error) {
	var file gpxFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, ErrInvalidFormat
	}

	if len(file.Tracks) == 0 {
		return nil, ErrNoTracks
	}

	var tracks []Track
	for _, trk := range file.Tracks {
		points := collectPoints(trk)
		if len(points) < 2 {
			continue
		}
		tracks = append(tracks, reduce(trk.Name, points))
	}

	return tracks, nil
}

func collectPoints(trk gpxTrack) []point {
	var points []point
	for _, seg := range trk.Segments {
		for _, pt := range seg.Points {
			lat, errLat := strconv.ParseFloat(pt.Lat, 64)
			lon, errLon := strconv.ParseFloat(pt.Lon, 64)
			if errLat != nil || errLon != nil {
				continue
			}
			p := point{lat: lat, lon: lon}
			if pt.Time != "" {
				if ts, err := time.Parse(time.RFC3339, pt.Time); err == nil {
					p.time = ts.UTC()
				}
			}
			points = append(points, p)
		}
	}
	return points
}

func reduce(name string, points []point) Track {
	var distanceKm float64
	for i := 1; i < len(points); i++ {
		distanceKm += Haversine(points[i-1].lat, points[i-1].lon, points[i].lat, points[i].lon)
	}

	var first, last time.Time
	for _, p := range points {
		if p.time.IsZero() {
			continue
		}
		if first.IsZero() {
			first = p.time
		}
		last = p.time
	}

	durationSec := 0
	if !first.IsZero() && !last.IsZero() {
		durationSec = int(math.Round(last.Sub(first).Seconds()))
	}

	date := first
	if date.IsZero() {
		date = time.Now().UTC()
	}

	return Track{
		Date:        date,
		DistanceKm:  math.Round(distanceKm*100) / 100,
		DurationSec: durationSec,
		Name:        name,
		Points:      samplePoints(points),
	}
}

// samplePoints keeps every Nth point so at most ~200 survive. A polyline that
// degenerates below two points is dropped entirely; the run is still valid
// without one.
func samplePoints(points []point) [][]float64 {
	step := len(points) / maxDisplayPoints
	if step < 1 {
		step = 1
	}

	var sampled [][]float64
	for i := 0; i < len(points); i += step {
		sampled = append(sampled, []float64{points[i].lat, points[i].lon})
	}

	if len(sampled) < 2 {
		return nil
	}
	return sampled
}
