// Package geo converts raw device coordinates into the GCJ-02 frame used by
// mainland Chinese map providers and builds deep-links for the result.
package geo

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/movecar/internal/pkg/constants"
	"github.com/piresc/movecar/internal/pkg/models"
)

const (
	// Krasovsky 1940 ellipsoid
	semiMajorAxis      = 6378245.0
	eccentricitySquare = 0.00669342162296594323

	minLng = 72.004
	maxLng = 137.8347
	minLat = 0.8293
	maxLat = 55.8271

	// MapLabel is the marker label used in generated links
	MapLabel = "位置"
)

// Point is a latitude/longitude pair in degrees
type Point struct {
	Lat float64
	Lng float64
}

// OutOfRegion reports whether a point lies outside the bounding box in which
// the GCJ-02 offset applies.
func OutOfRegion(lat, lng float64) bool {
	return lng < minLng || lng > maxLng || lat < minLat || lat > maxLat
}

// WGS84ToGCJ02 converts a WGS-84 point to GCJ-02. Points outside the region
// are returned unchanged.
func WGS84ToGCJ02(lat, lng float64) Point {
	if OutOfRegion(lat, lng) {
		return Point{Lat: lat, Lng: lng}
	}

	dLat := transformLat(lng-105.0, lat-35.0)
	dLng := transformLng(lng-105.0, lat-35.0)

	radLat := lat / 180.0 * math.Pi
	magic := math.Sin(radLat)
	magic = 1 - eccentricitySquare*magic*magic
	sqrtMagic := math.Sqrt(magic)

	dLat = (dLat * 180.0) / ((semiMajorAxis * (1 - eccentricitySquare)) / (magic * sqrtMagic) * math.Pi)
	dLng = (dLng * 180.0) / (semiMajorAxis / sqrtMagic * math.Cos(radLat) * math.Pi)

	return Point{Lat: lat + dLat, Lng: lng + dLng}
}

func transformLat(x, y float64) float64 {
	ret := -100.0 + 2.0*x + 3.0*y + 0.2*y*y + 0.1*x*y + 0.2*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(y*math.Pi) + 40.0*math.Sin(y/3.0*math.Pi)) * 2.0 / 3.0
	ret += (160.0*math.Sin(y/12.0*math.Pi) + 320*math.Sin(y*math.Pi/30.0)) * 2.0 / 3.0
	return ret
}

func transformLng(x, y float64) float64 {
	ret := 300.0 + x + 2.0*y + 0.1*x*x + 0.1*x*y + 0.1*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(x*math.Pi) + 40.0*math.Sin(x/3.0*math.Pi)) * 2.0 / 3.0
	ret += (150.0*math.Sin(x/12.0*math.Pi) + 300.0*math.Sin(x/30.0*math.Pi)) * 2.0 / 3.0
	return ret
}

// MapLinksFor builds Amap and Apple Maps links for an already corrected point
func MapLinksFor(p Point) models.MapLinks {
	return models.MapLinks{
		AmapURL:  fmt.Sprintf("https://uri.amap.com/marker?position=%s,%s&name=%s", formatCoord(p.Lng), formatCoord(p.Lat), MapLabel),
		AppleURL: fmt.Sprintf("https://maps.apple.com/?ll=%s,%s&q=%s", formatCoord(p.Lat), formatCoord(p.Lng), MapLabel),
	}
}

// Corrected is the result of running a raw point through the transform
type Corrected struct {
	Raw     Point
	Point   Point
	Links   models.MapLinks
	Geohash string
}

// Correct transforms a raw point and derives its map links and geohash.
// The geohash is computed on the raw WGS-84 input.
func Correct(lat, lng float64) Corrected {
	p := WGS84ToGCJ02(lat, lng)
	return Corrected{
		Raw:     Point{Lat: lat, Lng: lng},
		Point:   p,
		Links:   MapLinksFor(p),
		Geohash: EncodeGeohash(lat, lng),
	}
}

// EncodeGeohash encodes a WGS-84 point; points outside valid ranges yield ""
func EncodeGeohash(lat, lng float64) string {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 || math.IsNaN(lat) || math.IsNaN(lng) {
		return ""
	}
	return geohash.EncodeWithPrecision(lat, lng, constants.GeohashPrecision)
}

// formatCoord prints the shortest representation that round-trips, like
// JavaScript number-to-string conversion does.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
