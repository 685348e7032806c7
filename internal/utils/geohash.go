package utils

import (
	"github.com/mmcloughlin/geohash"
)

// ZoneCode returns a compact geohash label for a toll zone, derived from
// its first corner. Precision 7 is roughly a 150m cell, enough to tell
// zones apart at a glance in a listing.
func ZoneCode(lat, lon float64) string {
	return geohash.EncodeWithPrecision(lat, lon, 7)
}
