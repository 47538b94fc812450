package sim

import (
	"math"

	"vector3/pkg/geometry/vector"
)

// GeoRef is the origin of the local ENU frame: X=east, Y=north, Z=up (meters).
type GeoRef struct {
	OriginLat float64
	OriginLon float64
}

const metersPerDegLat = 111_320.0

func (g GeoRef) metersPerDegLon() float64 {
	return metersPerDegLat * math.Cos(g.OriginLat*math.Pi/180.0)
}

func (g GeoRef) GeoToLocal(lat, lon, alt float64) vector.Vec3d {
	return vector.New(
		(lon-g.OriginLon)*g.metersPerDegLon(),
		(lat-g.OriginLat)*metersPerDegLat,
		alt,
	)
}

func (g GeoRef) LocalToGeo(p vector.Vec3d) (lat, lon, alt float64) {
	lat = g.OriginLat + p.Y/metersPerDegLat
	lon = g.OriginLon + p.X/g.metersPerDegLon()
	alt = p.Z
	return
}

// HeadingDegFromVec returns the compass heading of v's horizontal part,
// 0=north, 90=east. A vertical or zero vector has heading 0.
func HeadingDegFromVec(v vector.Vec3d) float64 {
	horiz := vector.New(v.X, v.Y, 0)
	if horiz.MagnitudeSq() < 1e-18 {
		return 0
	}
	deg := horiz.AngleDeg(vector.YAxis)
	if v.X < 0 {
		deg = 360 - deg
	}
	return deg
}
