package weather

import "context"

// Query locates the reading either by city name or by coordinates. HasCoords
// marks Lat/Lon as deliberately set, so (0, 0) stays a valid position.
type Query struct {
	City      string
	Lat       float64
	Lon       float64
	HasCoords bool
}

// ByCoordinates reports whether the query carries usable coordinates.
func (q Query) ByCoordinates() bool {
	return q.City == "" && q.HasCoords
}

// Provider produces one snapshot per call. Implementations live in infra.
type Provider interface {
	Current(ctx context.Context, q Query) (Snapshot, error)
}
