package curve

// PointFromRecord converts a raw storage record into a Point.
// Supported shapes are (frame, x, y) with implied StatusNormal and
// (frame, x, y, status) where status may be a Status, a bool or a string.
// Returns false for records with too few fields or non-numeric coordinates.
func PointFromRecord(rec []any) (Point, bool) {
	if len(rec) < 3 {
		return Point{}, false
	}
	frame, ok := toInt(rec[0])
	if !ok {
		return Point{}, false
	}
	x, ok := toFloat64(rec[1])
	if !ok {
		return Point{}, false
	}
	y, ok := toFloat64(rec[2])
	if !ok {
		return Point{}, false
	}
	status := StatusNormal
	if len(rec) > 3 {
		status = StatusFromLegacy(rec[3])
	}
	return NewPoint(frame, x, y, status), true
}

// PointsFromRecords converts a batch of raw records, silently skipping
// malformed ones. The result is normalized (sorted, unique frames).
func PointsFromRecords(recs [][]any) Trajectory {
	points := make(Trajectory, 0, len(recs))
	for _, rec := range recs {
		if pt, ok := PointFromRecord(rec); ok {
			points = append(points, pt)
		}
	}
	return points.Normalize()
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
