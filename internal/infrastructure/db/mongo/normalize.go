package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeDate converts the timestamp shapes found in persisted documents
// into a canonical UTC time. Historical records carry a mix of BSON
// datetimes, unix seconds, and RFC3339 strings; aggregation logic only ever
// sees the one canonical type. The second return is false when the value is
// absent or unrecognised.
func NormalizeDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return d.UTC(), true
	case primitive.DateTime:
		return d.Time().UTC(), true
	case int64:
		return time.Unix(d, 0).UTC(), true
	case int32:
		return time.Unix(int64(d), 0).UTC(), true
	case float64:
		return time.Unix(int64(d), 0).UTC(), true
	case string:
		t, err := time.Parse(time.RFC3339, d)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	default:
		return time.Time{}, false
	}
}
