package models

// SpiderEntry is the per-point output of marker decluttering. Display equals
// Real exactly when the point was not grouped with any neighbor.
type SpiderEntry struct {
	ID        string `json:"id"`
	Display   LatLng `json:"display_position"`
	Real      LatLng `json:"real_position"`
	Clustered bool   `json:"clustered"`
}

// ConnectorSegment is a spider leg drawn from a displaced marker back to its
// true position.
type ConnectorSegment struct {
	From LatLng `json:"from"` // display position
	To   LatLng `json:"to"`   // real position
}

// SpiderGroup describes one proximity group of size > 1. RatePer100 is the
// trap-day-weighted overall rate across the group's deployments, filled in by
// the service layer.
type SpiderGroup struct {
	MemberIDs  []string `json:"member_ids"`
	Count      int      `json:"count"`
	CenterLat  float64  `json:"center_lat"`
	CenterLon  float64  `json:"center_lon"`
	RatePer100 float64  `json:"rate_per_100"`
}

// SpiderfyResult is the full output of one declutter run
type SpiderfyResult struct {
	Entries    []SpiderEntry      `json:"entries"`
	Connectors []ConnectorSegment `json:"connectors"`
	Groups     []SpiderGroup      `json:"groups"`
}
