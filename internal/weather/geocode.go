package weather

import "strings"

// Place is one geocoding candidate.
type Place struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Admin1      string  `json:"admin1,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	CountryCode string  `json:"country_code"`
}

func (p Place) inUS() bool {
	return strings.EqualFold(p.CountryCode, "US")
}

// GeoResponse is the geocoding search body. Results is nil when the service
// found nothing at all.
type GeoResponse struct {
	Results []Place `json:"results"`
}

// SelectPlace picks the first US candidate whose admin1 equals or contains
// stateName (case-insensitive), else the first US candidate.
func SelectPlace(places []Place, stateName string) (Place, bool) {
	want := strings.ToLower(stateName)
	for _, p := range places {
		if !p.inUS() || p.Admin1 == "" {
			continue
		}
		if strings.EqualFold(p.Admin1, stateName) || strings.Contains(strings.ToLower(p.Admin1), want) {
			return p, true
		}
	}

	for _, p := range places {
		if p.inUS() {
			return p, true
		}
	}
	return Place{}, false
}
