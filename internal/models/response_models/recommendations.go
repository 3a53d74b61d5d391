package response_models

// RecommendedPlace identity is the exact (name, location, type) triple.
// Differently-worded duplicates are not recognized; that matches what the
// merge contract promises and nothing more.
type RecommendedPlace struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

func (p RecommendedPlace) IdentityKey() string {
	return p.Name + "|" + p.Location + "|" + p.Type
}

type PlacesResponse struct {
	Places []RecommendedPlace `json:"places"`
}

// StayOption is one recommended lodging or transport choice.
type StayOption struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"` // "lodging" or "transport"
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type StayResponse struct {
	Options []StayOption `json:"options"`
}
