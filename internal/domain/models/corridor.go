package models

// CorridorCharacteristics summarize the infrastructure of a corridor.
type CorridorCharacteristics struct {
	PrimaryMode           TransportKind `json:"primary_mode"`
	InfrastructureQuality string        `json:"infrastructure_quality"` // good / fair / rough
}

// RegionalCorridor groups cities that share transport infrastructure
// and a hub city.
type RegionalCorridor struct {
	Name            string                  `json:"name"`
	Cities          []string                `json:"cities"`
	Hub             string                  `json:"hub"`
	Characteristics CorridorCharacteristics `json:"characteristics"`
	// RecommendedRoutes and AvoidedRoutes hold unordered pair keys of
	// curated in-corridor routes ("pagadian|zamboanga").
	RecommendedRoutes []string `json:"recommended_routes,omitempty"`
	AvoidedRoutes     []string `json:"avoided_routes,omitempty"`
}

// RegionalContext is the classifier's verdict for a city pair.
type RegionalContext struct {
	SameRegion            bool   `json:"same_region"`
	CorridorName          string `json:"corridor_name,omitempty"`
	IsRecommendedRoute    bool   `json:"is_recommended_route,omitempty"`
	IsAvoidedRoute        bool   `json:"is_avoided_route,omitempty"`
	CrossesIslandBoundary bool   `json:"crosses_island_boundary"`
	BoundaryType          string `json:"boundary_type,omitempty"` // e.g. "luzon-visayas"
}
