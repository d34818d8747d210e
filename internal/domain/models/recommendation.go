package models

// TransportMode is the engine's top-level verdict.
type TransportMode string

const (
	ModeNoTransportNeeded TransportMode = "no_transport_needed"
	ModeGroundPreferred   TransportMode = "ground_preferred"
	ModeGround            TransportMode = "ground"
	ModeFlightRequired    TransportMode = "flight_required"
	ModeFlightPreferred   TransportMode = "flight_preferred"
	ModeFlightWithGround  TransportMode = "flight_with_ground_transfer"
	ModeInsufficientData  TransportMode = "insufficient_data"
)

// Provenance records which authority produced a recommendation.
type Provenance string

const (
	ProvenanceRemote Provenance = "remote"
	ProvenanceLocal  Provenance = "local"
)

// ConvenienceTier buckets a ground route's practicality.
type ConvenienceTier string

const (
	VeryConvenient ConvenienceTier = "very_convenient"
	Convenient     ConvenienceTier = "convenient"
	Acceptable     ConvenienceTier = "acceptable"
	Impractical    ConvenienceTier = "impractical"
)

// GroundDetail carries the ground leg of a recommendation.
type GroundDetail struct {
	Route       *GroundRoute    `json:"route,omitempty"`
	Mode        TransportKind   `json:"mode"`
	Convenience ConvenienceTier `json:"convenience,omitempty"`
	// TransferFromAirport is set on flight-plus-transfer results: the
	// hub the traveler lands at before continuing by ground.
	TransferFromAirport string  `json:"transfer_from_airport,omitempty"`
	TransferTimeHours   float64 `json:"transfer_time_hours,omitempty"`
}

// FlightDetail carries the flight leg or flight alternative.
type FlightDetail struct {
	FromAirport        string  `json:"from_airport"`
	ToAirport          string  `json:"to_airport"`
	EstimatedKm        float64 `json:"estimated_km,omitempty"`
	EstimatedHours     float64 `json:"estimated_hours,omitempty"`
	DirectServiceKnown bool    `json:"direct_service_known,omitempty"`
}

// TransportRecommendation is the decision engine's structured output.
type TransportRecommendation struct {
	Mode          TransportMode `json:"mode"`
	PrimaryMode   TransportKind `json:"primary_mode,omitempty"`
	SearchFlights bool          `json:"search_flights"`

	Ground            *GroundDetail    `json:"ground,omitempty"`
	FlightAlternative *FlightDetail    `json:"flight_alternative,omitempty"`
	RegionalContext   *RegionalContext `json:"regional_context,omitempty"`

	Warnings   []string   `json:"warnings,omitempty"`
	Rationale  string     `json:"rationale"`
	Provenance Provenance `json:"provenance"`
}
