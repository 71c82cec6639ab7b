package models

// RoutingRequest describes one ask to the routing API: where could this new
// appointment go. Single-doctor requests carry the doctor's PIMS id;
// multi-doctor requests leave it empty and let the backend fan out.
type RoutingRequest struct {
	DoctorPimsID      string   `json:"doctorPimsId,omitempty"`
	DoctorName        string   `json:"doctorName,omitempty"`
	NewServiceMinutes int      `json:"newServiceMinutes"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	Lat               *float64 `json:"lat,omitempty"`
	Lon               *float64 `json:"lon,omitempty"`
	Address           string   `json:"address,omitempty"`
}

// RoutingCandidate is one proposed insertion slot for one doctor on one day,
// as returned by the routing API. Optional numeric fields are pointers so a
// missing value never masquerades as zero.
type RoutingCandidate struct {
	Date                  string   `json:"date"`
	InsertionIndex        int      `json:"insertionIndex"`
	AddedDriveSeconds     *int     `json:"addedDriveSeconds,omitempty"`
	CurrentDriveSeconds   *int     `json:"currentDriveSeconds,omitempty"`
	ProjectedDriveSeconds *int     `json:"projectedDriveSeconds,omitempty"`
	SuggestedStartSec     *int     `json:"suggestedStartSec,omitempty"`
	SuggestedStartISO     string   `json:"suggestedStartIso,omitempty"`
	PrefScore             *float64 `json:"prefScore,omitempty"`
	Slot                  string   `json:"slot,omitempty"`
	IsFirstEdge           bool     `json:"isFirstEdge,omitempty"`
	IsLastEdge            bool     `json:"isLastEdge,omitempty"`
	WorkStartLocal        string   `json:"workStartLocal,omitempty"`
	EffectiveEndLocal     string   `json:"effectiveEndLocal,omitempty"`
	BookedServiceSeconds  *int     `json:"bookedServiceSeconds,omitempty"`
	EmptyDay              bool     `json:"emptyDayFlag,omitempty"`
	OverrunSeconds        *int     `json:"overrunSeconds,omitempty"`
	DoctorID              string   `json:"doctorId,omitempty"`
	DoctorName            string   `json:"doctorName,omitempty"`
	RoutingRequestID      string   `json:"routingRequestId,omitempty"`
}

// RoutingDoctor is one doctor's candidate list in a multi-doctor result.
type RoutingDoctor struct {
	PimsID string             `json:"pimsId"`
	Name   string             `json:"name,omitempty"`
	Top    []RoutingCandidate `json:"top"`
}

// RoutingResult is the heterogeneous routing response: either winner+alternates
// (single-doctor mode) or a doctors list (multi-doctor mode).
type RoutingResult struct {
	RequestID  string             `json:"routingRequestId,omitempty"`
	Winner     *RoutingCandidate  `json:"winner,omitempty"`
	Alternates []RoutingCandidate `json:"alternates,omitempty"`
	Doctors    []RoutingDoctor    `json:"doctors,omitempty"`
}

// UnifiedOption is one routing candidate normalized into the uniform shape the
// UI consumes: doctor identity resolved, request id attached (on the embedded
// candidate), and the derived display metrics computed. RemainingWhitespaceSec
// and OverrunSec are nil when the candidate lacks the work-window fields
// needed to compute them.
type UnifiedOption struct {
	RoutingCandidate

	DoctorPimsID   string `json:"doctorPimsId"`
	ResolvedName   string `json:"resolvedName,omitempty"`
	CandidateIndex int    `json:"candidateIndex"`
	IsWinner       bool   `json:"isWinner,omitempty"`

	RemainingWhitespaceSec *int `json:"remainingWhitespaceSec,omitempty"`
	OverrunSec             *int `json:"overrunSec,omitempty"`
}
