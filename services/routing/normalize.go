package routing

import "vetly/models"

// NormalizeDefaults carries the request-level identity a candidate falls back
// to when it does not name its own doctor or routing request.
type NormalizeDefaults struct {
	DoctorPimsID     string
	DoctorName       string
	RoutingRequestID string
}

// Normalize flattens a heterogeneous routing result into uniform options.
// Single-doctor results yield the winner (pinned, never resorted) followed by
// its alternates; multi-doctor results yield every doctor's top candidates.
// Each option resolves its doctor identity (own doctorId beats the request
// default), attaches a routing request id (candidate's own, else the
// result's, else the default), and gets a stable candidate index.
func Normalize(result models.RoutingResult, defaults NormalizeDefaults) []models.UnifiedOption {
	var options []models.UnifiedOption
	index := 0

	unify := func(c models.RoutingCandidate, doctorID, doctorName string, winner bool) models.UnifiedOption {
		opt := models.UnifiedOption{
			RoutingCandidate: c,
			CandidateIndex:   index,
			IsWinner:         winner,
		}
		index++

		opt.DoctorPimsID = defaults.DoctorPimsID
		opt.ResolvedName = defaults.DoctorName
		if doctorID != "" {
			opt.DoctorPimsID = doctorID
			opt.ResolvedName = doctorName
		}
		if c.DoctorID != "" {
			opt.DoctorPimsID = c.DoctorID
			opt.ResolvedName = c.DoctorName
		}

		if opt.RoutingRequestID == "" {
			opt.RoutingRequestID = result.RequestID
		}
		if opt.RoutingRequestID == "" {
			opt.RoutingRequestID = defaults.RoutingRequestID
		}
		return opt
	}

	if len(result.Doctors) > 0 {
		for _, doc := range result.Doctors {
			for _, c := range doc.Top {
				options = append(options, unify(c, doc.PimsID, doc.Name, false))
			}
		}
		return options
	}

	if result.Winner != nil {
		options = append(options, unify(*result.Winner, "", "", true))
	}
	for _, c := range result.Alternates {
		options = append(options, unify(c, "", "", false))
	}
	return options
}
