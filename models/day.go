package models

// DayRecord is one doctor-day as returned by the practice-management (PIMS)
// scheduling API. Fields are loose by design: the upstream payload is weakly
// typed and every optional field may be absent or malformed. Coercion into the
// strict timeline types happens in the schedule service, never here.
type DayRecord struct {
	Date           string        `json:"date"`
	Timezone       string        `json:"timezone"`
	WorkStartLocal string        `json:"workStartLocal,omitempty"` // "HH:mm" or "HH:mm:ss"
	WorkEndLocal   string        `json:"workEndLocal,omitempty"`
	Appts          []Appointment `json:"appts"`
	Blocks         []Block       `json:"blocks"`
	DriveSeconds   int           `json:"driveSeconds,omitempty"`
}

// Appointment is one raw appointment record from the PIMS API.
type Appointment struct {
	ID             string   `json:"id"`
	StartISO       string   `json:"startIso"`
	EndISO         string   `json:"endIso"`
	Title          string   `json:"title,omitempty"`
	ServiceMinutes int      `json:"serviceMinutes,omitempty"`
	Lat            *float64 `json:"lat,omitempty"`
	Lon            *float64 `json:"lon,omitempty"`
	Address1       string   `json:"address1,omitempty"`
	City           string   `json:"city,omitempty"`
	State          string   `json:"state,omitempty"`
	Zip            string   `json:"zip,omitempty"`
}

// Block is one raw schedule block (lunch, admin time, PTO) from the PIMS API.
type Block struct {
	ID       string `json:"id"`
	StartISO string `json:"startIso"`
	EndISO   string `json:"endIso"`
	Title    string `json:"title,omitempty"`
}
