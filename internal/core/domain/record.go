package domain

// RecordInfo is the playback metadata of a macro recording.
type RecordInfo struct {
	LoopType          int    `json:"loopType"`
	LoopTimes         int    `json:"loopTimes"`
	CircleDuration    int    `json:"circleDuration"`
	LoopInterval      int    `json:"loopInterval"`
	LoopDuration      int    `json:"loopDuration"`
	AccelerateTimes   int    `json:"accelerateTimes"`
	AccelerateTimesEx int    `json:"accelerateTimesEx"`
	RecordName        string `json:"recordName"`
	CreateTime        string `json:"createTime"`
	PlayOnBoot        bool   `json:"playOnBoot"`
	RebootTiming      int    `json:"rebootTiming"`
}

// TouchPoint is one finger of a recorded operation.
type TouchPoint struct {
	ID    int  `json:"id"`
	X     int  `json:"x"`
	Y     int  `json:"y"`
	State *int `json:"state,omitempty"`
}

// RecordOperation is one recorded touch or text event.
type RecordOperation struct {
	Timing      int          `json:"timing"`
	OperationID string       `json:"operationId"`
	Points      []TouchPoint `json:"points,omitempty"`
	Text        *string      `json:"text,omitempty"`
}

// Record is a .record macro document.
type Record struct {
	Name       string            `json:"-"`
	Info       RecordInfo        `json:"recordInfo"`
	Operations []RecordOperation `json:"operations"`
	Extra      Extra             `json:"-"`
}

type recordJSON Record

// UnmarshalJSON decodes the modeled members and keeps the rest in Extra.
func (r *Record) UnmarshalJSON(data []byte) error {
	var v recordJSON
	extra, err := splitExtra(data, &v, "recordInfo", "operations")
	if err != nil {
		return err
	}
	name := r.Name
	*r = Record(v)
	r.Name = name
	r.Extra = extra
	return nil
}

// MarshalJSON encodes the modeled members together with Extra.
func (r Record) MarshalJSON() ([]byte, error) {
	return joinExtra(recordJSON(r), r.Extra)
}

// Duration returns the timing of the last operation in milliseconds.
func (r *Record) Duration() int {
	if len(r.Operations) == 0 {
		return 0
	}
	return r.Operations[len(r.Operations)-1].Timing
}
