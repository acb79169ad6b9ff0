package replay

// Version of the recording format
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	Fi bool `json:"fi,omitempty"` // Fire
	S  bool `json:"s,omitempty"`  // Start
	K  int  `json:"k,omitempty"`  // Keys down
}

// ReplayData contains all data needed to replay a game session.
// Sessions are deterministic given the seed and a fixed frame delta.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
