package domain

import "time"

// ResolutionRecord is the stored fingerprint of the last successful
// resolution for a platform. When the input hash is unchanged and the
// outputs still match the output hash, the resolver run is skipped.
type ResolutionRecord struct {
	Platform   PlatformID `json:"platform,omitzero"`
	InputHash  string     `json:"input_hash,omitzero"`
	OutputHash string     `json:"output_hash,omitzero"`
	Timestamp  time.Time  `json:"timestamp,omitzero"`
}
