package domain

import "time"

// BuildRecord captures the outcome of one packaging run. Options are recorded
// for inspection only; they do not contribute to the digest because the
// payload is identical regardless of which fragments get published.
type BuildRecord struct {
	Name       string          `json:"name,omitzero"`
	Version    string          `json:"version,omitzero"`
	Digest     string          `json:"digest,omitzero"`
	Options    map[string]bool `json:"options,omitzero"`
	Files      []string        `json:"files,omitzero"`
	PackagedAt time.Time       `json:"packaged_at,omitzero"`
}

// Ref returns the name/version reference the record is stored under.
func (r BuildRecord) Ref() string {
	return r.Name + "/" + r.Version
}
