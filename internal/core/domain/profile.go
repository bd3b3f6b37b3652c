package domain

// Profile carries optional per-checkout packaging settings read from
// halpack.yaml. The zero value is a valid, empty profile.
type Profile struct {
	// Options are option overrides applied below command-line overrides.
	Options map[string]bool

	// PackageDir overrides the default package output directory.
	PackageDir string
}
