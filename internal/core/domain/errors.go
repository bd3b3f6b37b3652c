package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownOption is returned when an option override references a key
	// that is not in the package's option schema.
	ErrUnknownOption = zerr.New("unknown option")

	// ErrMissingSource is returned when a required file is absent from the
	// source root.
	ErrMissingSource = zerr.New("required source file missing")

	// ErrInvalidOptionValue is returned when an option override carries a
	// value that is not a boolean.
	ErrInvalidOptionValue = zerr.New("invalid option value, expected true or false")

	// ErrProfileReadFailed is returned when the packaging profile cannot be read.
	ErrProfileReadFailed = zerr.New("failed to read packaging profile")

	// ErrProfileParseFailed is returned when the packaging profile cannot be parsed.
	ErrProfileParseFailed = zerr.New("failed to parse packaging profile")

	// ErrSourceScanFailed is returned when scanning the source root fails.
	ErrSourceScanFailed = zerr.New("failed to scan source root")

	// ErrPackageDirCreateFailed is returned when a package directory cannot be created.
	ErrPackageDirCreateFailed = zerr.New("failed to create package directory")

	// ErrCopyFailed is returned when copying a payload file fails.
	ErrCopyFailed = zerr.New("failed to copy package file")

	// ErrDigestFailed is returned when the payload digest cannot be computed.
	ErrDigestFailed = zerr.New("failed to compute package digest")

	// ErrPublishFailed is returned when the package info document cannot be written.
	ErrPublishFailed = zerr.New("failed to publish package info")

	// ErrStoreCreateFailed is returned when the record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create record store directory")

	// ErrStoreReadFailed is returned when a packaging record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read packaging record")

	// ErrStoreUnmarshalFailed is returned when a packaging record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal packaging record")

	// ErrStoreMarshalFailed is returned when a packaging record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal packaging record")

	// ErrStoreWriteFailed is returned when a packaging record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write packaging record")
)
