package model

import "time"

const (
	DefaultPort    = 22
	DefaultTimeout = 10 * time.Second

	// BannerReadSize caps the single banner read.
	BannerReadSize = 1024
)

// Request is built once from validated command-line input.
type Request struct {
	Host        string
	Port        int
	Timeout     time.Duration
	BannerMatch string
	// BannerMode is set whenever a match string was supplied, even an empty one.
	BannerMode bool
	Quiet      bool
}
