package model

import "time"

type Phase string

const (
	PhaseConnect Phase = "connect"
	PhaseBanner  Phase = "banner"
)

type Target struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Resolved string `json:"resolved,omitempty" yaml:"resolved,omitempty"` // remote address actually dialed
}

type Result struct {
	Target         Target        `json:"target" yaml:"target"`
	Outcome        Outcome       `json:"outcome" yaml:"outcome"`
	ExitCode       int           `json:"exit_code" yaml:"exit_code"`
	Phase          Phase         `json:"phase" yaml:"phase"`
	Diagnostic     string        `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`
	BannerChecked  bool          `json:"banner_checked" yaml:"banner_checked"`
	BannerBytes    int           `json:"banner_bytes" yaml:"banner_bytes"`
	Banner         string        `json:"banner,omitempty" yaml:"banner,omitempty"`
	ConnectLatency time.Duration `json:"connect_latency_ns" yaml:"connect_latency"`
	Elapsed        time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}
