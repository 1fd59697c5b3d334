package pipeline

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/adace74/distribulator2-contrib/pkg/model"
)

func listen(t *testing.T, handle func(c net.Conn, done <-chan struct{})) (string, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	done := make(chan struct{})
	t.Cleanup(func() {
		close(done)
		_ = ln.Close()
	})
	go func() {
		for {
			c, aerr := ln.Accept()
			if aerr != nil {
				return
			}
			go handle(c, done)
		}
	}()
	addr := ln.Addr().(*net.TCPAddr)
	return addr.IP.String(), addr.Port
}

func greet(banner string) func(net.Conn, <-chan struct{}) {
	return func(c net.Conn, done <-chan struct{}) {
		defer c.Close()
		if banner != "" {
			_, _ = c.Write([]byte(banner))
		}
		<-done
	}
}

func closedPort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()
	return port
}

func TestProbe(t *testing.T) {
	const ssh = "SSH-2.0-OpenSSH_8.2\r\n"

	tests := []struct {
		name        string
		handle      func(net.Conn, <-chan struct{})
		bannerMode  bool
		match       string
		timeout     time.Duration
		wantCode    int
		wantPhase   model.Phase
		wantChecked bool
		wantBytes   int
	}{
		{name: "connect only", handle: greet(""), timeout: time.Second, wantCode: 0, wantPhase: model.PhaseConnect},
		{name: "banner match", handle: greet(ssh), bannerMode: true, match: "OpenSSH", timeout: time.Second, wantCode: 0, wantPhase: model.PhaseBanner, wantChecked: true, wantBytes: len(ssh)},
		{name: "banner mismatch", handle: greet(ssh), bannerMode: true, match: "nonexistent", timeout: time.Second, wantCode: 6, wantPhase: model.PhaseBanner, wantChecked: true, wantBytes: len(ssh)},
		{name: "empty match string", handle: greet(ssh), bannerMode: true, match: "", timeout: time.Second, wantCode: 0, wantPhase: model.PhaseBanner, wantChecked: true, wantBytes: len(ssh)},
		{name: "silent service", handle: greet(""), bannerMode: true, match: "OpenSSH", timeout: 300 * time.Millisecond, wantCode: 4, wantPhase: model.PhaseBanner},
		{name: "closed without banner", handle: func(c net.Conn, _ <-chan struct{}) { _ = c.Close() }, bannerMode: true, match: "OpenSSH", timeout: time.Second, wantCode: 6, wantPhase: model.PhaseBanner, wantChecked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port := listen(t, tt.handle)
			req := model.Request{Host: host, Port: port, Timeout: tt.timeout, BannerMatch: tt.match, BannerMode: tt.bannerMode}

			res := Probe(context.Background(), req)
			if res.ExitCode != tt.wantCode {
				t.Fatalf("exit code %d (%s: %s), want %d", res.ExitCode, res.Outcome, res.Diagnostic, tt.wantCode)
			}
			if res.Phase != tt.wantPhase {
				t.Fatalf("phase %s, want %s", res.Phase, tt.wantPhase)
			}
			if res.BannerChecked != tt.wantChecked {
				t.Fatalf("banner checked %v, want %v", res.BannerChecked, tt.wantChecked)
			}
			if res.BannerBytes != tt.wantBytes {
				t.Fatalf("banner bytes %d, want %d", res.BannerBytes, tt.wantBytes)
			}
			if res.Target.Resolved == "" {
				t.Fatal("expected the dialed address to be recorded")
			}
		})
	}
}

func TestProbeRefused(t *testing.T) {
	res := Probe(context.Background(), model.Request{Host: "127.0.0.1", Port: closedPort(t), Timeout: time.Second})

	switch res.ExitCode {
	case 1, 2, 3:
	default:
		t.Fatalf("refused connection gave exit %d (%s: %s)", res.ExitCode, res.Outcome, res.Diagnostic)
	}
	if res.Phase != model.PhaseConnect || res.Target.Resolved != "" {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Diagnostic == "" {
		t.Fatal("expected a diagnostic")
	}
}

func TestProbeIsRepeatable(t *testing.T) {
	host, port := listen(t, greet("220 mail ESMTP ready\r\n"))
	req := model.Request{Host: host, Port: port, Timeout: time.Second, BannerMatch: "ESMTP", BannerMode: true}

	first := Probe(context.Background(), req)
	second := Probe(context.Background(), req)
	if first.ExitCode != second.ExitCode || first.ExitCode != 0 {
		t.Fatalf("exit codes differ or failed: %d then %d", first.ExitCode, second.ExitCode)
	}
}

func TestProbeQuietDoesNotChangeOutcome(t *testing.T) {
	host, port := listen(t, greet("SSH-2.0-OpenSSH_8.2\r\n"))
	req := model.Request{Host: host, Port: port, Timeout: time.Second, BannerMatch: "nonexistent", BannerMode: true}

	loud := Probe(context.Background(), req)
	req.Quiet = true
	quiet := Probe(context.Background(), req)
	if loud.ExitCode != quiet.ExitCode {
		t.Fatalf("quiet changed exit code: %d vs %d", loud.ExitCode, quiet.ExitCode)
	}
}

// peerReads writes banner to each accepted connection and then reports the
// error of the next read, which is io.EOF once the client has closed.
func peerReads(banner string) (func(net.Conn, <-chan struct{}), <-chan error) {
	reads := make(chan error, 1)
	return func(c net.Conn, _ <-chan struct{}) {
		defer c.Close()
		if banner != "" {
			_, _ = c.Write([]byte(banner))
		}
		_ = c.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, err := c.Read(make([]byte, 64))
		reads <- err
	}, reads
}

func TestProbeClosesConnection(t *testing.T) {
	tests := []struct {
		name       string
		banner     string
		bannerMode bool
		match      string
		wantCode   int
	}{
		// Nothing is sent without banner mode; unread data would turn the
		// client's close into a reset.
		{name: "connect only", wantCode: 0},
		{name: "banner match", banner: "SSH-2.0-OpenSSH_8.2\r\n", bannerMode: true, match: "OpenSSH", wantCode: 0},
		{name: "banner mismatch", banner: "SSH-2.0-OpenSSH_8.2\r\n", bannerMode: true, match: "nonexistent", wantCode: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle, reads := peerReads(tt.banner)
			host, port := listen(t, handle)
			req := model.Request{Host: host, Port: port, Timeout: time.Second, BannerMatch: tt.match, BannerMode: tt.bannerMode}

			res := Probe(context.Background(), req)
			if res.ExitCode != tt.wantCode {
				t.Fatalf("exit code %d (%s: %s), want %d", res.ExitCode, res.Outcome, res.Diagnostic, tt.wantCode)
			}

			select {
			case err := <-reads:
				if err != io.EOF {
					t.Fatalf("server read %v after Probe returned, want EOF", err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("server never saw the connection close")
			}
		})
	}
}

func TestProbeUnresolvableHost(t *testing.T) {
	res := Probe(context.Background(), model.Request{Host: "pingtcp-no-such-host.invalid", Port: 22, Timeout: 5 * time.Second})

	if res.Outcome == model.Timeout {
		t.Skipf("resolver did not answer in time: %s", res.Diagnostic)
	}
	if res.Outcome != model.AddressFamilyError || res.ExitCode != 3 {
		t.Fatalf("got %s exit %d (%s), want address_error exit 3", res.Outcome, res.ExitCode, res.Diagnostic)
	}
	if res.Phase != model.PhaseConnect || res.Target.Resolved != "" {
		t.Fatalf("unexpected result %+v", res)
	}
}
