package output

import (
	"fmt"
	"io"

	"github.com/adace74/distribulator2-contrib/pkg/model"
	"github.com/pkg/errors"
)

type Format string

const (
	FormatText  Format = "text"
	FormatShort Format = "short"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatShort, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", errors.Errorf("unknown format %q (want text, short, json or yaml)", s)
}

// Reporter turns a probe result into output lines. It never decides the
// exit code; callers take that from the result.
type Reporter struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Format  Format
	Quiet   bool
	Verbose bool
	NoColor bool
}

func (rp Reporter) colorFor(w io.Writer) bool {
	return !rp.NoColor && IsTerminal(w)
}

func (rp Reporter) Report(r model.Result) error {
	if rp.Quiet {
		return nil
	}

	switch rp.Format {
	case FormatJSON:
		s, err := ToJSON(r)
		if err != nil {
			return errors.Wrap(err, "encode json")
		}
		_, err = fmt.Fprintln(rp.Stdout, s)
		return err
	case FormatYAML:
		s, err := ToYAML(r)
		if err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		_, err = fmt.Fprint(rp.Stdout, s)
		return err
	case FormatShort:
		RenderShort(rp.Stdout, r, rp.colorFor(rp.Stdout))
		return nil
	}

	rp.renderText(r)
	return nil
}

func (rp Reporter) renderText(r model.Result) {
	out := newStyles(rp.Stdout, rp.colorFor(rp.Stdout))
	errs := newStyles(rp.Stderr, rp.colorFor(rp.Stderr))

	info := func(format string, a ...any) {
		fmt.Fprintf(rp.Stdout, "%s  %s\n", out.info.Render("INFO:"), fmt.Sprintf(format, a...))
	}
	fail := func(format string, a ...any) {
		fmt.Fprintf(rp.Stderr, "%s %s\n", errs.err.Render("ERROR:"), fmt.Sprintf(format, a...))
	}
	down := func() {
		fail("Server '%s' appears to be down.", r.Target.Host)
	}

	if rp.Verbose && r.Target.Resolved != "" {
		info("Connected to %s in %s.", r.Target.Resolved, r.ConnectLatency)
	}
	if r.BannerChecked {
		info("Received remote service header: %d bytes.", r.BannerBytes)
		if rp.Verbose && r.BannerBytes > 0 {
			info("Banner: %s", out.banner.Render(SanitizeBanner(r.Banner)))
		}
	}

	switch r.Outcome {
	case model.Success:
		info("%s", out.ok.Render("Success!"))
	case model.ConnectionRefusedOrAddressError, model.HostResolutionOrProtocolError, model.AddressFamilyError:
		if r.Phase == model.PhaseBanner {
			fail("OS Reports: [%s] while reading from remote host.", r.Diagnostic)
		} else {
			fail("OS Reports: [%s] while connecting to remote host.", r.Diagnostic)
		}
		down()
	case model.Timeout:
		if r.Phase == model.PhaseBanner {
			fail("Socket timed out while reading service banner.")
		} else {
			fail("Socket timed out while connecting to server.")
		}
		down()
	case model.BannerMismatch:
		if r.BannerBytes == 0 {
			fail("Received zero-length remote service header from '%s'!", r.Target.Host)
		} else {
			fail("Received non-matching service banner from '%s'!", r.Target.Host)
		}
	default:
		fail("%s", r.Diagnostic)
		down()
	}

	if rp.Verbose {
		info("%s", out.dim.Render(fmt.Sprintf("Finished in %s (exit %d).", r.Elapsed, r.ExitCode)))
	}
}
