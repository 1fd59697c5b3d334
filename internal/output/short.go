package output

import (
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/adace74/distribulator2-contrib/pkg/model"
)

// RenderShort writes a single summary line, e.g.
// "sshbox:22 timeout (exit 4)".
func RenderShort(w io.Writer, r model.Result, colorEnabled bool) {
	s := newStyles(w, colorEnabled)
	addr := net.JoinHostPort(r.Target.Host, strconv.Itoa(r.Target.Port))

	outcome := s.ok.Render(r.Outcome.String())
	if r.Outcome.Failed() {
		outcome = s.err.Render(r.Outcome.String())
	}
	fmt.Fprintf(w, "%s %s %s\n", addr, outcome, s.dim.Render(fmt.Sprintf("(exit %d)", r.ExitCode)))
}
