package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const usageWidth = 76

const usageIntro = `This command attempts to contact a given host_name at a given TCP/IP port. Using a specified timeout in seconds, it attempts to connect to the remote host_name and TCP_PORT. Optionally, it will read a "banner" from the remote service and return error conditions based on whether it considers the transaction a success or failure.`

var usageOptions = []struct {
	flags string
	text  string
}{
	{"-b, --banner=MATCH", "In order to achieve success, the remote service must return a banner containing the string specified. Matching is case-sensitive and only the first 1024 bytes received are inspected."},
	{"-h, --help, -?, --?", "Prints the usage statement."},
	{"-p, --port=TCP_PORT", "Specifies which port on the remote host to connect to. Default: 22"},
	{"-q, --quiet", "Only an exit code is wanted, i.e. no output. Syntax errors are still printed."},
	{"-t, --timeout=TIMEOUT", "Specifies the socket-level timeout in seconds, applied to the connect and to the banner read. Default: 10"},
	{"-v, --version", "Prints the version banner."},
	{"--format=FORMAT", "Output format: text, short, json or yaml. Default: text"},
	{"--no-color", "Disables styled output."},
	{"--verbose", "Also prints the received banner and connection timings."},
	{"--debug", "Writes a debug trace to standard error."},
}

var usageExitCodes = []string{
	"0 = Success",
	"1 = Socket error (e.g. connection refused or reset).",
	"2 = Host or protocol error reported by the OS.",
	"3 = Address resolution or address family error.",
	"4 = Socket timeout during connect or banner read.",
	"5 = Unknown error.",
	"6 = Received non-matching or zero-length service banner.",
}

// PrintUsage writes the help text, wrapped to a fixed width so it reads the
// same in every terminal.
func PrintUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s [OPTION] host_name\n\n", prog)
	fmt.Fprintln(w, fill(usageIntro, usageWidth))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The available options are:")
	fmt.Fprintln(w)
	for _, opt := range usageOptions {
		fmt.Fprintf(w, "    %s\n", opt.flags)
		fmt.Fprintln(w, indent(fill(opt.text, usageWidth-4), "    "))
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Exit Status Codes:")
	fmt.Fprintln(w, "------------------")
	for _, line := range usageExitCodes {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "---------")
	fmt.Fprintf(w, "%s --banner=OpenSSH --timeout=20 sshbox.somewhere.com\n", prog)
	fmt.Fprintf(w, "%s --banner=ESMTP --port=25 mailbox.somewhere.com\n", prog)
}

// fill wraps on word boundaries and hard-breaks anything still too long.
func fill(s string, width int) string {
	return wrap.String(wordwrap.String(s, width), width)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
