package probe

import (
	"context"
	"fmt"
	"net"
	"os"
	"syscall"

	"github.com/adace74/distribulator2-contrib/pkg/model"
	"github.com/pkg/errors"
)

// Classify resolves err to exactly one outcome plus a diagnostic taken from
// the underlying OS or network error. Timeouts are checked first since the
// stack reports some of them as plain socket errors.
func Classify(err error) (model.Outcome, string) {
	if err == nil {
		return model.Success, ""
	}

	switch {
	case errors.Is(err, ErrEmptyBanner), errors.Is(err, ErrBannerMismatch):
		return model.BannerMismatch, errors.Cause(err).Error()
	case isTimeout(err):
		return model.Timeout, errors.Cause(err).Error()
	}

	if diag, ok := addressError(err); ok {
		return model.AddressFamilyError, diag
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if isSocketErrno(errno) {
			return model.ConnectionRefusedOrAddressError, errno.Error()
		}
		return model.HostResolutionOrProtocolError, fmt.Sprintf("Errno %d, %s", int(errno), errno.Error())
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return model.ConnectionRefusedOrAddressError, opErr.Error()
	}

	cause := errors.Cause(err)
	return model.UnknownFailure, fmt.Sprintf("%T: %v", cause, cause)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	if errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func addressError(err error) (string, bool) {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Error(), true
	}
	var addrErr *net.AddrError
	if errors.As(err, &addrErr) {
		return addrErr.Error(), true
	}
	var parseErr *net.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Error(), true
	}
	var netErr net.UnknownNetworkError
	if errors.As(err, &netErr) {
		return netErr.Error(), true
	}
	if errors.Is(err, syscall.EAFNOSUPPORT) || errors.Is(err, syscall.EADDRNOTAVAIL) {
		return errors.Cause(err).Error(), true
	}
	return "", false
}

// Errors a peer can cause on an otherwise reachable host.
func isSocketErrno(errno syscall.Errno) bool {
	switch errno {
	case syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ECONNABORTED, syscall.EPIPE:
		return true
	}
	return false
}
