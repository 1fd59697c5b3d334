package probe

import (
	"bytes"
	"io"
	"net"
	"time"

	"github.com/adace74/distribulator2-contrib/pkg/model"
	"github.com/pkg/errors"
)

var (
	ErrEmptyBanner    = errors.New("zero-length remote service header")
	ErrBannerMismatch = errors.New("non-matching service banner")
)

// VerifyBanner performs exactly one read of up to model.BannerReadSize bytes
// and checks that it contains match. Only the first chunk is inspected.
// The bytes received are returned even when the check fails.
func VerifyBanner(conn net.Conn, match string, timeout time.Duration) ([]byte, error) {
	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, errors.Wrap(err, "set read deadline")
	}

	buf := make([]byte, model.BannerReadSize)
	n, err := conn.Read(buf)
	data := buf[:n]
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return data, ErrEmptyBanner
		}
		return nil, errors.Wrap(err, "read banner")
	}

	if !bytes.Contains(data, []byte(match)) {
		return data, ErrBannerMismatch
	}
	return data, nil
}

// BannerReceived reports whether err came from a read that returned, as
// opposed to one that failed before yielding anything.
func BannerReceived(err error) bool {
	return err == nil || errors.Is(err, ErrEmptyBanner) || errors.Is(err, ErrBannerMismatch)
}
