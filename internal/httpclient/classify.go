package httpclient

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strings"
)

// FailureKind is the category of a failed attempt.
type FailureKind int

const (
	// Unclassified is any failure outside the categories below.
	Unclassified FailureKind = iota
	// ConnectTimeout is a timeout while establishing the connection.
	ConnectTimeout
	// ReadTimeout is any other timeout, including the attempt deadline.
	ReadTimeout
	// RemoteProtocolError is a broken exchange: the peer closed the
	// connection mid-response or sent something that is not HTTP.
	RemoteProtocolError
	// Canceled means the caller's context ended.
	Canceled
	// InvalidRequest means the request was rejected before any attempt.
	InvalidRequest
)

func (k FailureKind) String() string {
	switch k {
	case ConnectTimeout:
		return "connect_timeout"
	case ReadTimeout:
		return "read_timeout"
	case RemoteProtocolError:
		return "remote_protocol_error"
	case Canceled:
		return "canceled"
	case InvalidRequest:
		return "invalid_request"
	default:
		return "unclassified"
	}
}

// protocolMarkers are fragments of the untyped errors net/http returns for
// responses that break the protocol.
var protocolMarkers = []string{
	"malformed HTTP",
	"transport connection broken",
	"server closed idle connection",
}

// Classify maps an attempt error to a [FailureKind]. The boolean reports
// whether the kind is a transport category (connect timeout, read timeout or
// remote protocol error), which are the only kinds a [Config] may retry.
func Classify(err error) (FailureKind, bool) {
	if err == nil {
		return Unclassified, false
	}
	if errors.Is(err, context.Canceled) {
		return Canceled, false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" && opErr.Timeout() {
		return ConnectTimeout, true
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return ReadTimeout, true
	}

	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return RemoteProtocolError, true
	}
	msg := err.Error()
	for _, marker := range protocolMarkers {
		if strings.Contains(msg, marker) {
			return RemoteProtocolError, true
		}
	}

	return Unclassified, false
}
