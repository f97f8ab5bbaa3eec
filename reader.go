package termkey

import "time"

// Reader supplies raw bytes from a terminal input stream. A Session
// is the single logical owner of its Reader; implementations are not
// required to tolerate concurrent callers.
type Reader interface {
	// ReadAvailable returns whatever bytes are ready right now without
	// blocking; zero bytes when nothing is pending. End of stream is
	// reported as io.EOF.
	ReadAvailable() ([]byte, error)

	// WaitReady blocks until input becomes available or the timeout
	// elapses, reporting whether input is ready. A negative timeout
	// waits indefinitely; zero polls once.
	WaitReady(timeout time.Duration) (bool, error)
}
