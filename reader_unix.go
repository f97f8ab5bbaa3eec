//go:build unix

package termkey

import (
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// FileReader reads a terminal, pty, or pipe file descriptor using
// poll(2) for bounded readiness waits and drains pending bytes
// without blocking.
type FileReader struct {
	f   *os.File
	fd  int
	buf [256]byte
}

// NewFileReader wraps an open input stream. The caller keeps
// ownership of the file and closes it when the session ends.
func NewFileReader(f *os.File) *FileReader {
	return &FileReader{f: f, fd: int(f.Fd())}
}

// ReadAvailable drains the bytes currently pending on the descriptor.
func (r *FileReader) ReadAvailable() ([]byte, error) {
	var out []byte
	for {
		fds := []unix.PollFd{{Fd: int32(r.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return out, err
		}
		if n == 0 {
			return out, nil
		}

		rn, err := unix.Read(r.fd, r.buf[:])
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		if err != nil {
			return out, err
		}
		if rn == 0 {
			if len(out) > 0 {
				return out, nil
			}
			return nil, io.EOF
		}
		out = append(out, r.buf[:rn]...)
		if rn < len(r.buf) {
			return out, nil
		}
	}
}

// WaitReady blocks on poll(2) until input is readable or the timeout
// elapses. EINTR restarts the wait against the original deadline.
func (r *FileReader) WaitReady(timeout time.Duration) (bool, error) {
	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}
	for {
		ms := -1
		if timeout >= 0 {
			remaining := time.Until(deadline)
			if remaining < 0 {
				remaining = 0
			}
			// Round up so a sub-millisecond remainder still waits.
			ms = int((remaining + time.Millisecond - 1) / time.Millisecond)
		}

		fds := []unix.PollFd{{Fd: int32(r.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
		if timeout >= 0 && !time.Now().Before(deadline) {
			return false, nil
		}
	}
}
