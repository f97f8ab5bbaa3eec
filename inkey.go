package termkey

import "time"

const (
	// DefaultEscDelay is how long a lone ESC byte is held back waiting
	// for the rest of a possible escape sequence.
	DefaultEscDelay = 350 * time.Millisecond

	// DefaultIncompleteWait bounds the supplementary wait for the
	// remaining bytes of a multibyte character split across reads.
	DefaultIncompleteWait = 25 * time.Millisecond
)

// Session decodes keystrokes from one terminal input stream. It owns
// the pending-input buffer carried between Inkey calls; concurrent
// Inkey calls on the same Session must be serialized by the caller.
// The SequenceMapping it resolves against is immutable and may be
// inspected concurrently.
type Session struct {
	reader         Reader
	mapping        *SequenceMapping
	dec            *Decoder
	escDelay       time.Duration
	incompleteWait time.Duration
	pending        string
}

// SessionOption configures NewSession.
type SessionOption func(*Session)

// WithEscDelay sets the session-wide escape disambiguation delay.
func WithEscDelay(d time.Duration) SessionOption {
	return func(s *Session) { s.escDelay = d }
}

// WithIncompleteWait sets the bound on waiting for the rest of a
// split multibyte character.
func WithIncompleteWait(d time.Duration) SessionOption {
	return func(s *Session) { s.incompleteWait = d }
}

// WithDecoder replaces the default UTF-8 decoder, e.g. to select a
// legacy charset or the ignore policy for undecodable bytes.
func WithDecoder(dec *Decoder) SessionOption {
	return func(s *Session) {
		if dec != nil {
			s.dec = dec
		}
	}
}

// NewSession creates a keystroke session over a raw input reader and
// a built sequence mapping.
func NewSession(r Reader, m *SequenceMapping, opts ...SessionOption) *Session {
	s := &Session{
		reader:         r,
		mapping:        m,
		dec:            NewDecoder(),
		escDelay:       DefaultEscDelay,
		incompleteWait: DefaultIncompleteWait,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InkeyOption adjusts a single Inkey call.
type InkeyOption func(*inkeyConfig)

type inkeyConfig struct {
	escDelay time.Duration
}

// WithInkeyEscDelay overrides the session's escape delay for one call.
func WithInkeyEscDelay(d time.Duration) InkeyOption {
	return func(c *inkeyConfig) { c.escDelay = d }
}

// Inkey returns the next keystroke.
//
// A negative timeout blocks until input arrives; zero polls once and
// returns the zero Keystroke immediately when nothing is pending; a
// positive timeout blocks at most that long. The zero Keystroke
// (empty text, no name or code) signals timeout and only timeout.
//
// A lone ESC byte that could begin a registered sequence is held for
// the escape delay before being finalized as the ESCAPE key; bytes
// arriving within that window re-enter resolution and may complete a
// longer sequence. Unconsumed input stays buffered for the next call.
//
// Malformed or unrecognized input never produces an error; it
// degrades to literal-character keystrokes. The error return reports
// reader failures (including io.EOF) only.
func (s *Session) Inkey(timeout time.Duration, opts ...InkeyOption) (Keystroke, error) {
	cfg := inkeyConfig{escDelay: s.escDelay}
	for _, opt := range opts {
		opt(&cfg)
	}

	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}

	if err := s.fill(); err != nil && s.pending == "" {
		return Keystroke{}, err
	}

	// Block until something is buffered or the timeout expires.
	for s.pending == "" {
		wait := time.Duration(-1)
		if timeout >= 0 {
			wait = time.Until(deadline)
			if wait < 0 {
				wait = 0
			}
		}
		ready, err := s.reader.WaitReady(wait)
		if err != nil {
			return Keystroke{}, err
		}
		if ready {
			if err := s.fill(); err != nil && s.pending == "" {
				return Keystroke{}, err
			}
		}
		if s.pending == "" && timeout >= 0 && !time.Now().Before(deadline) {
			return Keystroke{}, nil
		}
	}

	ks, n := s.mapping.Resolve(s.pending)

	// Escape disambiguation: the buffer resolved to a bare ESC and a
	// registered sequence could still extend it. Hold for the escape
	// delay; anything that arrives re-enters resolution.
	if ks.Text() == "\x1b" && s.mapping.hasContinuation(s.pending) {
		escDeadline := time.Now().Add(cfg.escDelay)
		for {
			remaining := time.Until(escDeadline)
			if remaining <= 0 {
				break
			}
			ready, err := s.reader.WaitReady(remaining)
			if err != nil || !ready {
				break
			}
			if err := s.fill(); err != nil {
				break
			}
			ks, n = s.mapping.Resolve(s.pending)
			if ks.Text() != "\x1b" || !s.mapping.hasContinuation(s.pending) {
				break
			}
		}
		ks, n = s.mapping.Resolve(s.pending)
	}

	s.pending = s.pending[n:]
	return ks, nil
}

// Pending returns the decoded characters buffered but not yet
// resolved, without consuming them.
func (s *Session) Pending() string { return s.pending }

// fill drains available raw bytes into the decoder and appends the
// decoded text to the pending buffer. When a multibyte character is
// left unfinished it grants the stream a short bounded wait for the
// remaining bytes, then gives up and lets the decoder substitute
// rather than stalling input.
func (s *Session) fill() error {
	data, err := s.reader.ReadAvailable()
	if len(data) > 0 {
		s.pending += s.dec.Write(data)
	}
	if err != nil {
		return err
	}

	for s.dec.Incomplete() {
		ready, werr := s.reader.WaitReady(s.incompleteWait)
		if werr != nil || !ready {
			s.pending += s.dec.Flush()
			return werr
		}
		more, rerr := s.reader.ReadAvailable()
		if len(more) > 0 {
			s.pending += s.dec.Write(more)
		}
		if rerr != nil {
			if s.dec.Incomplete() {
				s.pending += s.dec.Flush()
			}
			return rerr
		}
	}
	return nil
}
