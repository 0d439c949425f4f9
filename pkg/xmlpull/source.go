package xmlpull

import (
	"bytes"
	"errors"
	"io"
)

const (
	defaultBufferSize = 8192
	minBufferSize     = 16
	maxEmptyReads     = 100

	// endOfInput is returned by window reads past the last byte.
	endOfInput = -1
)

// window is the resident byte range the tokenizer scans.
//
// For whole-document input buf is the caller's slice and never changes.
// For streaming input buf is owned by the window and holds the bytes from
// the current token start through the last byte read. When it fills up the
// window either grows by 1.75x (the live token occupies more than half of
// it) or shifts the live bytes down to offset 0. Shifting invalidates
// window offsets, so callers that need to remember a place across reads use
// absolute offsets from offset().
type window struct {
	r     io.Reader
	err   error
	buf   []byte
	lines lineTracker
	mark  int
	base  int64
	n     int
	pos   int
	start int
	eof   bool
}

func newFixedWindow(doc []byte) window {
	return window{buf: doc, n: len(doc), eof: true, lines: newLineTracker()}
}

func newStreamWindow(r io.Reader, size int) window {
	return window{r: r, buf: make([]byte, size), lines: newLineTracker()}
}

// peek returns the byte k positions past the cursor, or endOfInput.
func (w *window) peek(k int) int {
	for w.pos+k >= w.n {
		if !w.fill() {
			return endOfInput
		}
	}
	return int(w.buf[w.pos+k])
}

func (w *window) move(k int) {
	w.pos += k
}

// hasPrefix reports whether the bytes at the cursor spell lit.
func (w *window) hasPrefix(lit []byte) bool {
	for i, b := range lit {
		if w.peek(i) != int(b) {
			return false
		}
	}
	return true
}

// skipWhile advances over bytes in set and returns the first byte outside
// it without consuming it.
func (w *window) skipWhile(set *[256]bool) int {
	for {
		data := w.buf[w.pos:w.n]
		for i, b := range data {
			if !set[b] {
				w.pos += i
				return int(b)
			}
		}
		w.pos = w.n
		if !w.fill() {
			return endOfInput
		}
	}
}

// skipUntil advances to the first byte in set and returns it without
// consuming it.
func (w *window) skipUntil(set *[256]bool) int {
	for {
		data := w.buf[w.pos:w.n]
		for i, b := range data {
			if set[b] {
				w.pos += i
				return int(b)
			}
		}
		w.pos = w.n
		if !w.fill() {
			return endOfInput
		}
	}
}

// seekLiteral advances to the start of the next occurrence of lit.
// On failure the cursor is left at the end of input.
func (w *window) seekLiteral(lit []byte) bool {
	for {
		if idx := bytes.Index(w.buf[w.pos:w.n], lit); idx >= 0 {
			w.pos += idx
			return true
		}
		if keep := w.n - len(lit) + 1; keep > w.pos {
			w.pos = keep
		}
		if !w.fill() {
			w.pos = w.n
			return false
		}
	}
}

// fill reads more input after the last resident byte. It reports whether
// any byte was added.
func (w *window) fill() bool {
	if w.eof || w.err != nil || w.r == nil {
		return false
	}
	if w.n == len(w.buf) {
		w.makeRoom()
	}
	for range maxEmptyReads {
		n, err := w.r.Read(w.buf[w.n:])
		if n > 0 {
			w.n += n
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				w.eof = true
			} else {
				w.err = &ReadError{Offset: w.base + int64(w.n), Err: err}
			}
			return n > 0
		}
		if n > 0 {
			return true
		}
	}
	w.err = &ReadError{Offset: w.base + int64(w.n), Err: io.ErrNoProgress}
	return false
}

func (w *window) makeRoom() {
	live := w.n - w.start
	if live > len(w.buf)/2 {
		size := len(w.buf) * 7 / 4
		if size <= len(w.buf) {
			size = len(w.buf) + 1
		}
		next := make([]byte, size)
		copy(next, w.buf[w.start:w.n])
		w.discard(w.start)
		w.buf = next
		return
	}
	copy(w.buf, w.buf[w.start:w.n])
	w.discard(w.start)
}

// discard forgets the first k resident bytes, folding them into the
// tracked position. k never exceeds start.
func (w *window) discard(k int) {
	if k == 0 {
		return
	}
	w.lines.advance(w.buf[w.mark:k])
	w.mark = 0
	w.base += int64(k)
	w.n -= k
	w.pos -= k
	w.start -= k
}

func (w *window) offset() int64 {
	return w.base + int64(w.pos)
}

func (w *window) seek(offset int64) {
	w.pos = int(offset - w.base)
}

// positionAt returns the line and column of window index i.
//
// lines holds the position of index mark. The mark follows the token start
// forward, so each call only scans from the current token onwards. Indexes
// before the token start are never requested and resolve to the mark.
func (w *window) positionAt(i int) Position {
	i = min(max(i, w.mark), w.n)
	if anchor := min(i, w.start); anchor > w.mark {
		w.lines.advance(w.buf[w.mark:anchor])
		w.mark = anchor
	}
	lines := w.lines
	lines.advance(w.buf[w.mark:i])
	return lines.position()
}

// failed returns the read error that ended input early, if any.
func (w *window) failed() error {
	return w.err
}

func (w *window) snippet(pos int) []byte {
	const span = 32
	if pos < 0 || pos > w.n {
		return nil
	}
	start := max(pos-span, 0)
	end := min(pos+span, w.n)
	if start >= end {
		return nil
	}
	out := make([]byte, end-start)
	copy(out, w.buf[start:end])
	return out
}
