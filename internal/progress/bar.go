// Package progress wraps readers with a terminal progress bar.
package progress

import (
	"fmt"
	"io"

	"github.com/inhies/go-bytesize"
	"github.com/pterm/pterm"
)

type barWriter struct {
	bar *pterm.ProgressbarPrinter
}

func (w *barWriter) Write(p []byte) (int, error) {
	n := len(p)
	w.bar.Add(n)
	return n, nil
}

type barReadCloser struct {
	io.Reader
	underlying io.Closer
	bar        *pterm.ProgressbarPrinter
}

func (r *barReadCloser) Close() error {
	r.bar.Stop()
	if r.underlying != nil {
		return r.underlying.Close()
	}
	return nil
}

// ReadCloser returns a reader that advances a progress bar titled after
// name as bytes flow through it. Closing it stops the bar and closes
// the wrapped reader when it has a Close method.
func ReadCloser(contentLength int64, r io.Reader, name string) io.ReadCloser {
	size := bytesize.New(float64(contentLength))
	title := fmt.Sprintf("%s (%s)", name, size.String())
	bar := pterm.DefaultProgressbar.
		WithTitle(title).
		WithRemoveWhenDone(false)

	if contentLength > 0 {
		bar = bar.WithTotal(int(contentLength))
	}

	pb, _ := bar.Start()
	tee := io.TeeReader(r, &barWriter{pb})

	var closer io.Closer
	if c, ok := r.(io.Closer); ok {
		closer = c
	}

	return &barReadCloser{Reader: tee, underlying: closer, bar: pb}
}
