package stream

import (
	"bufio"
	"bytes"
	"io"
)

// LineFilter returns an io.Reader that only outputs lines matching the predicate.
// Lines are delimited by '\n'. The predicate sees the line without its line
// terminator ("\n" or "\r\n"); lines that pass are written out unchanged,
// terminator included.
//
// Example - keep only lines that are entirely digits:
//
//	re := thompson.MustCompile("(0|1|2|3|4|5|6|7|8|9)+")
//	r := stream.LineFilter(input, re.Match)
//	io.Copy(os.Stdout, r)
func LineFilter(r io.Reader, pred func(line []byte) bool) io.Reader {
	return &lineFilterReader{
		source: bufio.NewReader(r),
		pred:   pred,
	}
}

// lineFilterReader implements io.Reader for LineFilter.
type lineFilterReader struct {
	source *bufio.Reader
	pred   func(line []byte) bool

	// Output buffer (lines that passed the filter)
	output      []byte
	outputStart int

	err error
}

func (r *lineFilterReader) Read(p []byte) (n int, err error) {
	for r.outputStart == len(r.output) {
		if r.err != nil {
			return 0, r.err
		}
		r.output = r.output[:0]
		r.outputStart = 0
		r.err = r.processLine()
	}

	n = copy(p, r.output[r.outputStart:])
	r.outputStart += n
	return n, nil
}

// processLine reads one line and appends it to the output if it passes.
func (r *lineFilterReader) processLine() error {
	line, err := r.source.ReadBytes('\n')
	if len(line) > 0 && r.pred(trimEOL(line)) {
		r.output = append(r.output, line...)
	}
	return err
}

// trimEOL strips a trailing "\n" or "\r\n". A lone trailing '\r' is data.
func trimEOL(line []byte) []byte {
	if !bytes.HasSuffix(line, []byte{'\n'}) {
		return line
	}
	line = line[:len(line)-1]
	return bytes.TrimSuffix(line, []byte{'\r'})
}
