package api

import "io"

// ProgressFunc receives upload progress as an integer percent in [0,100].
// Values are non-decreasing; intermediate values may be skipped.
type ProgressFunc func(percent int)

// progressReader wraps the request body and reports percent-complete as the
// transport consumes it. Duplicate percents are suppressed.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	last  int
	fn    ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.report()
	}
	return n, err
}

func (p *progressReader) report() {
	if p.fn == nil || p.total <= 0 {
		return
	}
	percent := int((p.read*100 + p.total/2) / p.total)
	if percent > 100 {
		percent = 100
	}
	if percent > p.last {
		p.last = percent
		p.fn(percent)
	}
}
