package service

import (
	"io"
	"time"
)

// progressReader counts the bytes read through it and reports the running
// total at most once per interval, and once more at EOF.
type progressReader struct {
	r        io.Reader
	read     int64
	reported int64
	interval time.Duration
	last     time.Time
	report   func(read int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)

	now := time.Now()
	if p.read != p.reported && (err == io.EOF || now.Sub(p.last) >= p.interval) {
		p.last = now
		p.reported = p.read
		p.report(p.read)
	}
	return n, err
}
