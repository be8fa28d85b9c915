package exchange

import (
	"fmt"
	"io"
	"strings"
)

// csvParser reads header-less RFC 4180 records. encoding/csv rewrites a \r\n
// inside a quoted field to \n; this parser keeps field bytes exactly as
// written so clipboard text from CRLF sources round-trips.
type csvParser struct {
	data []byte
	pos  int
	line int
}

func newCSVParser(data []byte) *csvParser {
	return &csvParser{data: data, line: 1}
}

// next returns the following record and the line it starts on. Blank lines
// between records are skipped. Returns io.EOF when the input is exhausted.
func (p *csvParser) next() (int, []string, error) {
	p.skipBlankLines()
	if p.pos >= len(p.data) {
		return 0, nil, io.EOF
	}

	start := p.line
	var fields []string
	for {
		field, err := p.field()
		if err != nil {
			return start, nil, err
		}
		fields = append(fields, field)

		if p.pos >= len(p.data) {
			return start, fields, nil
		}
		if p.data[p.pos] != ',' {
			p.endRecord()
			return start, fields, nil
		}
		p.pos++
	}
}

func (p *csvParser) field() (string, error) {
	if p.pos < len(p.data) && p.data[p.pos] == '"' {
		return p.quoted()
	}

	begin := p.pos
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case c == ',' || p.atRecordEnd():
			return string(p.data[begin:p.pos]), nil
		case c == '"':
			return "", fmt.Errorf("line %d: bare \" in non-quoted field", p.line)
		}
		p.pos++
	}
	return string(p.data[begin:]), nil
}

func (p *csvParser) quoted() (string, error) {
	start := p.line
	p.pos++

	var b strings.Builder
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '"' {
			if p.pos+1 < len(p.data) && p.data[p.pos+1] == '"' {
				b.WriteByte('"')
				p.pos += 2
				continue
			}

			p.pos++
			if p.pos < len(p.data) && p.data[p.pos] != ',' && !p.atRecordEnd() {
				return "", fmt.Errorf("line %d: unexpected %q after closing quote", p.line, p.data[p.pos])
			}
			return b.String(), nil
		}

		if c == '\n' {
			p.line++
		}
		b.WriteByte(c)
		p.pos++
	}

	return "", fmt.Errorf("line %d: quoted field is never closed", start)
}

// atRecordEnd reports whether pos sits on \n, \r\n, or a \r ending the input.
func (p *csvParser) atRecordEnd() bool {
	switch p.data[p.pos] {
	case '\n':
		return true
	case '\r':
		return p.pos+1 == len(p.data) || p.data[p.pos+1] == '\n'
	default:
		return false
	}
}

func (p *csvParser) endRecord() {
	if p.data[p.pos] == '\r' {
		p.pos++
	}
	if p.pos < len(p.data) && p.data[p.pos] == '\n' {
		p.pos++
		p.line++
	}
}

func (p *csvParser) skipBlankLines() {
	for p.pos < len(p.data) && p.atRecordEnd() {
		p.endRecord()
	}
}
