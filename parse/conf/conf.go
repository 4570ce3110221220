package conf

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// =========================
// Public API
// =========================

// Parse reads a conf document from r and returns the root Table. The
// default group and section (both named "") always exist, so a
// document without header lines fills a valid default section. The
// first malformed line aborts the whole parse.
func Parse(r io.Reader) (*Table, error) {
	p := &parser{
		scanner: bufio.NewScanner(r),
		table:   NewTable(),
	}
	p.cur = p.table.EnsureGroup("").EnsureSection("")

	for p.scanner.Scan() {
		p.lineNo++
		line := trimEnds(p.scanner.Text())
		line = stripComment(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "["):
			if err := p.parseSectionHeader(line); err != nil {
				return nil, err
			}
		default:
			if err := p.parseKeyValue(line); err != nil {
				return nil, err
			}
		}
	}

	if err := p.scanner.Err(); err != nil {
		return nil, newError(KindFileAccess, err)
	}

	return p.table, nil
}

// ParseString parses a document held in memory.
func ParseString(s string) (*Table, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens path and parses its contents. Open failures are
// reported with kind KindFileAccess, distinct from parse errors.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(KindFileAccess, errors.Wrapf(err, "open conf %s", path))
	}
	defer f.Close()
	return Parse(f)
}

// =========================
// Parser Implementation
// =========================

type parser struct {
	scanner *bufio.Scanner
	table   *Table
	cur     *Section
	lineNo  int
}

// parseSectionHeader repoints the current section. "[name]" selects
// the default section of group name, keeping the inner text verbatim;
// "[name sub]" splits at the first unquoted space and trims and
// unquotes both parts. Re-entering a header keeps the fields already
// collected there.
func (p *parser) parseSectionHeader(line string) error {
	inner, err := stripQuotes(line, '[', ']', p.lineNo)
	if err != nil {
		return err
	}

	sep := findUnquoted(inner, ' ')
	if sep < 0 {
		p.cur = p.table.EnsureGroup(inner).EnsureSection("")
		return nil
	}

	group, err := unquote(trimEnds(inner[:sep]), p.lineNo)
	if err != nil {
		return err
	}
	section, err := unquote(trimEnds(inner[sep+1:]), p.lineNo)
	if err != nil {
		return err
	}
	p.cur = p.table.EnsureGroup(group).EnsureSection(section)
	return nil
}

// parseKeyValue splits at the first unquoted '=' and inserts the field
// into the current section, overwriting any earlier value. Key and
// value are trimmed and unquoted independently; an empty key is legal.
func (p *parser) parseKeyValue(line string) error {
	idx := findUnquoted(line, '=')
	if idx < 0 {
		return malformedf(p.lineNo, line, "missing '=' separator")
	}

	key, err := unquote(trimEnds(line[:idx]), p.lineNo)
	if err != nil {
		return err
	}
	value, err := unquote(trimEnds(line[idx+1:]), p.lineNo)
	if err != nil {
		return err
	}
	p.cur.SetField(key, value)
	return nil
}
