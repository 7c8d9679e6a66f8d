package fooddb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/pantry/knapsack"
)

// Sentinel errors returned by fooddb.
var (
	// ErrFieldCount indicates a delimited row without exactly three fields.
	ErrFieldCount = errors.New("fooddb: invalid field count")

	// ErrSyntax indicates input that is not well-formed text or YAML.
	ErrSyntax = errors.New("fooddb: malformed input")

	// ErrOpen indicates that the catalog file could not be opened.
	ErrOpen = errors.New("fooddb: cannot open catalog")
)

// fieldCount is the number of fields in a delimited row.
const fieldCount = 3

// DefaultDelimiter separates fields in delimited text.
const DefaultDelimiter = '^'

// maxLineBytes bounds a single delimited row.
const maxLineBytes = 1 << 20

// SkipFunc observes a skipped row: its 1-based line number (delimited text)
// or item ordinal (YAML), and the reason.
type SkipFunc func(line int, err error)

type options struct {
	delimiter rune
	header    bool
	onSkip    SkipFunc
}

// Option configures Load, LoadYAML and LoadFile.
type Option func(*options)

// WithDelimiter overrides the field separator of delimited text.
func WithDelimiter(r rune) Option {
	return func(o *options) { o.delimiter = r }
}

// WithoutHeader treats the first row as data.
func WithoutHeader() Option {
	return func(o *options) { o.header = false }
}

// WithOnSkip registers a hook called for every skipped row.
func WithOnSkip(fn SkipFunc) Option {
	return func(o *options) { o.onSkip = fn }
}

func gatherOptions(opts []Option) options {
	o := options{delimiter: DefaultDelimiter, header: true}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func (o options) skip(line int, err error) {
	if o.onSkip != nil {
		o.onSkip(line, err)
	}
}

// Load reads a delimited catalog from r. Fields are split on the
// delimiter verbatim; there is no quoting. Blank lines are ignored.
func Load(r io.Reader, opts ...Option) (*knapsack.Catalog, error) {
	o := gatherOptions(opts)
	sep := string(o.delimiter)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	c := knapsack.NewCatalog()
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if line == 1 && o.header {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, sep)
		if len(fields) != fieldCount {
			return nil, fmt.Errorf("%w at line %d: want %d, got %d", ErrFieldCount, line, fieldCount, len(fields))
		}
		weight, err := parseNumber(fields[1])
		if err != nil {
			o.skip(line, fmt.Errorf("weight: %w", err))
			continue
		}
		calories, err := parseNumber(fields[2])
		if err != nil {
			o.skip(line, fmt.Errorf("calories: %w", err))
			continue
		}
		if _, err = c.Add(fields[0], weight, calories); err != nil {
			o.skip(line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, line+1, err)
	}

	return c, nil
}

func parseNumber(field string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}

// LoadFile opens path and loads it as YAML when the extension is .yaml or
// .yml, and as delimited text otherwise.
func LoadFile(path string, opts ...Option) (*knapsack.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f, opts...)
	default:
		return Load(f, opts...)
	}
}
