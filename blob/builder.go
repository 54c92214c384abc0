package blob

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/format"
	"github.com/arloliu/colvec/internal/options"
	"github.com/arloliu/colvec/row"
)

// Field names one column of a builder schema.
type Field struct {
	Name string
	Type format.ElementType
}

// Schema is the ordered column list a Builder encodes against.
type Schema []Field

// Builder collects rows into per-column staging buffers and encodes each
// column when the stream is consumed.
//
// Note: The Builder is NOT thread-safe. Each builder instance should be used
// by a single goroutine at a time; Finish with parallel encoding enabled
// spawns its own workers, one encoder per column.
//
// Note: The Builder is NOT reusable. After calling Finish, a new builder must
// be created for further encoding.
type Builder struct {
	schema Schema
	stages []columnStage
	config builderConfig
	rows   int
}

// NewBuilder creates a Builder for the given schema.
func NewBuilder(schema Schema, opts ...BuilderOption) (*Builder, error) {
	var cfg builderConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	stages := make([]columnStage, len(schema))
	for i, field := range schema {
		stage, err := newColumnStage(field.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", field.Name, err)
		}
		stages[i] = stage
	}

	return &Builder{schema: schema, stages: stages, config: cfg}, nil
}

// Append stages one row. Column i of the row feeds column i of the schema;
// positions the reader reports as absent are staged as missing.
func (b *Builder) Append(r row.Reader) {
	for i := range b.stages {
		b.stages[i].append(r, i)
	}
	b.rows++
}

// Len returns the number of rows staged so far.
func (b *Builder) Len() int {
	return b.rows
}

// Finish encodes every column and returns the blobs keyed by field name.
// Each returned byte region is freshly allocated and owned by the caller.
func (b *Builder) Finish() (map[string][]byte, error) {
	results := make([][]byte, len(b.stages))

	if b.config.parallel {
		g := new(errgroup.Group)
		for i := range b.stages {
			g.Go(func() error {
				data, err := b.stages[i].encode(&b.config)
				if err != nil {
					return fmt.Errorf("column %q: %w", b.schema[i].Name, err)
				}
				results[i] = data

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range b.stages {
			data, err := b.stages[i].encode(&b.config)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", b.schema[i].Name, err)
			}
			results[i] = data
		}
	}

	out := make(map[string][]byte, len(b.schema))
	for i, field := range b.schema {
		out[field.Name] = results[i]
	}

	return out, nil
}

// columnStage stages one column's values plus its missing-position set.
type columnStage interface {
	append(r row.Reader, col int)
	encode(cfg *builderConfig) ([]byte, error)
}

func newColumnStage(elem format.ElementType) (columnStage, error) {
	switch elem {
	case format.ElementBool:
		return &boolStage{missing: roaring.New()}, nil
	case format.ElementInt32:
		return &int32Stage{missing: roaring.New()}, nil
	case format.ElementInt64:
		return &int64Stage{missing: roaring.New()}, nil
	case format.ElementFloat32:
		return &float32Stage{missing: roaring.New()}, nil
	case format.ElementFloat64:
		return &float64Stage{missing: roaring.New()}, nil
	case format.ElementString, format.ElementUTF8View:
		return &stringStage{missing: roaring.New()}, nil
	case format.ElementDateTime:
		return &timeStage{missing: roaring.New(), toUnix: time.Time.UnixMicro}, nil
	case format.ElementSQLTimestamp:
		return &timeStage{missing: roaring.New(), toUnix: time.Time.UnixMilli}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported element type %s", errs.ErrTypeMismatch, elem)
	}
}

type boolStage struct {
	values  []bool
	missing *roaring.Bitmap
}

func (s *boolStage) append(r row.Reader, col int) {
	if !r.IsPresent(col) {
		s.missing.Add(uint32(len(s.values))) //nolint:gosec
		s.values = append(s.values, false)

		return
	}
	s.values = append(s.values, r.Bool(col))
}

func (s *boolStage) encode(*builderConfig) ([]byte, error) {
	return EncodeBoolColumn(s.values, s.missing)
}

type int32Stage struct {
	values  []int32
	missing *roaring.Bitmap
}

func (s *int32Stage) append(r row.Reader, col int) {
	if !r.IsPresent(col) {
		s.missing.Add(uint32(len(s.values))) //nolint:gosec
		s.values = append(s.values, 0)

		return
	}
	s.values = append(s.values, r.Int32(col))
}

func (s *int32Stage) encode(*builderConfig) ([]byte, error) {
	return EncodeInt32Column(s.values, s.missing)
}

type int64Stage struct {
	values  []int64
	missing *roaring.Bitmap
}

func (s *int64Stage) append(r row.Reader, col int) {
	if !r.IsPresent(col) {
		s.missing.Add(uint32(len(s.values))) //nolint:gosec
		s.values = append(s.values, 0)

		return
	}
	s.values = append(s.values, r.Int64(col))
}

func (s *int64Stage) encode(*builderConfig) ([]byte, error) {
	return EncodeInt64Column(s.values, s.missing)
}

type float32Stage struct {
	values  []float32
	missing *roaring.Bitmap
}

func (s *float32Stage) append(r row.Reader, col int) {
	if !r.IsPresent(col) {
		s.missing.Add(uint32(len(s.values))) //nolint:gosec
		s.values = append(s.values, 0)

		return
	}
	s.values = append(s.values, r.Float32(col))
}

func (s *float32Stage) encode(*builderConfig) ([]byte, error) {
	return EncodeFloat32Column(s.values, s.missing)
}

type float64Stage struct {
	values  []float64
	missing *roaring.Bitmap
}

func (s *float64Stage) append(r row.Reader, col int) {
	if !r.IsPresent(col) {
		s.missing.Add(uint32(len(s.values))) //nolint:gosec
		s.values = append(s.values, 0)

		return
	}
	s.values = append(s.values, r.Float64(col))
}

func (s *float64Stage) encode(*builderConfig) ([]byte, error) {
	return EncodeFloat64Column(s.values, s.missing)
}

type stringStage struct {
	values  []string
	missing *roaring.Bitmap
}

func (s *stringStage) append(r row.Reader, col int) {
	if !r.IsPresent(col) {
		s.missing.Add(uint32(len(s.values))) //nolint:gosec
		s.values = append(s.values, "")

		return
	}
	s.values = append(s.values, r.String(col))
}

func (s *stringStage) encode(cfg *builderConfig) ([]byte, error) {
	return EncodeStringColumn(s.values, s.missing, cfg.dictThreshold)
}

// timeStage stages datetime and SQL timestamp columns as int64 epoch values
// at the resolution toUnix selects.
type timeStage struct {
	values  []int64
	missing *roaring.Bitmap
	toUnix  func(time.Time) int64
}

func (s *timeStage) append(r row.Reader, col int) {
	if !r.IsPresent(col) {
		s.missing.Add(uint32(len(s.values))) //nolint:gosec
		s.values = append(s.values, 0)

		return
	}

	if t, ok := r.Any(col).(time.Time); ok {
		s.values = append(s.values, s.toUnix(t))

		return
	}

	s.values = append(s.values, r.Int64(col))
}

func (s *timeStage) encode(*builderConfig) ([]byte, error) {
	return EncodeTimestampColumn(s.values, s.missing)
}
