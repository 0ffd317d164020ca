package gotdiff

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultMaxContentSize is the per-side input ceiling in bytes.
	DefaultMaxContentSize = 10 * 1024 * 1024
	// DefaultContextBudget is the maximum characters of anchoring context per side.
	DefaultContextBudget = 100
	// DefaultProximityLines is the line gap within which hunks are coalesced.
	DefaultProximityLines = 3
	// DefaultDiffTimeout leaves the character diff search unbounded, which
	// keeps the hunk set minimal.
	DefaultDiffTimeout time.Duration = 0
)

// Differ computes line-anchored hunks between two HTML documents.
// A Differ is immutable after construction and safe for concurrent use.
type Differ struct {
	maxContentSize int
	window         contextWindow
	proximityLines int
	textDiffer     TextDiffer
	newID          func() string
	cache          ResultCache
	logger         *slog.Logger
	concurrency    int
}

// ResultCache stores serialized hunk lists keyed by content hash.
type ResultCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// DifferOption is a functional option for configuring the Differ.
type DifferOption func(*Differ)

// WithMaxContentSize sets the per-side input ceiling in bytes.
// Non-positive values keep the default.
func WithMaxContentSize(n int) DifferOption {
	return func(d *Differ) {
		if n > 0 {
			d.maxContentSize = n
		}
	}
}

// WithContextBudget sets the maximum characters of context per side.
func WithContextBudget(n int) DifferOption {
	return func(d *Differ) {
		if n >= 0 {
			d.window.budget = n
		}
	}
}

// WithContextLines sets how many lines next to a hunk are read for context.
func WithContextLines(n int) DifferOption {
	return func(d *Differ) {
		if n >= 0 {
			d.window.lines = n
		}
	}
}

// WithContextExtendLines sets how many further lines are read when the
// context is under half its budget.
func WithContextExtendLines(n int) DifferOption {
	return func(d *Differ) {
		if n >= 0 {
			d.window.extend = n
		}
	}
}

// WithProximityLines sets the line gap within which hunks are coalesced.
func WithProximityLines(n int) DifferOption {
	return func(d *Differ) {
		if n >= 0 {
			d.proximityLines = n
		}
	}
}

// WithDiffTimeout bounds the character diff search. Zero means no limit. A
// positive timeout also enables diff-match-patch's half-match speedup, which
// can report larger hunks than necessary even when the deadline is not hit.
func WithDiffTimeout(timeout time.Duration) DifferOption {
	return func(d *Differ) {
		d.textDiffer = NewCharDiffer(timeout)
	}
}

// WithTextDiffer replaces the character diff primitive.
func WithTextDiffer(td TextDiffer) DifferOption {
	return func(d *Differ) {
		if td != nil {
			d.textDiffer = td
		}
	}
}

// WithIDGenerator sets the function producing hunk identifiers.
func WithIDGenerator(fn func() string) DifferOption {
	return func(d *Differ) {
		if fn != nil {
			d.newID = fn
		}
	}
}

// WithCache sets a result cache.
func WithCache(cache ResultCache) DifferOption {
	return func(d *Differ) {
		d.cache = cache
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) DifferOption {
	return func(d *Differ) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithConcurrency sets the number of workers used by CalculateBatch.
func WithConcurrency(n int) DifferOption {
	return func(d *Differ) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// NewDiffer creates a Differ with the given options.
func NewDiffer(opts ...DifferOption) *Differ {
	d := &Differ{
		maxContentSize: DefaultMaxContentSize,
		window:         defaultContextWindow,
		proximityLines: DefaultProximityLines,
		textDiffer:     NewCharDiffer(DefaultDiffTimeout),
		newID:          newDiffID,
		logger:         slog.New(slog.DiscardHandler),
		concurrency:    runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

var defaultDiffer = NewDiffer()

// CalculateDiff compares two HTML documents using default settings.
func CalculateDiff(oldHTML, newHTML string) ([]Diff, error) {
	return defaultDiffer.CalculateDiff(oldHTML, newHTML)
}

func newDiffID() string {
	return "diff_" + uuid.NewString()
}

// CalculateDiff compares oldHTML with newHTML and returns coalesced hunks in
// document order. The only error is a *TooLargeError.
func (d *Differ) CalculateDiff(oldHTML, newHTML string) ([]Diff, error) {
	if err := d.checkSize(oldHTML, newHTML); err != nil {
		return nil, err
	}

	if d.cache != nil {
		return d.calculateCached(oldHTML, newHTML)
	}

	return d.calculate(oldHTML, newHTML), nil
}

func (d *Differ) checkSize(oldHTML, newHTML string) error {
	if len(oldHTML) > d.maxContentSize {
		return &TooLargeError{Side: "old", Size: len(oldHTML), Limit: d.maxContentSize}
	}
	if len(newHTML) > d.maxContentSize {
		return &TooLargeError{Side: "new", Size: len(newHTML), Limit: d.maxContentSize}
	}
	return nil
}

// document is one side of a diff with its coordinate indexes.
type document struct {
	pos   *PositionMap
	lines *LineIndex
}

func newDocument(html string) *document {
	return &document{
		pos:   BuildPositionMap(html),
		lines: NewLineIndex(html),
	}
}

// lineAt returns the line of text character pos.
func (doc *document) lineAt(pos CharOffset) int {
	return doc.lines.Line(TextPosToHTMLByte(doc.pos, pos))
}

// lineBefore returns the line of the last source character before text
// character pos, which is where a range ending at pos ends.
func (doc *document) lineBefore(pos CharOffset) int {
	return doc.lines.LineBefore(TextPosToHTMLByte(doc.pos, pos))
}

// span returns the first and last line of text range r.
func (doc *document) span(r CharRange) (int, int) {
	return doc.lineAt(r.Start), doc.lineBefore(r.End)
}

func (d *Differ) calculate(oldHTML, newHTML string) []Diff {
	oldDoc := newDocument(oldHTML)
	newDoc := newDocument(newHTML)
	oldLines := splitLines(oldHTML)

	ops := d.textDiffer.Diff(oldDoc.pos.Text, newDoc.pos.Text)

	var raw []Diff
	var oldPos, newPos CharOffset
	for _, op := range ops {
		oldRange := CharRange{oldPos, oldPos + CharOffset(op.Old.Len())}
		newRange := CharRange{newPos, newPos + CharOffset(op.New.Len())}

		switch op.Tag {
		case OpEqual:
			// Unchanged text only moves the cursors.
		case OpDelete:
			start, end := oldDoc.span(oldRange)
			newLine := newDoc.lineAt(newPos)
			before, after := d.window.extract(oldLines, start, end)
			raw = append(raw, Diff{
				DiffID:            d.newID(),
				DiffType:          Deletion,
				OriginalCode:      oldDoc.pos.Slice(oldRange),
				OriginalStartLine: start,
				OriginalEndLine:   end,
				StartLine:         newLine,
				EndLine:           newLine,
				ContextBefore:     before,
				ContextAfter:      after,
			})
		case OpInsert:
			at := oldDoc.lineAt(oldPos)
			start, end := newDoc.span(newRange)
			before, after := d.window.extract(oldLines, at, at)
			raw = append(raw, Diff{
				DiffID:            d.newID(),
				DiffType:          Insertion,
				NewCode:           newDoc.pos.Slice(newRange),
				OriginalStartLine: at,
				OriginalEndLine:   at,
				StartLine:         start,
				EndLine:           end,
				ContextBefore:     before,
				ContextAfter:      after,
			})
		case OpReplace:
			oldStart, oldEnd := oldDoc.span(oldRange)
			newStart, newEnd := newDoc.span(newRange)
			before, after := d.window.extract(oldLines, oldStart, oldEnd)
			raw = append(raw, Diff{
				DiffID:            d.newID(),
				DiffType:          Edit,
				OriginalCode:      oldDoc.pos.Slice(oldRange),
				NewCode:           newDoc.pos.Slice(newRange),
				OriginalStartLine: oldStart,
				OriginalEndLine:   oldEnd,
				StartLine:         newStart,
				EndLine:           newEnd,
				ContextBefore:     before,
				ContextAfter:      after,
			})
		}

		oldPos = oldRange.End
		newPos = newRange.End
	}

	paired := d.pairEdits(raw)
	final := d.groupNearby(paired)

	d.logger.Debug("calculated diff",
		"old_bytes", len(oldHTML),
		"new_bytes", len(newHTML),
		"ops", len(ops),
		"raw_hunks", len(raw),
		"paired_hunks", len(paired),
		"hunks", len(final),
	)

	return final
}
