package properties

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anonkit/propview/internal/messages"
)

// ErrIncomplete is returned when a snapshot lacks the data needed for a tree.
var ErrIncomplete = errors.New("incomplete snapshot")

// Mode selects which side of an anonymization a tree describes.
type Mode int

const (
	// ModeInput describes the input dataset and its configuration.
	ModeInput Mode = iota
	// ModeOutput describes the selected transformation of a result.
	ModeOutput
)

func (m Mode) String() string {
	if m == ModeOutput {
		return "output"
	}
	return "input"
}

// ParseMode converts "input" or "output" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input", "":
		return ModeInput, nil
	case "output":
		return ModeOutput, nil
	default:
		return ModeInput, fmt.Errorf("unknown mode %q (must be input or output)", s)
	}
}

// Columns returns the column header keys of the mode, the label column first.
func (m Mode) Columns() []messages.Key {
	if m == ModeOutput {
		return []messages.Key{messages.ColumnProperty, messages.ColumnValue}
	}
	return []messages.Key{
		messages.ColumnProperty,
		messages.ColumnValue,
		messages.ColumnType,
		messages.ColumnFormat,
		messages.ColumnHeight,
		messages.ColumnMin,
		messages.ColumnMax,
	}
}

// ZeroRangePolicy decides how an information loss is shown when the loss
// range of the result has a zero upper bound.
type ZeroRangePolicy int

const (
	// ZeroRangeAsZero shows the relative loss as 0%.
	ZeroRangeAsZero ZeroRangePolicy = iota
	// ZeroRangeOmit shows only the absolute loss.
	ZeroRangeOmit
)

func (p ZeroRangePolicy) String() string {
	if p == ZeroRangeOmit {
		return "omit"
	}
	return "zero"
}

// ParseZeroRangePolicy converts "zero" or "omit" into a policy.
func ParseZeroRangePolicy(s string) (ZeroRangePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero", "":
		return ZeroRangeAsZero, nil
	case "omit":
		return ZeroRangeOmit, nil
	default:
		return ZeroRangeAsZero, fmt.Errorf("unknown zero-range policy %q (must be zero or omit)", s)
	}
}

// Options tune tree construction. The zero value is ready to use.
type Options struct {
	// Messages resolves labels. Defaults to the embedded catalog.
	Messages *messages.Catalog
	// Logger receives warnings about inconsistent snapshots. Defaults to slog.Default().
	Logger    *slog.Logger
	ZeroRange ZeroRangePolicy
}

func (o Options) withDefaults() Options {
	if o.Messages == nil {
		o.Messages = messages.Default()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

func (o Options) label(k messages.Key) string {
	return o.Messages.Get(k)
}
