package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/iotaledger/rbviz/ierrors"
	"github.com/iotaledger/rbviz/runtime/syncutils"
)

// NewTextHandler creates a new handler that writes human-readable log records to the given output.
func NewTextHandler(options *Options) slog.Handler {
	return &textHandler{
		output:       options.Output,
		timeFormat:   options.TimeFormat,
		formatString: "%s\t%-7s\t%s\t%s %s\n",
	}
}

// textHandler is a slog.Handler that writes human-readable log records to an output.
type textHandler struct {
	output             io.Writer
	timeFormat         string
	maxNamespaceLength int
	formatString       string
	mutex              syncutils.Mutex
}

// Enabled returns true for all levels as we handle the cutoff ourselves in the hierarchical loggers.
func (t *textHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle writes the log record to the output.
func (t *textHandler) Handle(_ context.Context, r slog.Record) error {
	var namespace string
	fieldsBuffer := new(bytes.Buffer)

	fieldCount := r.NumAttrs() - 1
	if fieldCount > 0 {
		fieldsBuffer.WriteString("(")
	}

	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == namespaceKey {
			namespace = attr.Value.String()
		} else {
			fieldsBuffer.WriteString(attr.String())
			fieldsBuffer.WriteString(" ")
		}

		return true
	})

	if fieldCount > 0 {
		fieldsBuffer.Truncate(fieldsBuffer.Len() - 1)
		fieldsBuffer.WriteString(")")
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if _, err := fmt.Fprintf(t.output, t.buildFormatString(namespace), r.Time.Format(t.timeFormat), LevelName(r.Level), namespace, r.Message, fieldsBuffer.String()); err != nil {
		return ierrors.Wrap(err, "writing log record failed")
	}

	return nil
}

// WithAttrs is not supported (we don't want to support contextual logging where we pass around loggers between code
// parts but rather have a strictly hierarchical logging based on derived namespaces).
func (t *textHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	panic("not supported")
}

// WithGroup is not supported (we don't want to support contextual logging where we pass around loggers between code
// parts but rather have a strictly hierarchical logging based on derived namespaces).
func (t *textHandler) WithGroup(_ string) slog.Handler {
	panic("not supported")
}

// buildFormatString widens the namespace column to the longest namespace seen so far. It must be called with the
// mutex held.
func (t *textHandler) buildFormatString(namespace string) string {
	if namespaceLength := len(namespace); namespaceLength > t.maxNamespaceLength {
		t.formatString = "%s\t%-7s\t%-" + strconv.Itoa(namespaceLength) + "s\t%s %s\n"
		t.maxNamespaceLength = namespaceLength
	}

	return t.formatString
}
