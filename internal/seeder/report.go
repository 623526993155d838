package seeder

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

// Reporter writes the human-readable progress log. Successes and
// informational lines go to out, failures to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer

	header  *color.Color
	info    *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	muted   *color.Color
}

func NewReporter(out, errOut io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Reporter{
		out:     out,
		errOut:  errOut,
		header:  color.New(color.FgCyan, color.Bold),
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		muted:   color.New(color.Faint),
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth+1)
}

func (r *Reporter) Section(title string) {
	r.header.Fprintf(r.out, "\n[%s]\n", title)
}

func (r *Reporter) Info(format string, args ...any) {
	r.info.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) Warn(format string, args ...any) {
	r.warn.Fprintf(r.errOut, "⚠️  "+format+"\n", args...)
}

func (r *Reporter) Done(format string, args ...any) {
	r.success.Fprintf(r.out, format+"\n", args...)
}

// Created logs a top-level entity.
func (r *Reporter) Created(kind, name, id string) {
	r.success.Fprintf(r.out, "%s✔ %s: %q", indent(0), kind, name)
	r.muted.Fprintf(r.out, " (%s)\n", id)
}

// Nested logs a child entity or a follow-up step at the given depth.
func (r *Reporter) Nested(depth int, format string, args ...any) {
	r.success.Fprintf(r.out, "%s↳ %s\n", indent(depth), fmt.Sprintf(format, args...))
}

func (r *Reporter) Skip(kind, name, reason string) {
	r.warn.Fprintf(r.out, "%s⚠ %s: %q skipped - %s\n", indent(0), kind, name, reason)
}

func (r *Reporter) UserErrors(kind, name string, errs []saleor.Error) {
	for _, e := range errs {
		r.fail.Fprintf(r.errOut, "%s✖ %s: %q failed - %s\n", indent(0), kind, name, e.String())
	}
}

func (r *Reporter) ProtocolErrors(kind, name string, errs []saleor.GraphQLError) {
	for _, e := range errs {
		msg := e.Message
		if code := e.Code(); code != "" {
			msg += " (" + code + ")"
		}
		r.fail.Fprintf(r.errOut, "%s✖ %s: %q GraphQL error - %s\n", indent(0), kind, name, msg)
	}
}

func (r *Reporter) NetworkError(kind, name string, err *saleor.NetworkError) {
	r.fail.Fprintf(r.errOut, "%s✖ %s: %q %s\n", indent(0), kind, name, err.Error())
}

func (r *Reporter) SectionFailed(section string, err error) {
	r.fail.Fprintf(r.errOut, "\n✖ Fatal error in section %s: %v\n", section, err)
	r.warn.Fprintf(r.errOut, "  Continuing with remaining sections...\n")
}
