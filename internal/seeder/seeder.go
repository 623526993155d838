package seeder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Rana718/saleor-seed/internal/dataset"
	"github.com/Rana718/saleor-seed/internal/saleor"
)

// Client is the slice of *saleor.Client the seeder uses.
type Client interface {
	Do(ctx context.Context, op saleor.Operation, vars map[string]any) (*saleor.Response, error)
	Authenticate(ctx context.Context, creds saleor.Credentials) (saleor.AuthMode, error)
}

type Options struct {
	Client      Client
	Data        *dataset.SeedConfig
	Credentials saleor.Credentials
	Stdout      io.Writer
	Stderr      io.Writer
}

type Seeder struct {
	client Client
	data   *dataset.SeedConfig
	creds  saleor.Credentials
	report *Reporter
	seeded *SeedContext
}

func NewSeeder(opts Options) (*Seeder, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("seeder: client is required")
	}
	if opts.Data == nil {
		return nil, fmt.Errorf("seeder: dataset is required")
	}
	return &Seeder{
		client: opts.Client,
		data:   opts.Data,
		creds:  opts.Credentials,
		report: NewReporter(opts.Stdout, opts.Stderr),
		seeded: NewSeedContext(),
	}, nil
}

// Selection is the command-line override of the dataset's enabled flags.
// A nil Only means the flag was not given; a non-nil empty Only selects
// nothing.
type Selection struct {
	Only []string
	Skip []string
}

// ResolveSections returns the sections to run, in run order. Only replaces
// the enabled flags, Skip is subtracted last, and unknown names are ignored.
func ResolveSections(cfg *dataset.SeedConfig, sel Selection) []string {
	only := toSet(sel.Only)
	skip := toSet(sel.Skip)

	active := make([]string, 0, len(registry))
	for _, sec := range registry {
		if sel.Only != nil {
			if !only[sec.Name] {
				continue
			}
		} else if !sec.enabled(cfg) {
			continue
		}
		if skip[sec.Name] {
			continue
		}
		active = append(active, sec.Name)
	}
	return active
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// MissingDependency is an active section whose prerequisite will not run.
type MissingDependency struct {
	Section    string
	Dependency string
}

func MissingDependencies(active []string) []MissingDependency {
	running := toSet(active)

	var missing []MissingDependency
	for _, name := range active {
		sec, ok := lookupSection(name)
		if !ok {
			continue
		}
		for _, dep := range sec.DependsOn {
			if !running[dep] {
				missing = append(missing, MissingDependency{Section: name, Dependency: dep})
			}
		}
	}
	return missing
}

type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusDone
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

type SectionResult struct {
	Name   string
	Status Status
	Err    error
}

// Report is the outcome of Run. Sections holds one entry per active
// section in run order; Context is the lookup table the run built.
type Report struct {
	Sections []SectionResult
	Context  *SeedContext
}

func (r *Report) Status(name string) (Status, bool) {
	for _, sec := range r.Sections {
		if sec.Name == name {
			return sec.Status, true
		}
	}
	return StatusPending, false
}

// Failed lists the sections whose guard caught an error.
func (r *Report) Failed() []string {
	var failed []string
	for _, sec := range r.Sections {
		if sec.Status == StatusFailed {
			failed = append(failed, sec.Name)
		}
	}
	return failed
}

// Run seeds every active section in order. It returns an error only when
// authentication fails or ctx is cancelled; a section that fails is logged
// and recorded in the report, and the run moves on.
func (s *Seeder) Run(ctx context.Context, sel Selection) (*Report, error) {
	s.seeded = NewSeedContext()
	report := &Report{Context: s.seeded}

	active := ResolveSections(s.data, sel)
	if len(active) == 0 {
		s.report.Info("No sections to run. Check your dataset or the --only/--skip flags.")
		return report, nil
	}

	s.report.Info("📋 Sections to run: %s", strings.Join(active, " → "))
	for _, m := range MissingDependencies(active) {
		s.report.Warn("%s depends on %s, which is not running; references to it will be skipped", m.Section, m.Dependency)
	}

	s.report.Section("Auth")
	mode, err := s.client.Authenticate(ctx, s.creds)
	if err != nil {
		return report, fmt.Errorf("authentication failed: %w", err)
	}
	s.report.Info("  Using %s", mode)

	for _, name := range active {
		report.Sections = append(report.Sections, SectionResult{Name: name, Status: StatusPending})
	}

	for i := range report.Sections {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result := &report.Sections[i]
		sec, _ := lookupSection(result.Name)

		result.Status = StatusRunning
		if err := s.runSection(ctx, sec); err != nil {
			result.Status = StatusFailed
			result.Err = err
			s.report.SectionFailed(sec.Name, err)
			continue
		}
		result.Status = StatusDone
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	s.report.Done("\n✅ Seeding complete.")
	return report, nil
}

func (s *Seeder) runSection(ctx context.Context, sec Section) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	s.report.Section(sec.Title)
	return sec.run(s, ctx)
}
