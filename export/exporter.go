package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/acadtools/ttexport/aggregate"
	"github.com/acadtools/ttexport/converter"
	"github.com/acadtools/ttexport/model"
)

// DefaultBaseName is used when the caller does not supply one.
const DefaultBaseName = "timetable"

// Options selects the renderer and names the artifact for one export call.
type Options struct {
	Format   string         //renderer name, see converter.New
	Mode     aggregate.Mode //threaded into every builder call within the export
	BaseName string
	Out      string //output directory for file sinks, credentials for pgsql

	//Now overrides the clock, mainly for tests; nil means time.Now
	Now func() time.Time
}

// Artifact identifies one produced export.
type Artifact struct {
	ID       string
	Name     string
	Path     string
	Format   string
	Warnings []model.Warning
}

// ArtifactEmissionError wraps a renderer failure. The partially written file
// is removed before this is returned, no ambiguous half-artifacts on disk.
type ArtifactEmissionError struct {
	Path string
	Err  error
}

func (e *ArtifactEmissionError) Error() string {
	return fmt.Sprintf("emitting %s: %v", e.Path, e.Err)
}

func (e *ArtifactEmissionError) Unwrap() error {
	return e.Err
}

// Exporter is the single entry point of the pipeline: validate, aggregate
// once, render with whichever builder matches the format.
type Exporter struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{log: log}
}

// Export runs the whole pipeline to completion within this call. Fatal
// errors abort before any rendering starts; non-fatal data-quality warnings
// come back on the artifact.
func (e *Exporter) Export(s *model.Schedule, meta *model.Metadata, opts Options) (*Artifact, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	r := converter.New(opts.Format)
	if r == nil {
		return nil, fmt.Errorf("unknown export format %q", opts.Format)
	}

	if opts.Mode == "" {
		opts.Mode = aggregate.BySubject
	}

	//both aggregates come from the same schedule instance, so the
	//cross-artifact identities hold by construction; fallback warnings are
	//coordinate-keyed and mode-independent, one pass reports them all
	subjectRows, aggWarns := aggregate.Aggregate(s, aggregate.BySubject)
	classRows, _ := aggregate.Aggregate(s, aggregate.ByClass)

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	bundle := converter.Bundle{
		Schedule:       s,
		Meta:           meta,
		Mode:           opts.Mode,
		SubjectSummary: subjectRows,
		ClassSummary:   classRows,
		Generated:      now(),
	}
	bundle.Warnings = append(bundle.Warnings, s.Warnings...)
	bundle.Warnings = append(bundle.Warnings, aggWarns...)

	e.checkTotals(meta, subjectRows)

	base := opts.BaseName
	if base == "" {
		base = DefaultBaseName
	}
	name := fmt.Sprintf("%s_%s%s", base, bundle.Generated.Format("2006-01-02"), r.Ext())

	out := opts.Out
	if r.Ext() != "" {
		out = filepath.Join(opts.Out, name)
	}

	if err := r.Write(bundle, out); err != nil {
		if r.Ext() != "" {
			os.Remove(out)
		}
		return nil, &ArtifactEmissionError{Path: out, Err: err}
	}

	art := &Artifact{
		ID:       uuid.NewString(),
		Name:     name,
		Path:     out,
		Format:   opts.Format,
		Warnings: bundle.Warnings,
	}

	e.log.Info("export complete",
		zap.String("artifact", art.Name),
		zap.String("format", art.Format),
		zap.String("mode", string(opts.Mode)),
		zap.Int("sessions", aggregate.SessionCount(s)),
		zap.Int("warnings", len(art.Warnings)),
	)

	return art, nil
}

// checkTotals compares the metadata's declared credit total with the
// aggregated one. Metadata is the authoritative input, a mismatch is only
// reported.
func (e *Exporter) checkTotals(meta *model.Metadata, rows []aggregate.Row) {
	if meta == nil || meta.TotalCredits == 0 {
		return
	}
	if got := aggregate.CreditSum(rows); got != meta.TotalCredits {
		e.log.Warn("metadata credit total disagrees with grid",
			zap.Int("metadata", meta.TotalCredits),
			zap.Int("aggregated", got),
		)
	}
}
