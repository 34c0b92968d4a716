package config

import "github.com/acadtools/ttexport/aggregate"

// View labels for the -mode flag
const (
	ModeStudent = "student"
	ModeTeacher = "teacher"
)

// ExportConfig carries everything one export run needs: which source to pull
// the schedule from, which renderer to feed it to, and the filters applied at
// the source layer.
type ExportConfig struct {
	SubjectMatcher Matcher
	DayMatcher     Matcher

	Format   string //xlsx, pdf, json, pjson, pgsql
	Mode     string //student or teacher view
	BaseName string
	Out      string //output directory, or credentials for the pgsql sink
	Input    string //schedule document path for the json source
	Seed     int64  //demo source seed
}

// GroupingMode maps the view to the aggregation key: learners get a
// per-subject summary, instructors a per-class one.
func (cfg *ExportConfig) GroupingMode() aggregate.Mode {
	if cfg.Mode == ModeTeacher {
		return aggregate.ByClass
	}
	return aggregate.BySubject
}
