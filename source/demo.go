package source

import (
	"math/rand"

	"github.com/acadtools/ttexport/config"
	"github.com/acadtools/ttexport/model"
	"github.com/acadtools/ttexport/utils"
)

// Demo generates a reproducible fixture schedule from an explicit seed. The
// same seed always yields the same grid, so exports built on it can be
// compared run to run.
type Demo struct {
	config config.ExportConfig
}

func NewDemo(cfg config.ExportConfig) *Demo {
	return &Demo{config: cfg}
}

func (d *Demo) Name() string {
	return "demo"
}

var demoDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var demoSlots = []string{
	"09:00-10:00", "10:00-11:00", "11:00-12:00",
	"12:00-13:00", //lunch
	"13:00-14:00", "14:00-15:00", "15:00-16:00", "16:00-17:00", "17:00-18:00",
}

const demoLunchSlot = "12:00-13:00"

type demoSubject struct {
	name       string
	code       string
	room       string
	building   string
	instructor string
	group      string
	kind       string
	credits    int
	topics     []string
}

var demoSubjects = []demoSubject{
	{"Data Structures", "CS201", "R-204", "Turing Block", "Dr. A. Rao", "CS-3A", "lecture", 4, []string{"AVL trees", "Hashing"}},
	{"Operating Systems", "CS305", "R-310", "Turing Block", "Prof. N. Iyer", "CS-3A", "lecture", 4, []string{"Scheduling", "Paging"}},
	{"Database Systems", "CS310", "Lab-2", "Hopper Block", "Dr. S. Menon", "CS-3B", "lab", 3, []string{"Normalization"}},
	{"Discrete Mathematics", "MA210", "R-101", "Noether Block", "Dr. P. Ghosh", "CS-3A", "tutorial", 3, []string{"Graph theory"}},
	{"Computer Networks", "CS320", "R-215", "Turing Block", "Prof. V. Kulkarni", "CS-3B", "lecture", 4, []string{"TCP", "Routing"}},
	{"Software Engineering", "CS330", "R-402", "Hopper Block", "Dr. L. Fernandes", "CS-3A", "seminar", 3, nil},
	{"Linear Algebra", "MA220", "R-105", "Noether Block", "Prof. K. Das", "CS-3B", "lecture", 3, []string{"Eigenvalues"}},
	{"Technical Writing", "HU110", "R-009", "Main Block", "Ms. R. Thomas", "CS-3A", "tutorial", 2, nil},
}

// Load builds the demo grid: every non-lunch slot holds a session drawn from
// the seeded sequence, the lunch column is left absent so classification
// resolves it through the schedule's midday convention, and Friday's last
// slot carries a special event.
func (d *Demo) Load() (*model.Schedule, *model.Metadata, error) {
	rng := rand.New(rand.NewSource(d.config.Seed))

	days := make([]string, 0, len(demoDays))
	for _, day := range demoDays {
		if d.config.DayMatcher.Match(day) {
			days = append(days, day)
		}
	}

	grid := make(map[string]map[string]*model.RawCell, len(days))
	used := make(map[string]demoSubject)

	lastDay := ""
	if len(days) > 0 {
		lastDay = days[len(days)-1]
	}
	lastSlot := demoSlots[len(demoSlots)-1]

	for _, day := range days {
		grid[day] = make(map[string]*model.RawCell, len(demoSlots))
		for _, slot := range demoSlots {
			if slot == demoLunchSlot {
				continue //absent on purpose, the lunch convention fills it
			}

			//keep the sequence position stable even for cells that end up
			//replaced below, so filters do not reshuffle the rest of the week
			sub := demoSubjects[rng.Intn(len(demoSubjects))]

			if day == lastDay && slot == lastSlot {
				grid[day][slot] = &model.RawCell{
					IsSpecialEvent: true,
					Label:          "Guest Lecture",
					Coordinator:    "Dean of Engineering",
				}
				continue
			}

			if !d.config.SubjectMatcher.Match(sub.name) {
				grid[day][slot] = &model.RawCell{IsFreePeriod: true}
				continue
			}

			used[sub.code] = sub
			grid[day][slot] = &model.RawCell{
				Subject:  sub.name,
				Code:     sub.code,
				Room:     sub.room,
				Building: sub.building,
				Party:    d.party(sub),
				Type:     sub.kind,
				Duration: utils.SlotMinutes(slot),
				Credits:  sub.credits,
				Topics:   sub.topics,
			}
		}
	}

	s, err := model.NewSchedule(days, demoSlots, demoLunchSlot, grid)
	if err != nil {
		return nil, nil, err
	}

	return s, d.metadata(used), nil
}

func (d *Demo) party(sub demoSubject) string {
	if d.config.Mode == config.ModeTeacher {
		return sub.group
	}
	return sub.instructor
}

func (d *Demo) metadata(used map[string]demoSubject) *model.Metadata {
	credits := 0
	for _, sub := range used {
		credits += sub.credits
	}

	return &model.Metadata{
		Institution:   "Hillgrove Institute of Technology",
		Department:    "Computer Science & Engineering",
		Program:       "B.Tech CSE",
		Term:          "2026-27 Odd",
		Semester:      "V",
		ClassGroup:    "CS-3A",
		Advisor:       "Dr. A. Rao",
		TotalSubjects: len(used),
		TotalCredits:  credits,
		WeeklyHours:   40,
		TermStart:     "2026-07-20",
		TermEnd:       "2026-11-27",
		ExamStart:     "2026-12-07",
		ContactEmail:  "office.cse@hillgrove.edu",
	}
}
