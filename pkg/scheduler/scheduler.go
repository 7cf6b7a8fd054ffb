package scheduler

import (
	"errors"
	"fmt"
	"sort"

	"github.com/arnavshah/employee-scheduler-api/pkg/models"
)

// ErrMandatoryOverflow is returned by the reject policy when a slot has more
// mandatory employees than headcount.
var ErrMandatoryOverflow = errors.New("mandatory employees exceed headcount")

// OverflowPolicy decides what happens when more employees are marked
// mandatory for a slot than the slot's headcount.
type OverflowPolicy string

const (
	// OverflowTruncate keeps the headcount least-loaded mandatory employees
	// and drops the rest. This matches the historical behavior.
	OverflowTruncate OverflowPolicy = "truncate"
	// OverflowAllow overstaffs the slot with every mandatory employee.
	OverflowAllow OverflowPolicy = "allow"
	// OverflowReject fails the run with ErrMandatoryOverflow.
	OverflowReject OverflowPolicy = "reject"
)

// ParseOverflowPolicy maps the wire value to a policy. Empty means truncate.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch OverflowPolicy(s) {
	case "", OverflowTruncate:
		return OverflowTruncate, nil
	case OverflowAllow:
		return OverflowAllow, nil
	case OverflowReject:
		return OverflowReject, nil
	}
	return "", fmt.Errorf("unknown overflow policy %q", s)
}

type slotKey struct {
	day   int
	shift string
}

// Scheduler assigns employees to dated shift slots. It honors exact
// (date, shift) mandatory and unavailability constraints and balances total
// load with a per-run fairness counter. All mutable state is owned by one
// Scheduler and reset on every Assign call, so callers may reuse a roster
// across runs; a single Scheduler is not safe for concurrent Assign calls.
type Scheduler struct {
	employees []models.Employee
	shifts    []string
	headcount int
	policy    OverflowPolicy

	// Constraint sets keyed for O(1) membership, index = roster order.
	unavailable  []map[models.DateShift]struct{}
	mandatorySet []map[models.DateShift]struct{}

	// Per-run state.
	counts   []int          // fairness counters
	busyDays []map[int]bool // days an employee already works

	// Warnings and Overflows describe collisions the last run resolved.
	Warnings  []models.Warning
	Overflows []models.OverflowReport
}

// NewScheduler builds a scheduler for one roster and shift list. Shift order
// is the per-day assignment priority; roster order breaks fairness ties.
func NewScheduler(employees []models.Employee, shifts []string, headcount int, policy OverflowPolicy) *Scheduler {
	s := &Scheduler{
		employees:    employees,
		shifts:       shifts,
		headcount:    headcount,
		policy:       policy,
		unavailable:  make([]map[models.DateShift]struct{}, len(employees)),
		mandatorySet: make([]map[models.DateShift]struct{}, len(employees)),
	}
	for i, emp := range employees {
		s.unavailable[i] = toSet(emp.Unavailable)
		s.mandatorySet[i] = toSet(emp.Mandatory)
	}
	return s
}

func toSet(pairs []models.DateShift) map[models.DateShift]struct{} {
	set := make(map[models.DateShift]struct{}, len(pairs))
	for _, p := range pairs {
		set[p] = struct{}{}
	}
	return set
}

func dateString(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Assign runs one scheduling pass over the given days of (year, month).
// Days are processed in the given order and shifts in declared order; the
// pass is greedy and deterministic, never revisiting a committed slot. A slot
// nobody can fill gets the NoAvailableEmployee sentinel instead of an error.
func (s *Scheduler) Assign(year, month int, days []int) (models.Schedule, error) {
	s.reset()

	mandatory := s.buildMandatoryIndex(year, month, days)

	schedule := make(models.Schedule, len(days))
	for _, day := range days {
		date := dateString(year, month, day)
		for _, shift := range s.shifts {
			selected, err := s.selectForSlot(day, date, shift, mandatory[slotKey{day, shift}])
			if err != nil {
				return nil, err
			}

			if schedule[day] == nil {
				schedule[day] = make(map[string][]string, len(s.shifts))
			}
			if len(selected) == 0 {
				schedule[day][shift] = []string{models.NoAvailableEmployee}
				continue
			}

			names := make([]string, len(selected))
			for i, idx := range selected {
				names[i] = s.employees[idx].Name
				s.counts[idx]++
				s.busyDays[idx][day] = true
			}
			schedule[day][shift] = names
		}
	}
	return schedule, nil
}

func (s *Scheduler) reset() {
	s.counts = make([]int, len(s.employees))
	s.busyDays = make([]map[int]bool, len(s.employees))
	for i := range s.busyDays {
		s.busyDays[i] = make(map[int]bool)
	}
	s.Warnings = nil
	s.Overflows = nil
}

// buildMandatoryIndex scans every day x shift x employee once and collects
// the mandatory employees per slot in roster order.
func (s *Scheduler) buildMandatoryIndex(year, month int, days []int) map[slotKey][]int {
	index := make(map[slotKey][]int)
	for _, day := range days {
		date := dateString(year, month, day)
		for _, shift := range s.shifts {
			for i := range s.employees {
				if _, ok := s.mandatorySet[i][models.DateShift{Date: date, Shift: shift}]; ok {
					key := slotKey{day, shift}
					index[key] = append(index[key], i)
				}
			}
		}
	}
	return index
}

// selectForSlot picks the roster indices for one slot. Mandatory employees
// are placed first and bypass both the unavailability check and the same-day
// guard; both overrides are surfaced as Warnings. Remaining spots are filled
// from available employees not yet working that day, least-loaded first.
func (s *Scheduler) selectForSlot(day int, date, shift string, mandatory []int) ([]int, error) {
	var selected []int

	if len(mandatory) >= s.headcount {
		byLoad := append([]int(nil), mandatory...)
		sort.SliceStable(byLoad, func(a, b int) bool {
			return s.counts[byLoad[a]] < s.counts[byLoad[b]]
		})

		switch {
		case len(mandatory) > s.headcount && s.policy == OverflowReject:
			return nil, fmt.Errorf("%w: %d mandatory for %d spots on day %d shift %q",
				ErrMandatoryOverflow, len(mandatory), s.headcount, day, shift)
		case len(mandatory) > s.headcount && s.policy == OverflowAllow:
			selected = byLoad
		default:
			selected = byLoad[:s.headcount]
			if dropped := byLoad[s.headcount:]; len(dropped) > 0 {
				report := models.OverflowReport{Day: day, Shift: shift}
				for _, idx := range dropped {
					report.Dropped = append(report.Dropped, s.employees[idx].Name)
				}
				s.Overflows = append(s.Overflows, report)
			}
		}
	} else {
		selected = append(selected, mandatory...)

		remaining := s.headcount - len(selected)
		if remaining > 0 {
			inSelection := make(map[int]bool, len(selected))
			for _, idx := range selected {
				inSelection[idx] = true
			}

			var pool []int
			for i := range s.employees {
				if inSelection[i] {
					continue
				}
				if _, ok := s.unavailable[i][models.DateShift{Date: date, Shift: shift}]; ok {
					continue
				}
				if s.busyDays[i][day] {
					continue
				}
				pool = append(pool, i)
			}
			sort.SliceStable(pool, func(a, b int) bool {
				return s.counts[pool[a]] < s.counts[pool[b]]
			})
			if remaining > len(pool) {
				remaining = len(pool)
			}
			selected = append(selected, pool[:remaining]...)
		}
	}

	s.warnMandatoryCollisions(day, date, shift, mandatory, selected)
	return selected, nil
}

func (s *Scheduler) warnMandatoryCollisions(day int, date, shift string, mandatory, selected []int) {
	placed := make(map[int]bool, len(selected))
	for _, idx := range selected {
		placed[idx] = true
	}
	for _, idx := range mandatory {
		if !placed[idx] {
			continue
		}
		name := s.employees[idx].Name
		if _, ok := s.unavailable[idx][models.DateShift{Date: date, Shift: shift}]; ok {
			s.Warnings = append(s.Warnings, models.Warning{
				Day: day, Shift: shift, Employee: name,
				Reason: "mandatory assignment overrides unavailability",
			})
		}
		if s.busyDays[idx][day] {
			s.Warnings = append(s.Warnings, models.Warning{
				Day: day, Shift: shift, Employee: name,
				Reason: "mandatory assignment double-books the same day",
			})
		}
	}
}

// Distribution reports per-employee totals and the spread for the last run.
func (s *Scheduler) Distribution() models.Distribution {
	dist := models.Distribution{PerEmployee: make(map[string]int, len(s.employees))}
	if len(s.employees) == 0 || s.counts == nil {
		return dist
	}

	sum := 0
	dist.Min = s.counts[0]
	for i, emp := range s.employees {
		dist.PerEmployee[emp.Name] = s.counts[i]
		sum += s.counts[i]
		if s.counts[i] < dist.Min {
			dist.Min = s.counts[i]
		}
		if s.counts[i] > dist.Max {
			dist.Max = s.counts[i]
		}
	}
	dist.Average = float64(sum) / float64(len(s.employees))
	dist.Spread = dist.Max - dist.Min
	return dist
}
