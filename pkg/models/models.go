package models

// DateLayout is the wire format for constraint dates.
const DateLayout = "2006-01-02"

// NoAvailableEmployee is the sentinel placed in a slot that nobody could fill.
const NoAvailableEmployee = "No Available Employee"

// DateShift is an exact (calendar date, shift name) pair used by both
// constraint kinds. Date is formatted as DateLayout.
type DateShift struct {
	Date  string `json:"date"`
	Shift string `json:"shift"`
}

// Employee describes one roster member and their hard constraints.
// It carries no assignment state; per-run counters live in the scheduler.
type Employee struct {
	Name        string      `json:"name"`
	Unavailable []DateShift `json:"unavailable,omitempty"`
	Mandatory   []DateShift `json:"mandatory,omitempty"`
}

// Schedule maps day number -> shift name -> assigned employee names.
// A slot's list holds either real names in selection order or the single
// NoAvailableEmployee sentinel.
type Schedule map[int]map[string][]string

// ScheduleRequest is the input for the scheduling endpoints.
// Shifts order is significant: it is the per-day assignment priority.
// Week, when set, selects a single 0-based row of the month grid.
type ScheduleRequest struct {
	Employees []Employee `json:"employees"`
	Shifts    []string   `json:"shifts"`
	Headcount int        `json:"headcount"`
	Year      int        `json:"year"`
	Month     int        `json:"month"`
	Week      *int       `json:"week,omitempty"`

	// OnMandatoryOverflow selects the policy for slots with more mandatory
	// employees than headcount: "truncate" (default), "allow" or "reject".
	OnMandatoryOverflow string `json:"on_mandatory_overflow,omitempty"`
}

// OverflowReport records a slot whose mandatory list exceeded headcount and
// which employees the truncate policy dropped.
type OverflowReport struct {
	Day     int      `json:"day"`
	Shift   string   `json:"shift"`
	Dropped []string `json:"dropped,omitempty"`
}

// Warning surfaces a constraint collision the engine resolved silently:
// a mandatory assignment overriding unavailability, or a mandatory
// double-booking on the same day.
type Warning struct {
	Day      int    `json:"day"`
	Shift    string `json:"shift"`
	Employee string `json:"employee"`
	Reason   string `json:"reason"`
}

// Distribution summarizes how evenly a run spread slots over the roster.
type Distribution struct {
	PerEmployee map[string]int `json:"per_employee"`
	Average     float64        `json:"average"`
	Min         int            `json:"min"`
	Max         int            `json:"max"`
	Spread      int            `json:"spread"`
}

// ScheduleResponse is the output of the scheduling endpoints.
type ScheduleResponse struct {
	Schedule     Schedule         `json:"schedule"`
	Distribution Distribution     `json:"distribution"`
	Warnings     []Warning        `json:"warnings,omitempty"`
	Overflows    []OverflowReport `json:"overflows,omitempty"`
}
