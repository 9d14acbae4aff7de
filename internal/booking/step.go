// Package booking implements the ticket purchase wizard: a linear sequence
// of selection steps where choosing a value at one step clears everything
// chosen after it.
package booking

// Step names a position in the wizard.
type Step string

const (
	StepSelectMovie      Step = "selectMovie"
	StepSelectDate       Step = "selectDate"
	StepSelectCinema     Step = "selectCinema"
	StepSelectScreenType Step = "selectScreenType"
	StepSelectSchedule   Step = "selectSchedule"
	StepSelectSeat       Step = "selectSeat"
	StepSelectFnb        Step = "selectFnb"
	StepReview           Step = "review"
	StepPayment          Step = "payment"
)

// Steps is the canonical wizard order.
var Steps = []Step{
	StepSelectMovie,
	StepSelectDate,
	StepSelectCinema,
	StepSelectScreenType,
	StepSelectSchedule,
	StepSelectSeat,
	StepSelectFnb,
	StepReview,
	StepPayment,
}

func (s Step) index() int {
	for i, v := range Steps {
		if v == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of Steps.
func (s Step) Valid() bool { return s.index() >= 0 }
