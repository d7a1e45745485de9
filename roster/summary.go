package roster

import (
	"math"

	"github.com/pkg/errors"
)

// ErrEmptyRoster is returned when a summary is asked of an empty roster.
var ErrEmptyRoster = errors.New("no students")

// Summary holds aggregate figures over a roster.
type Summary struct {
	Count   int
	Average float64

	Highest      float64
	HighestNames []string

	Lowest      float64
	LowestNames []string
}

// Summarize computes the summary of the roster in one pass.
func (r *Roster) Summarize() (Summary, error) {
	return Summarize(r.students)
}

// Summarize computes count, average, and the highest and lowest scores
// together with every name that reaches them, in roster order. Ties are found
// with exact float equality.
func Summarize(students []Student) (Summary, error) {
	if len(students) == 0 {
		return Summary{}, ErrEmptyRoster
	}

	sum := 0.0
	s := Summary{
		Highest: math.Inf(-1),
		Lowest:  math.Inf(1),
	}

	for _, st := range students {
		sum += st.Score

		if st.Score > s.Highest {
			s.Highest = st.Score
			s.HighestNames = []string{st.Name}
		} else if st.Score == s.Highest {
			s.HighestNames = append(s.HighestNames, st.Name)
		}

		if st.Score < s.Lowest {
			s.Lowest = st.Score
			s.LowestNames = []string{st.Name}
		} else if st.Score == s.Lowest {
			s.LowestNames = append(s.LowestNames, st.Name)
		}
	}

	s.Count = len(students)
	s.Average = sum / float64(s.Count)

	return s, nil
}
