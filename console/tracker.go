// Package console runs the interactive, menu-driven front end of the grade
// tracker. All output is plain text; one line of input answers one prompt.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sarchlab/gradetracker/roster"
	"github.com/sarchlab/gradetracker/score"
)

type state int

const (
	stateRunning state = iota
	stateTerminated
)

// Tracker reads menu commands and applies them to a roster.
type Tracker struct {
	roster *roster.Roster
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
	state  state
}

// Builder builds Trackers.
type Builder struct {
	in     io.Reader
	out    io.Writer
	logger *zap.Logger
	roster *roster.Roster
}

// MakeBuilder returns a Builder that reads stdin, writes stdout, logs nothing
// and starts from an empty roster.
func MakeBuilder() Builder {
	return Builder{
		in:     os.Stdin,
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
}

// WithInput sets where commands are read from.
func (b Builder) WithInput(in io.Reader) Builder {
	b.in = in
	return b
}

// WithOutput sets where menus and messages are written to.
func (b Builder) WithOutput(out io.Writer) Builder {
	b.out = out
	return b
}

// WithLogger sets the diagnostic logger.
func (b Builder) WithLogger(logger *zap.Logger) Builder {
	b.logger = logger
	return b
}

// WithRoster sets the roster to work on.
func (b Builder) WithRoster(r *roster.Roster) Builder {
	b.roster = r
	return b
}

// Build creates a Tracker.
func (b Builder) Build() *Tracker {
	r := b.roster
	if r == nil {
		r = roster.New()
	}

	return &Tracker{
		roster: r,
		in:     bufio.NewReader(b.in),
		out:    b.out,
		logger: b.logger,
	}
}

// Roster returns the roster the tracker works on.
func (t *Tracker) Roster() *roster.Roster {
	return t.roster
}

// Run shows the menu and handles commands until the exit command is given or
// the input runs out. Only a failure to read input is returned as an error.
func (t *Tracker) Run() error {
	t.logger.Info("tracker started", zap.Int("students", t.roster.Len()))

	for t.state == stateRunning {
		err := t.step()
		if errors.Is(err, io.EOF) {
			t.logger.Debug("input closed")
			t.state = stateTerminated
			break
		}

		if err != nil {
			return errors.Wrap(err, "could not read input")
		}
	}

	t.logger.Info("tracker stopped", zap.Int("students", t.roster.Len()))

	return nil
}

func (t *Tracker) step() error {
	t.print(menu)

	option, err := t.prompt(promptOption)
	if err != nil {
		return err
	}

	switch option {
	case "1":
		err = t.addStudent()
	case "2":
		err = t.editStudent()
	case "3":
		err = t.removeStudent()
	case "4":
		t.listStudents()
	case "5":
		t.showSummary()
	case "6":
		t.roster.LoadSample()
		t.println(msgSampleLoaded)
	case "0":
		t.println(msgGoodbye)
		t.state = stateTerminated
		return nil
	default:
		t.rejected("option", option, nil)
		t.println(msgInvalidOption)
	}

	if err != nil {
		return err
	}

	t.println("")

	return nil
}

func (t *Tracker) addStudent() error {
	name, err := t.prompt(promptName)
	if err != nil {
		return err
	}

	if name == "" {
		t.rejected("name", name, roster.ErrEmptyName)
		t.println(msgEmptyName)
		return nil
	}

	raw, err := t.prompt(promptScore)
	if err != nil {
		return err
	}

	result := score.Parse(raw)
	if result.Kind != score.Valid {
		t.rejected("score", raw, result.Err)
		if errors.Is(result.Err, score.ErrOutOfRange) {
			t.println(msgScoreRange)
		}
		t.println(msgInvalidScore)
		return nil
	}

	student, err := t.roster.Add(name, result.Value)
	if err != nil {
		t.rejected("student", name, err)
		t.println(msgInvalidScore)
		return nil
	}

	t.printf(msgAdded, student.Name, score.Format(student.Score))

	return nil
}

func (t *Tracker) editStudent() error {
	if t.roster.IsEmpty() {
		t.println(msgNothingToEdit)
		return nil
	}

	t.listStudents()

	i, ok, err := t.promptIndex(promptEditIndex)
	if err != nil || !ok {
		return err
	}

	current := t.roster.At(i)
	t.printf(msgEditing, current.Name, score.Format(current.Score))

	name, err := t.prompt(promptNewName)
	if err != nil {
		return err
	}

	raw, err := t.prompt(promptNewScore)
	if err != nil {
		return err
	}

	result := score.ParseOptional(raw)
	if result.Kind == score.Invalid {
		t.rejected("score", raw, result.Err)
		t.reportScoreError(result.Err)
	}

	updated, err := t.roster.Edit(i, name, result)
	if err != nil {
		t.rejected("index", fmt.Sprint(i+1), err)
		t.println(msgOutOfRange)
		return nil
	}

	t.printf(msgUpdated, updated.Name, score.Format(updated.Score))

	return nil
}

func (t *Tracker) removeStudent() error {
	if t.roster.IsEmpty() {
		t.println(msgNothingToRemove)
		return nil
	}

	t.listStudents()

	i, ok, err := t.promptIndex(promptRemoveIndex)
	if err != nil || !ok {
		return err
	}

	removed, err := t.roster.Remove(i)
	if err != nil {
		t.rejected("index", fmt.Sprint(i+1), err)
		t.println(msgOutOfRange)
		return nil
	}

	t.printf(msgRemoved, removed.Name)

	return nil
}

func (t *Tracker) listStudents() {
	if t.roster.IsEmpty() {
		t.println(msgNoStudents)
		return
	}

	t.println(listHeader)
	for i, s := range t.roster.Students() {
		t.printf(listLine, i+1, s.Name, score.Format(s.Score))
	}
}

func (t *Tracker) showSummary() {
	s, err := t.roster.Summarize()
	if err != nil {
		t.println(msgNoSummary)
		return
	}

	t.println(summaryHeader)
	t.printf(summaryCount, s.Count)
	t.printf(summaryAvg, score.Format(s.Average))
	t.printf(summaryHigh, score.Format(s.Highest), strings.Join(s.HighestNames, ", "))
	t.printf(summaryLow, score.Format(s.Lowest), strings.Join(s.LowestNames, ", "))
}

// promptIndex asks for a 1-based position. ok is false when the answer was
// rejected; the reason has already been printed.
func (t *Tracker) promptIndex(msg string) (i int, ok bool, err error) {
	raw, err := t.prompt(msg)
	if err != nil {
		return 0, false, err
	}

	i, err = roster.ParseIndex(raw, t.roster.Len())
	if err != nil {
		t.rejected("index", raw, err)
		if errors.Is(err, roster.ErrIndexOutOfRange) {
			t.println(msgOutOfRange)
		} else {
			t.println(msgNotValidNumber)
		}
		return 0, false, nil
	}

	return i, true, nil
}

func (t *Tracker) reportScoreError(err error) {
	switch {
	case errors.Is(err, score.ErrOutOfRange):
		t.println(msgScoreRange)
	case errors.Is(err, score.ErrNotANumber):
		t.println(msgNotANumber)
	}
}

// prompt writes msg and reads one trimmed line. A final line without a
// trailing newline is still returned; io.EOF comes on the next call.
func (t *Tracker) prompt(msg string) (string, error) {
	t.print(msg)

	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (t *Tracker) rejected(field, input string, reason error) {
	t.logger.Debug("rejected input",
		zap.String("field", field),
		zap.String("input", input),
		zap.Error(reason),
	)
}

func (t *Tracker) print(s string) {
	fmt.Fprint(t.out, s)
}

func (t *Tracker) println(s string) {
	fmt.Fprintln(t.out, s)
}

func (t *Tracker) printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format+"\n", args...)
}
