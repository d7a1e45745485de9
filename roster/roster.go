// Package roster keeps the ordered list of students and computes summaries
// over it.
//
// Students are addressed by position only. A position handed out by a listing
// stays valid until the next change to the roster; callers are expected to
// list again before asking for another position.
package roster

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sarchlab/gradetracker/hooking"
	"github.com/sarchlab/gradetracker/score"
)

// HookPosStudentAdded marks when a student is appended. Detail is the new
// position.
var HookPosStudentAdded = &hooking.HookPos{Name: "student added"}

// HookPosStudentUpdated marks when a student is edited. Detail is the
// position.
var HookPosStudentUpdated = &hooking.HookPos{Name: "student updated"}

// HookPosStudentRemoved marks when a student is removed. Detail is the
// position it used to occupy.
var HookPosStudentRemoved = &hooking.HookPos{Name: "student removed"}

// HookPosRosterReset marks when the whole roster is replaced. Detail is the
// new number of students.
var HookPosRosterReset = &hooking.HookPos{Name: "roster reset"}

var (
	// ErrEmptyName is returned when a name is blank after trimming.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrIndexOutOfRange is returned for positions outside the roster.
	ErrIndexOutOfRange = errors.New("number out of range")
)

// Roster is an ordered, in-memory list of students. Duplicated names are
// allowed. A Roster is not safe for concurrent use.
type Roster struct {
	hooking.HookableBase

	students []Student
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{}
}

// Len returns the number of students.
func (r *Roster) Len() int {
	return len(r.students)
}

// IsEmpty tells whether the roster has no students.
func (r *Roster) IsEmpty() bool {
	return len(r.students) == 0
}

// At returns the student at the 0-based position i. It panics if i is out of
// range.
func (r *Roster) At(i int) Student {
	return r.students[i]
}

// Students returns a copy of all students in order.
func (r *Roster) Students() []Student {
	out := make([]Student, len(r.students))
	copy(out, r.students)

	return out
}

// Add appends a student. The name is trimmed. Nothing changes if the name is
// blank or the score is outside the allowed range.
func (r *Roster) Add(name string, s float64) (Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Student{}, ErrEmptyName
	}

	if err := score.Check(s); err != nil {
		return Student{}, err
	}

	student := Student{Name: name, Score: s}
	r.students = append(r.students, student)

	r.InvokeHook(hooking.HookCtx{
		Domain: r,
		Pos:    HookPosStudentAdded,
		Item:   student,
		Detail: len(r.students) - 1,
	})

	return student, nil
}

// Edit changes the student at the 0-based position i and returns the result.
//
// A blank name keeps the current name. The score is replaced only when s is
// Valid and in range; an Absent or Invalid s keeps the current score, and the
// name change still applies.
func (r *Roster) Edit(i int, name string, s score.Result) (Student, error) {
	if err := r.checkIndex(i); err != nil {
		return Student{}, err
	}

	student := &r.students[i]

	if name = strings.TrimSpace(name); name != "" {
		student.Name = name
	}

	if s.Kind == score.Valid && score.Check(s.Value) == nil {
		student.Score = s.Value
	}

	r.InvokeHook(hooking.HookCtx{
		Domain: r,
		Pos:    HookPosStudentUpdated,
		Item:   *student,
		Detail: i,
	})

	return *student, nil
}

// Remove deletes the student at the 0-based position i and returns it.
// Students after i move up by one.
func (r *Roster) Remove(i int) (Student, error) {
	if err := r.checkIndex(i); err != nil {
		return Student{}, err
	}

	removed := r.students[i]
	r.students = append(r.students[:i], r.students[i+1:]...)

	r.InvokeHook(hooking.HookCtx{
		Domain: r,
		Pos:    HookPosStudentRemoved,
		Item:   removed,
		Detail: i,
	})

	return removed, nil
}

// Reset drops every student and replaces them with a copy of students.
// Scores are taken as given.
func (r *Roster) Reset(students []Student) {
	r.students = make([]Student, len(students))
	copy(r.students, students)

	r.InvokeHook(hooking.HookCtx{
		Domain: r,
		Pos:    HookPosRosterReset,
		Detail: len(r.students),
	})
}

func (r *Roster) checkIndex(i int) error {
	if i < 0 || i >= len(r.students) {
		return errors.Wrapf(ErrIndexOutOfRange,
			"position %d in a roster of %d", i, len(r.students))
	}

	return nil
}
