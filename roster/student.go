package roster

import (
	"go.uber.org/zap/zapcore"
)

// Student is one record in a roster.
type Student struct {
	Name  string
	Score float64
}

// MarshalLogObject lets a Student be logged as a structured zap object.
func (s Student) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", s.Name)
	enc.AddFloat64("score", s.Score)
	return nil
}
