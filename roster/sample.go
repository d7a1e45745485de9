package roster

// SampleStudents returns the fixed demo dataset.
func SampleStudents() []Student {
	return []Student{
		{Name: "Alice", Score: 88.5},
		{Name: "Bob", Score: 73},
		{Name: "Carlos", Score: 95},
		{Name: "Diana", Score: 60},
		{Name: "Eva", Score: 95},
	}
}

// LoadSample replaces whatever the roster holds with the demo dataset.
func (r *Roster) LoadSample() {
	r.Reset(SampleStudents())
}
