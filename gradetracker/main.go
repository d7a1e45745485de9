// Command gradetracker keeps an in-memory roster of students and their scores
// through an interactive menu.
package main

import (
	"github.com/tebeka/atexit"

	"github.com/sarchlab/gradetracker/gradetracker/cmd"
)

func main() {
	cmd.Execute()
	atexit.Exit(0)
}
