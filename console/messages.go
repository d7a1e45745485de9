package console

const menu = `=== Student Grade Tracker ===
1) Add student
2) Edit student
3) Remove student
4) View all students
5) Summary (average / highest / lowest)
6) Load sample data
0) Exit
`

// Prompts. None of them end in a newline.
const (
	promptOption      = "Choose an option: "
	promptName        = "Student name: "
	promptScore       = "Score (0-100): "
	promptNewName     = "New name (leave empty to keep): "
	promptNewScore    = "New score (leave empty to keep): "
	promptEditIndex   = "Enter student number to edit: "
	promptRemoveIndex = "Enter student number to remove: "
)

const (
	msgAdded        = "Added: %s -> %s"
	msgEditing      = "Editing %s (current score: %s)"
	msgUpdated      = "Updated: %s -> %s"
	msgRemoved      = "Removed: %s"
	msgSampleLoaded = "Sample data loaded."
	msgGoodbye      = "Goodbye!"

	msgEmptyName       = "Name cannot be empty. Cancelled."
	msgInvalidScore    = "Invalid score. Cancelled."
	msgScoreRange      = "Score must be between 0 and 100."
	msgNotANumber      = "Not a number."
	msgNotValidNumber  = "Not a valid number."
	msgOutOfRange      = "Number out of range."
	msgNothingToEdit   = "No students to edit."
	msgNothingToRemove = "No students to remove."
	msgNoStudents      = "[No students yet]"
	msgNoSummary       = "No students. Summary unavailable."
	msgInvalidOption   = "Invalid option. Try again."
)

const (
	listHeader    = "--- All students ---"
	listLine      = "%d) %s  -  %s"
	summaryHeader = "=== Summary Report ==="
	summaryCount  = "Students count: %d"
	summaryAvg    = "Average score: %s"
	summaryHigh   = "Highest score: %s  -  %s"
	summaryLow    = "Lowest  score: %s  -  %s"
)
