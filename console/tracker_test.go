package console

import (
	"bytes"
	"strings"
	"testing/iotest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sarchlab/gradetracker/roster"
)

const choose = menu + promptOption

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

var _ = Describe("Tracker", func() {
	var (
		r   *roster.Roster
		out *bytes.Buffer
	)

	run := func(input string) string {
		tracker := MakeBuilder().
			WithInput(strings.NewReader(input)).
			WithOutput(out).
			WithRoster(r).
			Build()

		Expect(tracker.Run()).To(Succeed())

		return out.String()
	}

	BeforeEach(func() {
		r = roster.New()
		out = new(bytes.Buffer)
	})

	It("should say goodbye on exit", func() {
		Expect(run("0\n")).To(Equal(choose + "Goodbye!\n"))
	})

	It("should accept a padded command", func() {
		Expect(run("  0 \n")).To(Equal(choose + "Goodbye!\n"))
	})

	It("should reject unknown options", func() {
		Expect(run("7\n\n0\n")).To(Equal(
			choose + lines("Invalid option. Try again.", "") +
				choose + lines("Invalid option. Try again.", "") +
				choose + "Goodbye!\n"))
	})

	It("should stop quietly when the input ends", func() {
		Expect(run("4\n")).To(Equal(
			choose + lines("[No students yet]", "") + choose))
	})

	It("should use a final line without a newline", func() {
		Expect(run("0")).To(Equal(choose + "Goodbye!\n"))
	})

	It("should fail when the input cannot be read", func() {
		tracker := MakeBuilder().
			WithInput(iotest.ErrReader(errors.New("broken pipe"))).
			WithOutput(out).
			Build()

		err := tracker.Run()

		Expect(err).To(MatchError(ContainSubstring("could not read input")))
		Expect(err).To(MatchError(ContainSubstring("broken pipe")))
	})

	It("should start from an empty roster by default", func() {
		tracker := MakeBuilder().
			WithInput(strings.NewReader("")).
			WithOutput(out).
			Build()

		Expect(tracker.Roster().IsEmpty()).To(BeTrue())
	})

	Context("adding", func() {
		It("should add a student", func() {
			Expect(run("1\nAlice\n88.5\n0\n")).To(Equal(
				choose + promptName + promptScore +
					lines("Added: Alice -> 88.50", "") +
					choose + "Goodbye!\n"))

			Expect(r.Students()).To(Equal([]roster.Student{{Name: "Alice", Score: 88.5}}))
		})

		It("should print whole scores without decimals", func() {
			run("1\n  Bob  \n73.0\n0\n")

			Expect(out.String()).To(ContainSubstring("Added: Bob -> 73\n"))
			Expect(r.At(0)).To(Equal(roster.Student{Name: "Bob", Score: 73}))
		})

		It("should cancel on an empty name without asking for a score", func() {
			Expect(run("1\n   \n0\n")).To(Equal(
				choose + promptName +
					lines("Name cannot be empty. Cancelled.", "") +
					choose + "Goodbye!\n"))

			Expect(r.IsEmpty()).To(BeTrue())
		})

		It("should explain an out-of-range score", func() {
			Expect(run("1\nAlice\n-1\n0\n")).To(Equal(
				choose + promptName + promptScore +
					lines("Score must be between 0 and 100.", "Invalid score. Cancelled.", "") +
					choose + "Goodbye!\n"))

			Expect(r.IsEmpty()).To(BeTrue())
		})

		It("should cancel on a score just above the range", func() {
			run("1\nAlice\n100.0001\n0\n")

			Expect(out.String()).To(ContainSubstring("Invalid score. Cancelled.\n"))
			Expect(r.IsEmpty()).To(BeTrue())
		})

		It("should cancel on a non-numeric score", func() {
			Expect(run("1\nAlice\nabc\n0\n")).To(Equal(
				choose + promptName + promptScore +
					lines("Invalid score. Cancelled.", "") +
					choose + "Goodbye!\n"))

			Expect(r.IsEmpty()).To(BeTrue())
		})
	})

	Context("listing", func() {
		It("should list every student in order", func() {
			r.LoadSample()

			Expect(run("4\n0\n")).To(Equal(
				choose + lines(
					"--- All students ---",
					"1) Alice  -  88.50",
					"2) Bob  -  73",
					"3) Carlos  -  95",
					"4) Diana  -  60",
					"5) Eva  -  95",
					"",
				) + choose + "Goodbye!\n"))
		})
	})

	Context("loading the sample", func() {
		It("should replace the roster", func() {
			_, err := r.Add("Someone", 12)
			Expect(err).NotTo(HaveOccurred())

			Expect(run("6\n0\n")).To(Equal(
				choose + lines("Sample data loaded.", "") +
					choose + "Goodbye!\n"))

			Expect(r.Students()).To(Equal(roster.SampleStudents()))
		})
	})

	Context("summarizing", func() {
		It("should report an empty roster", func() {
			Expect(run("5\n0\n")).To(Equal(
				choose + lines("No students. Summary unavailable.", "") +
					choose + "Goodbye!\n"))
		})

		It("should summarize the sample data", func() {
			Expect(run("6\n5\n0\n")).To(Equal(
				choose + lines("Sample data loaded.", "") +
					choose + lines(
					"=== Summary Report ===",
					"Students count: 5",
					"Average score: 82.30",
					"Highest score: 95  -  Carlos, Eva",
					"Lowest  score: 60  -  Diana",
					"",
				) + choose + "Goodbye!\n"))
		})
	})

	Context("editing", func() {
		const sampleListing = "--- All students ---\n" +
			"1) Alice  -  88.50\n" +
			"2) Bob  -  73\n" +
			"3) Carlos  -  95\n" +
			"4) Diana  -  60\n" +
			"5) Eva  -  95\n"

		BeforeEach(func() {
			r.LoadSample()
		})

		It("should refuse on an empty roster", func() {
			r.Reset(nil)

			Expect(run("2\n0\n")).To(Equal(
				choose + lines("No students to edit.", "") +
					choose + "Goodbye!\n"))
		})

		It("should update name and score", func() {
			Expect(run("2\n2\nRobert\n77.75\n0\n")).To(Equal(
				choose + sampleListing + promptEditIndex +
					lines("Editing Bob (current score: 73)") +
					promptNewName + promptNewScore +
					lines("Updated: Robert -> 77.75", "") +
					choose + "Goodbye!\n"))

			Expect(r.At(1)).To(Equal(roster.Student{Name: "Robert", Score: 77.75}))
		})

		It("should keep everything when both answers are empty", func() {
			before := r.Students()

			run("2\n1\n\n\n0\n")

			Expect(out.String()).To(ContainSubstring("Updated: Alice -> 88.50\n"))
			Expect(r.Students()).To(Equal(before))
		})

		It("should apply the name and keep the score when the score is out of range", func() {
			Expect(run("2\n3\nCarl\n150\n0\n")).To(Equal(
				choose + sampleListing + promptEditIndex +
					lines("Editing Carlos (current score: 95)") +
					promptNewName + promptNewScore +
					lines("Score must be between 0 and 100.", "Updated: Carl -> 95", "") +
					choose + "Goodbye!\n"))

			Expect(r.At(2)).To(Equal(roster.Student{Name: "Carl", Score: 95}))
		})

		It("should say when the new score is not a number", func() {
			run("2\n4\n\nsixty\n0\n")

			Expect(out.String()).To(ContainSubstring("Not a number.\nUpdated: Diana -> 60\n"))
			Expect(r.At(3)).To(Equal(roster.Student{Name: "Diana", Score: 60}))
		})

		It("should reject a position out of range", func() {
			before := r.Students()

			Expect(run("2\n9\n0\n")).To(Equal(
				choose + sampleListing + promptEditIndex +
					lines("Number out of range.", "") +
					choose + "Goodbye!\n"))

			Expect(r.Students()).To(Equal(before))
		})

		It("should reject a position that is not a number", func() {
			run("2\nfirst\n0\n")

			Expect(out.String()).To(ContainSubstring(promptEditIndex + "Not a valid number.\n"))
		})
	})

	Context("removing", func() {
		It("should refuse on an empty roster", func() {
			Expect(run("3\n0\n")).To(Equal(
				choose + lines("No students to remove.", "") +
					choose + "Goodbye!\n"))
		})

		It("should remove the chosen student", func() {
			r.LoadSample()

			run("3\n1\n0\n")

			Expect(out.String()).To(ContainSubstring(promptRemoveIndex + "Removed: Alice\n\n"))
			Expect(r.Len()).To(Equal(4))
			Expect(r.At(0).Name).To(Equal("Bob"))
		})

		It("should keep the roster on a bad position", func() {
			r.LoadSample()

			run("3\n0\n3\n-2\n0\n")

			Expect(out.String()).To(ContainSubstring(promptRemoveIndex + "Number out of range.\n"))
			Expect(r.Len()).To(Equal(5))
		})
	})

	It("should log rejected input at debug level", func() {
		core, logs := observer.New(zapcore.DebugLevel)
		tracker := MakeBuilder().
			WithInput(strings.NewReader("1\nAlice\n300\n0\n")).
			WithOutput(out).
			WithLogger(zap.New(core)).
			Build()

		Expect(tracker.Run()).To(Succeed())

		rejected := logs.FilterMessage("rejected input").All()
		Expect(rejected).To(HaveLen(1))
		Expect(rejected[0].ContextMap()).To(HaveKeyWithValue("field", "score"))
		Expect(rejected[0].ContextMap()).To(HaveKeyWithValue("input", "300"))
		Expect(logs.FilterMessage("tracker stopped").Len()).To(Equal(1))
	})
})
