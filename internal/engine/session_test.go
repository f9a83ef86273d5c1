package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/daryltucker/gpa-tracker/internal/config"
	"github.com/daryltucker/gpa-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *memFS) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Prompt = ""
	fsys := newMemFS()
	return NewSession(cfg, fsys), fsys
}

// feed runs each line through Handle and returns everything written.
func feed(s *Session, lines ...string) string {
	var out bytes.Buffer
	for _, l := range lines {
		s.Handle(&out, l)
	}
	return out.String()
}

func TestSession_GPAScenario(t *testing.T) {
	s, _ := newTestSession(t)
	out := feed(s, "add 90 3", "add 80 2", "gpa")
	assert.Equal(t, "86.00\n", out)
	assert.Equal(t, 86.0, s.Results().GPA())
}

func TestSession_ImportShowScenario(t *testing.T) {
	s, fsys := newTestSession(t)
	fsys.files["grades.txt"] = []byte("70 4\n90 2\n")

	out := feed(s, "import grades.txt", "show", "gpa")
	assert.Equal(t, "  [0] 70 4\n  [1] 90 2\n76.67\n", out)
}

func TestSession_RemoveOutOfBounds(t *testing.T) {
	s, _ := newTestSession(t)
	feed(s, "add 70 4", "add 90 2")
	before := s.Results().Results()

	out := feed(s, "remove 5")
	assert.Equal(t, "Error: cannot remove result, index 5 is out of bounds (have 2)\n", out)
	assert.Equal(t, before, s.Results().Results())
	assert.Equal(t, Running, s.State())
}

func TestSession_Remove(t *testing.T) {
	s, _ := newTestSession(t)
	out := feed(s, "add 70 4", "add 90 2", "remove 0", "show", "gpa")
	assert.Equal(t, "  [0] 90 2\n90.00\n", out)
}

func TestSession_UnknownCommandRecordedInHistory(t *testing.T) {
	s, _ := newTestSession(t)
	out := feed(s, "foo bar")
	assert.Equal(t, "Error: unknown command: foo bar\n", out)
	assert.Equal(t, []string{"foo bar"}, s.History())
	assert.Zero(t, s.Results().Len())
}

func TestSession_ParseErrorsDoNotMutate(t *testing.T) {
	s, _ := newTestSession(t)
	feed(s, "add 90 3")

	out := feed(s, "add 90", "add x 3", "")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "Error: "), l)
	}
	assert.Equal(t, 1, s.Results().Len())
	assert.Equal(t, []string{"add 90 3", "add 90", "add x 3", ""}, s.History())
}

func TestSession_History(t *testing.T) {
	s, _ := newTestSession(t)
	out := feed(s, "  add 90 3  ", "oops", "h")
	assert.Equal(t, "Error: unknown command: oops\nadd 90 3\noops\nh\n", out)
}

func TestSession_HistoryLimit(t *testing.T) {
	s, _ := newTestSession(t)
	s.Config.HistoryLimit = 2
	feed(s, "add 1 1", "add 2 2", "gpa")
	assert.Equal(t, []string{"add 2 2", "gpa"}, s.History())
}

func TestSession_Drop(t *testing.T) {
	s, _ := newTestSession(t)
	out := feed(s, "add 90 3", "add 80 2", "drop", "gpa", "show")
	assert.Equal(t, "0.00\n", out)
	assert.Zero(t, s.Results().Len())
	assert.Zero(t, s.Results().TotalCredits())
}

func TestSession_Expect(t *testing.T) {
	s, _ := newTestSession(t)
	out := feed(s, "add 3 5", "expect 4.0 3")
	assert.Equal(t, "6\n", out)
	assert.Equal(t, 1, s.Results().Len())
}

func TestSession_ExpectZeroCredit(t *testing.T) {
	s, _ := newTestSession(t)
	out := feed(s, "add 3 5", "expect 4.0 0")
	assert.Equal(t, "Error: invalid credit: must be greater than zero\n", out)
}

func TestSession_SaveAndImport(t *testing.T) {
	s, fsys := newTestSession(t)
	out := feed(s, "add 70 4", "add 90 2", "save out.txt", "drop", "import out.txt", "show")
	assert.Equal(t, "  [0] 70 4\n  [1] 90 2\n", out)
	assert.Equal(t, "70 4\n90 2\n", string(fsys.files["out.txt"]))
}

func TestSession_SaveFailureKeepsState(t *testing.T) {
	s, fsys := newTestSession(t)
	fsys.createErr = errors.New("permission denied")

	out := feed(s, "add 70 4", "save /root/out.txt")
	assert.Equal(t, "Error: could not write file /root/out.txt: permission denied\n", out)
	assert.Equal(t, 1, s.Results().Len())
}

func TestSession_ImportFailureKeepsState(t *testing.T) {
	s, fsys := newTestSession(t)
	fsys.files["bad.txt"] = []byte("70 4\nnot a result\n")
	feed(s, "add 90 3")

	out := feed(s, "import missing.txt")
	assert.True(t, strings.HasPrefix(out, "Error: could not read file missing.txt"), out)

	out = feed(s, "import bad.txt")
	assert.True(t, strings.HasPrefix(out, "Error: could not import bad.txt: line 2"), out)

	assert.Equal(t, []model.SubjectResult{model.New(90, 3)}, s.Results().Results())
}

func TestSession_Quit(t *testing.T) {
	s, _ := newTestSession(t)
	var out bytes.Buffer

	assert.True(t, s.Handle(&out, "add 90 3"))
	assert.False(t, s.Handle(&out, "quit"))
	assert.Equal(t, Terminated, s.State())
	assert.Equal(t, []string{"add 90 3", "quit"}, s.History())

	// lines after termination are ignored
	assert.False(t, s.Handle(&out, "add 1 1"))
	assert.Equal(t, 1, s.Results().Len())
	assert.Empty(t, out.String())
}

func TestSession_Run(t *testing.T) {
	s, _ := newTestSession(t)
	s.Config.Prompt = "> "

	in := strings.NewReader("add 90 3\nadd 80 2\ngpa\nq\nadd 1 1\n")
	var out bytes.Buffer
	require.NoError(t, s.Run(in, &out))

	assert.Equal(t, "> > > 86.00\n> ", out.String())
	assert.Equal(t, Terminated, s.State())
	assert.Equal(t, 2, s.Results().Len())
}

func TestSession_RunStopsAtEOF(t *testing.T) {
	s, _ := newTestSession(t)
	var out bytes.Buffer
	require.NoError(t, s.Run(strings.NewReader("add 90 3\ngpa"), &out))

	assert.Equal(t, "90.00\n", out.String())
	assert.Equal(t, Terminated, s.State())
}

func TestSession_RunSurvivesLongLine(t *testing.T) {
	s, _ := newTestSession(t)
	long := "import " + strings.Repeat("a", 70000)
	in := strings.NewReader("add 90 3\n" + long + "\ngpa\nq\n")

	var out bytes.Buffer
	require.NoError(t, s.Run(in, &out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Error: could not read file aaa"), lines[0][:40])
	assert.Equal(t, "90.00", lines[1])
	assert.Equal(t, Terminated, s.State())
	assert.Equal(t, []string{"add 90 3", long, "gpa", "q"}, s.History())
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestSession_RunReturnsReadError(t *testing.T) {
	s, _ := newTestSession(t)
	err := s.Run(brokenReader{}, &bytes.Buffer{})
	assert.EqualError(t, err, "tty gone")
	assert.Equal(t, Terminated, s.State())
}

func TestSession_RemoveLargeIndex(t *testing.T) {
	s, _ := newTestSession(t)
	out := feed(s, "add 70 4", "add 90 2", "remove 4294967296")
	assert.Equal(t, "Error: cannot remove result, index 4294967296 is out of bounds (have 2)\n", out)
	assert.Equal(t, 2, s.Results().Len())
}

func TestSession_Load(t *testing.T) {
	s, fsys := newTestSession(t)
	fsys.files["g.txt"] = []byte("70 4\n")
	require.NoError(t, s.Load("g.txt"))
	assert.Equal(t, 70.0, s.Results().GPA())

	err := s.Load("nope.txt")
	var re *ReadError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "nope.txt", re.Source)
}

func TestSession_IDsAreUnique(t *testing.T) {
	a, _ := newTestSession(t)
	b, _ := newTestSession(t)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestFormatGPA(t *testing.T) {
	assert.Equal(t, "86.00", FormatGPA(86, 2))
	assert.Equal(t, "86", FormatGPA(86, -1))
	assert.Equal(t, "76.667", FormatGPA(460.0/6.0, 3))
}
