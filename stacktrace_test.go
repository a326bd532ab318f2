package sentryreport

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/auguwu/sentry-report/report"
)

// newReportViaHelper adds one known frame between the test and the capture
// site so frame ordering is observable.
func newReportViaHelper() report.Report {
	return report.New("boom")
}

func TestExtractBacktrace(t *testing.T) {
	st := ExtractBacktrace(report.New("boom"))

	require.NotNil(t, st)
	require.NotEmpty(t, st.Frames)
}

func TestExtractBacktrace_NilError(t *testing.T) {
	require.Nil(t, ExtractBacktrace(nil))
}

func TestExtractBacktrace_PlainError(t *testing.T) {
	require.Nil(t, ExtractBacktrace(errors.New("boom")))
}

func TestExtractBacktrace_WalksChain(t *testing.T) {
	chain := fmt.Errorf("request failed: %w", report.New("boom"))

	require.NotNil(t, ExtractBacktrace(chain))
}

func TestExtractBacktrace_FrameOrder(t *testing.T) {
	st := ExtractBacktrace(newReportViaHelper())

	require.NotNil(t, st)

	testIdx, helperIdx := -1, -1
	for i, frame := range st.Frames {
		switch frame.Function {
		case "TestExtractBacktrace_FrameOrder":
			testIdx = i
		case "newReportViaHelper":
			helperIdx = i
		}
	}

	// Outermost call first: the test precedes the helper it called, and the
	// capture site is the innermost (last) frame.
	require.NotEqual(t, -1, testIdx)
	require.NotEqual(t, -1, helperIdx)
	require.Less(t, testIdx, helperIdx)
	require.Equal(t, "newReportViaHelper", st.Frames[len(st.Frames)-1].Function)
}

func TestExtractPkgErrors(t *testing.T) {
	st := ExtractPkgErrors(pkgerrors.New("boom"))

	require.NotNil(t, st)
	require.NotEmpty(t, st.Frames)
	require.Equal(t, "TestExtractPkgErrors", st.Frames[len(st.Frames)-1].Function)
}

func TestExtractPkgErrors_NilError(t *testing.T) {
	require.Nil(t, ExtractPkgErrors(nil))
}

func TestExtractPkgErrors_PlainError(t *testing.T) {
	require.Nil(t, ExtractPkgErrors(errors.New("boom")))
}

func TestExtractPkgErrors_WalksChain(t *testing.T) {
	chain := fmt.Errorf("request failed: %w", pkgerrors.New("boom"))

	require.NotNil(t, ExtractPkgErrors(chain))
}

func TestExtractPkgErrors_IgnoresNativeReports(t *testing.T) {
	require.Nil(t, ExtractPkgErrors(report.New("boom")))
}

func TestStacktraceFromPCs_Empty(t *testing.T) {
	require.Nil(t, stacktraceFromPCs(nil))
	require.Nil(t, stacktraceFromPCs([]uintptr{}))
}

func TestStacktraceFromPCs_Unresolvable(t *testing.T) {
	require.Nil(t, stacktraceFromPCs([]uintptr{0x1}))
}
