//go:build unit

package reporter

import (
	"bytes"
	"testing"

	"github.com/kevinphelps/nglint/pkg/logger"
	"github.com/kevinphelps/nglint/pkg/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func member(name string, line int) *program.Member {
	return &program.Member{
		Kind:    program.PropertyMember,
		Name:    name,
		NamePos: program.Position{File: "src/foo.component.ts", Line: line, Column: 3},
	}
}

func TestFailureReporter_Report_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := logger.NewMockLogger(ctrl)
	// No output is expected for an empty run.

	r := New(WithLogger(mockLogger))

	assert.False(t, r.Report())
	assert.False(t, r.Report())
	assert.Equal(t, 0, r.Len())
}

func TestFailureReporter_Report_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := logger.NewMockLogger(ctrl)
	mockLogger.EXPECT().Logf("%s - %s", "src/foo.component.ts:4:3", "first").Times(2)
	mockLogger.EXPECT().Logf("%s - %s", "src/foo.component.ts:9:3", "second").Times(2)

	r := New(WithLogger(mockLogger))
	r.AddFailureAtNode(member("a", 4), "first")
	r.AddFailureAtNode(member("b", 9), "second")

	assert.True(t, r.Report())
	// The outcome is stable when rendered again.
	assert.True(t, r.Report())
}

func TestFailureReporter_AddFailureAtNode_KeepsDuplicates(t *testing.T) {
	r := New(WithRule("some-rule"))
	m := member("a", 4)

	r.AddFailureAtNode(m, "same")
	r.AddFailureAtNode(m, "same")

	failures := r.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, failures[0], failures[1])
	assert.Equal(t, "some-rule", failures[0].Rule)
	assert.Equal(t, m.NamePos, failures[0].Pos)
}

func TestFailureReporter_Failures_ReturnsCopy(t *testing.T) {
	r := New()
	r.AddFailureAtNode(member("a", 1), "msg")

	failures := r.Failures()
	failures[0].Message = "changed"

	assert.Equal(t, "msg", r.Failures()[0].Message)
}

func TestFailureReporter_Merge(t *testing.T) {
	first := New(WithRule("one"))
	first.AddFailureAtNode(member("a", 1), "a")
	second := New(WithRule("two"))
	second.AddFailureAtNode(member("b", 2), "b")
	second.AddFailureAtNode(member("c", 3), "c")

	out := New()
	out.Merge(first)
	out.Merge(nil)
	out.Merge(second)

	var messages, rules []string
	for _, f := range out.Failures() {
		messages = append(messages, f.Message)
		rules = append(rules, f.Rule)
	}
	assert.Equal(t, []string{"a", "b", "c"}, messages)
	assert.Equal(t, []string{"one", "two", "two"}, rules)
}

func TestFailureReporter_Report_RuleSuffix(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLogger(logger.NewWriterLogger(&buf)), WithRule("no-unused-component-binding"))
	r.AddFailureAtNode(member("a", 4), "unused")

	assert.True(t, r.Report())
	assert.Equal(t, "src/foo.component.ts:4:3 - unused (no-unused-component-binding)\n", buf.String())
}
