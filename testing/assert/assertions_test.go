package assert

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

type tbMock struct {
	errMsg string
}

func (tb *tbMock) Errorf(format string, args ...interface{}) {
	tb.errMsg = fmt.Sprintf(format, args...)
}

func (tb *tbMock) Fatalf(format string, args ...interface{}) {
	tb.errMsg = fmt.Sprintf(format, args...)
}

func TestAssert_Equal(t *testing.T) {
	tests := []struct {
		name        string
		expected    interface{}
		actual      interface{}
		msg         []interface{}
		expectedErr string
	}{
		{
			name:     "equal values",
			expected: 42,
			actual:   42,
		},
		{
			name:        "non-equal values",
			expected:    42,
			actual:      41,
			expectedErr: "Values are not equal, want: 42 (int), got: 41 (int)",
		},
		{
			name:        "custom error message with params",
			expected:    42,
			actual:      41,
			msg:         []interface{}{"Custom values (%d) are not equal", 7},
			expectedErr: "Custom values (7) are not equal, want: 42 (int), got: 41 (int)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := &tbMock{}
			Equal(tb, tt.expected, tt.actual, tt.msg...)
			if !strings.Contains(tb.errMsg, tt.expectedErr) {
				t.Errorf("got: %q, want: %q", tb.errMsg, tt.expectedErr)
			}
			if tt.expectedErr == "" && tb.errMsg != "" {
				t.Errorf("unexpected error: %q", tb.errMsg)
			}
		})
	}
}

func TestAssert_DeepEqual(t *testing.T) {
	tb := &tbMock{}
	DeepEqual(tb, []uint64{1, 2}, []uint64{1, 2})
	if tb.errMsg != "" {
		t.Errorf("unexpected error: %q", tb.errMsg)
	}
	DeepEqual(tb, []uint64{1, 2}, []uint64{1, 3})
	if !strings.Contains(tb.errMsg, "Values are not equal") {
		t.Errorf("got: %q", tb.errMsg)
	}
}

func TestAssert_ErrorIs(t *testing.T) {
	sentinel := errors.New("sentinel")
	tb := &tbMock{}
	ErrorIs(tb, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	if tb.errMsg != "" {
		t.Errorf("unexpected error: %q", tb.errMsg)
	}
	ErrorIs(tb, errors.New("other"), sentinel)
	if !strings.Contains(tb.errMsg, "Expected error not returned") {
		t.Errorf("got: %q", tb.errMsg)
	}
}

func TestAssert_NotNil(t *testing.T) {
	tb := &tbMock{}
	var nilSlice []uint64
	NotNil(tb, nilSlice)
	if !strings.Contains(tb.errMsg, "Unexpected nil value") {
		t.Errorf("got: %q", tb.errMsg)
	}
}

func TestAssert_LogsContain(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.WithField("prefix", "epoch").Info("Applied rewards and penalties")
	tb := &tbMock{}
	LogsContain(tb, hook, "Applied rewards")
	if tb.errMsg != "" {
		t.Errorf("unexpected error: %q", tb.errMsg)
	}
	LogsDoNotContain(tb, hook, "Applied rewards")
	if !strings.Contains(tb.errMsg, "Unexpected log found") {
		t.Errorf("got: %q", tb.errMsg)
	}
}
