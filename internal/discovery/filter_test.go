package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		paths    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			paths:    []string{"UserTest.java", "PaymentTest.java", "OrderTest.java"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			paths:    []string{"UserTest.java", "PaymentTest.java", "OrderTest.java"},
			pattern:  "*UserTest.java",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			paths:    []string{"UserTest.java", "PaymentTest.java", "OrderTest.java", "PaymentServiceTest.java"},
			pattern:  "*Payment*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			paths:    []string{"UserTest.java", "PaymentTest.java", "OrderTest.java"},
			pattern:  "Payment",
			expected: 1,
		},
		{
			name:     "no matches",
			paths:    []string{"UserTest.java", "PaymentTest.java"},
			pattern:  "*NonExistent*",
			expected: 0,
		},
		{
			name:     "brackets in the pattern are literal",
			paths:    []string{"report[1].txt", "report1.txt"},
			pattern:  "report[1]*",
			expected: 1,
		},
		{
			name:     "only the file name is matched",
			paths:    []string{"user/OrderTest.java", "path/to/UserTest.java"},
			pattern:  "*User*",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.paths, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty path list", func(t *testing.T) {
		result := filter.FilterByName([]string{}, "*Test.java")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		paths := []string{"UserServiceTest.java", "UserControllerTest.java", "PaymentTest.java"}
		result := filter.FilterByName(paths, "*User*Test.java")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})
}
