package csvcodec

import (
	"reflect"
	"testing"
)

func TestSplitFields(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"quoted", `"2024-01-05","income","Salary","100","Jan pay"`, []string{"2024-01-05", "income", "Salary", "100", "Jan pay"}},
		{"bare", `2024-01-05,expense,Food,12.5`, []string{"2024-01-05", "expense", "Food", "12.5"}},
		{"mixed", `"2024-01-05",expense,"Food",12.5,`, []string{"2024-01-05", "expense", "Food", "12.5", ""}},
		{"comma inside quotes", `"2024-01-05","expense","Food, Drinks","3","a, b"`, []string{"2024-01-05", "expense", "Food, Drinks", "3", "a, b"}},
		{"empty quoted", `"","income","",""`, []string{"", "income", "", ""}},
		{"empty bare", `2024-01-05,,Food,1`, []string{"2024-01-05", "", "Food", "1"}},
		{"stray quote in bare", `2024-01-05,exp"ense,Fo"od,1`, []string{"2024-01-05", "expense", "Food", "1"}},
		{"unterminated quote", `"2024-01-05,income,Gift,5`, []string{"2024-01-05", "income", "Gift", "5"}},
		{"quote not followed by comma", `"ab"cd,income`, []string{"abcd", "income"}},
		{"whitespace trimmed", ` 2024-01-05 , "income" ,Gift, 5 `, []string{"2024-01-05", "income", "Gift", "5"}},
		{"single field", `hello`, []string{"hello"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := splitFields(tc.line)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("splitFields(%q) = %q, want %q", tc.line, got, tc.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines("a\r\n\r\n  \nb\n\n")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitLines = %q, want %q", got, want)
	}
}
