package commands

import (
	"reflect"
	"testing"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantWord string
		wantRest string
	}{
		{name: "word and rest", input: "task add Buy milk", wantWord: "task", wantRest: "add Buy milk"},
		{name: "lowercases first token only", input: "Weather New York", wantWord: "weather", wantRest: "New York"},
		{name: "single word", input: "help", wantWord: "help", wantRest: ""},
		{name: "surrounding whitespace", input: "  calc  2 + 2  ", wantWord: "calc", wantRest: "2 + 2"},
		{name: "empty", input: "   ", wantWord: "", wantRest: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			word, rest := splitCommand(tc.input)
			if word != tc.wantWord || rest != tc.wantRest {
				t.Fatalf("splitCommand(%q) = (%q, %q), want (%q, %q)", tc.input, word, rest, tc.wantWord, tc.wantRest)
			}
		})
	}
}

func TestSplitOptions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "simple list", input: "pizza, sushi, tacos", want: []string{"pizza", "sushi", "tacos"}},
		{name: "drops empties", input: "a,,b, ,c", want: []string{"a", "b", "c"}},
		{name: "single option", input: "only", want: []string{"only"}},
		{name: "all empty", input: " , ,", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := splitOptions(tc.input); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("splitOptions(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single word", input: "sydney", want: "Sydney"},
		{name: "multi word", input: "new york", want: "New York"},
		{name: "already upper", input: "LONDON", want: "London"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := titleCase(tc.input); got != tc.want {
				t.Fatalf("titleCase(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
