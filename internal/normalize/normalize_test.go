package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_StripsDisallowedCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "Senior Data Analyst", "Senior Data Analyst"},
		{"keeps periods hyphens plus", "C++ and Node.js full-time", "C++ and Node.js full-time"},
		{"strips punctuation", "Analyst, (Remote) @ Acme!", "Analyst Remote  Acme"},
		{"strips emoji and symbols", "Engineer 🚀 100%", "Engineer  100"},
		{"strips newlines and tabs", "line1\nline2\tline3", "line1line2line3"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"underscore kept", "snake_case", "snake_case"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.input))
		})
	}
}

func TestText_JoinsFragmentsWithSingleSpace(t *testing.T) {
	assert.Equal(t, "Data Analyst at Acme", Text("Data", "Analyst", "at", "Acme"))
	assert.Equal(t, "", Text())
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{
		"Senior Data Analyst",
		"Analyst, (Remote) @ Acme!",
		"  padded  ",
		"",
		"C++ dev. 2019-2021 +plus",
	}
	for _, in := range inputs {
		once := Text(in)
		assert.Equal(t, once, Text(once), "normalizing %q twice must be stable", in)
	}
}
