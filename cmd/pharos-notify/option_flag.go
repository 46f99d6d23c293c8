package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// optionFlag collects --opt values in command-line order. Words that follow
// an --opt value without a flag of their own belong to that occurrence, so
// "-o snapshot deletion -o fixity" keeps snapshot, deletion, fixity.
type optionFlag struct {
	// positional reports how many non-flag words the parser has seen so far.
	positional func() int
	entries    []optionEntry
}

type optionEntry struct {
	value      string
	wordsAhead int
}

func newOptionFlag(fs *pflag.FlagSet) *optionFlag {
	return &optionFlag{positional: func() int { return len(fs.Args()) }}
}

func (f *optionFlag) String() string {
	values := make([]string, len(f.entries))
	for i, entry := range f.entries {
		values[i] = entry.value
	}
	return strings.Join(values, ",")
}

func (f *optionFlag) Set(value string) error {
	f.entries = append(f.entries, optionEntry{value: value, wordsAhead: f.positional()})
	return nil
}

func (f *optionFlag) Type() string { return "option" }

// resolve merges the positional words into the --opt values. Words that
// appear before any --opt are rejected.
func (f *optionFlag) resolve(words []string) ([]string, error) {
	if len(words) > 0 && (len(f.entries) == 0 || f.entries[0].wordsAhead > 0) {
		end := len(words)
		if len(f.entries) > 0 {
			end = f.entries[0].wordsAhead
		}
		return nil, fmt.Errorf("unrecognized arguments: %s", strings.Join(words[:end], " "))
	}

	var out []string
	for i, entry := range f.entries {
		out = append(out, entry.value)
		end := len(words)
		if i+1 < len(f.entries) {
			end = f.entries[i+1].wordsAhead
		}
		if entry.wordsAhead < end && end <= len(words) {
			out = append(out, words[entry.wordsAhead:end]...)
		}
	}
	return out, nil
}
