package intcode

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Parse reads a comma-separated program. Only the first non-blank line is
// used; surrounding whitespace and a trailing comma are tolerated.
func Parse(text string) ([]int64, error) {
	var line string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}
	line = strings.TrimSuffix(line, ",")
	if line == "" {
		return nil, ErrEmptyProgram
	}

	fields := strings.Split(line, ",")
	program := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("intcode: word %d: %w", i, err)
		}
		program[i] = v
	}
	return program, nil
}

// Load reads and parses a program file.
func Load(path string) ([]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	program, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return program, nil
}

// Format renders a program in the comma-separated text form.
func Format(program []int64) string {
	parts := make([]string, len(program))
	for i, v := range program {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}
