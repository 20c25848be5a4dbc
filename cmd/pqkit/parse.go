package main

import (
	"fmt"
	"strconv"
	"strings"
)

// splitList splits a comma-separated argument, dropping blank fields so that
// "" is an empty list and "1,,2" is [1 2].
func splitList(arg string) []string {
	var out []string
	for _, f := range strings.Split(arg, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}

// parseInts parses every field of every argument as an int.
func parseInts(args []string) ([]int, error) {
	out := []int{}
	for _, arg := range args {
		for _, f := range splitList(arg) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("parse %q as integer: %w", f, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// parseFloats parses every field of every argument as a float64.
func parseFloats(args []string) ([]float64, error) {
	out := []float64{}
	for _, arg := range args {
		for _, f := range splitList(arg) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %q as number: %w", f, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// parseSources parses each argument as one sorted integer source.
func parseSources(args []string) ([][]int, error) {
	sources := make([][]int, 0, len(args))
	for i, arg := range args {
		src, err := parseInts([]string{arg})
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		for j := 1; j < len(src); j++ {
			if src[j] < src[j-1] {
				return nil, fmt.Errorf("source %d is not sorted: %d follows %d", i, src[j], src[j-1])
			}
		}
		sources = append(sources, src)
	}

	return sources, nil
}

// joinValues formats values separated by single spaces.
func joinValues[T any](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " ")
}
