package http

import "strings"

// GetHeader scans raw line by line from the start until the first empty
// line and returns the remainder, after the first space, of the last line
// that begins with name. Every matching line is visited, so a repeated
// header yields its final value. Returns "" when nothing matches.
//
// A message without a blank line is scanned to its end instead of being
// rejected.
func GetHeader(raw, name string) string {
	var value string
	for rest := raw; rest != ""; {
		var line string
		line, rest, _ = strings.Cut(rest, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			break
		}
		if !strings.HasPrefix(line, name) {
			continue
		}
		if _, v, ok := strings.Cut(line, " "); ok {
			value = v
		}
	}
	return value
}
