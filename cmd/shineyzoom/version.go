package main

import "fmt"

func versionString() string {
	s := version
	if commit != "" {
		s += fmt.Sprintf(" (%s", commit)
		if date != "" {
			s += " " + date
		}
		s += ")"
	}
	return s
}
