package main

import "toolindex/internal/domain"

// driftExitCode distinguishes a stale index from hard failures so CI
// can tell an authoring problem from an environment one.
const driftExitCode = 2

func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := domain.CodeFrom(err); ok && code == domain.CodeDrift {
		return driftExitCode
	}
	return 1
}
