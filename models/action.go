package models

import (
	"strings"
)

// Action is the state transition requested for an instance.
type Action string

const (
	ActionStart Action = "start"
	ActionStop  Action = "stop"
)

func (a Action) String() string {
	return string(a)
}

// ParseAction parses a case-insensitive action name, as found in
// request paths or configuration.
func ParseAction(s string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return ActionStart, true
	case "stop":
		return ActionStop, true
	}

	return "", false
}
