package playground

import (
	"github.com/alexisbeaulieu97/moonui/internal/config"
)

// ConfigMsg delivers a freshly loaded config. The playground rebuilds every
// section from it and keeps the focus and window size.
type ConfigMsg struct {
	Config *config.Config
	Source string
}

// ConfigErrorMsg reports a config that failed to load. The running
// sections are left untouched.
type ConfigErrorMsg struct {
	Source string
	Err    error
}

type copiedMsg struct {
	text string
	err  error
}
