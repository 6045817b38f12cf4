package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
)

func TestShowcaseCommand(t *testing.T) {
	out, err := execute(t, "showcase", "--width", "72", "--theme", "dark")
	require.NoError(t, err)

	for _, want := range []string{"MoonUI", "Buttons", "Secondary", "Sliders", "Calendar", "Pick a date", "Outside days", "Release"} {
		assert.Contains(t, out, want)
	}
}

func TestShowcaseRejectsUnknownTheme(t *testing.T) {
	_, err := execute(t, "showcase", "--theme", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sepia")
}

func TestRenderShowcaseMarksToday(t *testing.T) {
	today := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.Local)
	ctx := components.DefaultContext()
	ctx.ParentWidth = 80

	out := renderShowcase(ctx, today)

	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "March 14th, 2024")
}
