package slider

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/alexisbeaulieu97/moonui/internal/logger"
	"github.com/alexisbeaulieu97/moonui/internal/ui"
	moonerrors "github.com/alexisbeaulieu97/moonui/pkg/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type recorder struct {
	calls [][]float64
}

func (r *recorder) record(values []float64) {
	r.calls = append(r.calls, values)
}

func (r *recorder) last() []float64 {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func TestTrackClickAtFiftyFourPercentEmitsFifty(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := New(WithMin(0), WithMax(100), WithStep(10), WithOnValueChange(rec.record))
	s.SetBounds(ui.Rect{X: 0, Y: 2, Width: 101, Height: 1})

	_, cmd := s.Update(press(54, 2))

	require.Len(t, rec.calls, 1)
	assert.Equal(t, []float64{50}, rec.last())
	assert.Equal(t, []float64{50}, s.Values())
	require.NotNil(t, cmd)
	assert.Equal(t, ChangeMsg{Values: []float64{50}}, cmd())
	assert.False(t, s.Capturing(), "track clicks do not start a drag")
}

func TestTrackClickMovesFirstThumbOnly(t *testing.T) {
	t.Parallel()

	s := New(WithDefaultValue(20, 80))
	s.SetBounds(ui.Rect{X: 5, Y: 0, Width: 11, Height: 1})

	s.Update(press(5+9, 0))

	assert.Equal(t, []float64{90, 80}, s.Values())
}

func TestPressOutsideTrackIsIgnored(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := New(WithOnValueChange(rec.record))
	s.SetBounds(ui.Rect{X: 5, Y: 3, Width: 11, Height: 1})

	s.Update(press(4, 3))
	s.Update(press(10, 4))
	s.Update(tea.MouseMsg{X: 10, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	assert.Empty(t, rec.calls)
}

func TestDragUpdatesOnlyTheHeldThumb(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := New(WithDefaultValue(20, 80), WithOnValueChange(rec.record))
	s.SetBounds(ui.Rect{X: 0, Y: 0, Width: 11, Height: 1})

	s.Update(press(8, 0))
	require.True(t, s.Capturing())
	thumb, ok := s.DraggedThumb()
	require.True(t, ok)
	assert.Equal(t, 1, thumb)
	assert.Empty(t, rec.calls, "grabbing a thumb does not change its value")

	s.Update(motion(5, 0))
	assert.Equal(t, []float64{20, 50}, rec.last())

	// The capture keeps routing motion even off the track row.
	s.Update(motion(30, 7))
	assert.Equal(t, []float64{20, 100}, rec.last())

	s.Update(release(30, 7))
	assert.False(t, s.Capturing())
	assert.Equal(t, []float64{20, 100}, s.Values(), "the last sampled value is kept")

	calls := len(rec.calls)
	s.Update(motion(2, 0))
	assert.Len(t, rec.calls, calls, "motion after release is ignored")
}

func TestUnmountReleasesCapture(t *testing.T) {
	t.Parallel()

	s := New(WithDefaultValue(50))
	s.SetBounds(ui.Rect{Width: 11, Height: 1})

	s.Update(press(5, 0))
	require.True(t, s.Capturing())

	s.Unmount()
	assert.False(t, s.Capturing())

	s.Update(motion(0, 0))
	assert.Equal(t, []float64{50}, s.Values())
}

func TestPressDuringCaptureStartsOver(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := New(WithDefaultValue(50), WithOnValueChange(rec.record))
	s.SetBounds(ui.Rect{Width: 11, Height: 1})

	s.Update(press(5, 0))
	require.True(t, s.Capturing())

	// The release was lost; a press off the track only drops the capture.
	s.Update(press(80, 0))
	assert.False(t, s.Capturing())
	assert.Empty(t, rec.calls)

	s.Update(press(5, 0))
	require.True(t, s.Capturing())

	// A press on the track after a lost release acts as a fresh click.
	_, cmd := s.Update(press(2, 0))
	assert.False(t, s.Capturing())
	assert.Equal(t, []float64{20}, rec.last())
	require.NotNil(t, cmd)
}

func TestDisablingMidDragReleasesCapture(t *testing.T) {
	t.Parallel()

	s := New(WithDefaultValue(50))
	s.SetBounds(ui.Rect{Width: 11, Height: 1})

	s.Update(press(5, 0))
	require.True(t, s.Capturing())

	s.SetDisabled(true)
	assert.False(t, s.Capturing())
}

func TestDisabledSliderNeverCallsBack(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := New(WithDefaultValue(20, 60), WithDisabled(true), WithOnValueChange(rec.record))
	s.SetBounds(ui.Rect{Width: 11, Height: 1})
	s.Focus()

	inputs := []tea.Msg{
		press(2, 0), motion(9, 0), release(9, 0),
		press(7, 0),
		keyPress(tea.KeyRight), keyPress(tea.KeyEnd), keyPress(tea.KeyHome),
	}
	for _, msg := range inputs {
		_, cmd := s.Update(msg)
		assert.Nil(t, cmd)
	}

	assert.Empty(t, rec.calls)
	assert.False(t, s.Capturing())
	for _, thumb := range s.Thumbs() {
		assert.Equal(t, -1, thumb.TabIndex)
	}
}

func TestControlledSliderProposesWithoutStoring(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := New(WithValue(30), WithOnValueChange(rec.record))
	s.SetBounds(ui.Rect{Width: 11, Height: 1})
	require.True(t, s.IsControlled())

	_, cmd := s.Update(press(9, 0))
	assert.Equal(t, []float64{90}, rec.last())
	assert.Equal(t, []float64{30}, s.Values(), "the parent owns the value")
	assert.Equal(t, ChangeMsg{Values: []float64{90}}, cmd())

	s.SetValue(rec.last())
	assert.Equal(t, []float64{90}, s.Values())
}

func TestUncontrolledSliderIgnoresSetValue(t *testing.T) {
	t.Parallel()

	s := New(WithDefaultValue(10))
	s.SetValue([]float64{70})
	assert.Equal(t, []float64{10}, s.Values())
}

func TestKeyboardSteps(t *testing.T) {
	t.Parallel()

	s := New(WithDefaultValue(40, 60), WithStep(5))

	_, cmd := s.Update(keyPress(tea.KeyRight))
	assert.Nil(t, cmd, "keys are ignored without focus")

	s.Focus()
	s.Update(keyPress(tea.KeyRight))
	assert.Equal(t, []float64{45, 60}, s.Values())

	s.Update(runeKey('h'))
	s.Update(runeKey('h'))
	assert.Equal(t, []float64{35, 60}, s.Values())

	s.Update(runeKey(']'))
	assert.Equal(t, 1, s.FocusedThumb())

	s.Update(keyPress(tea.KeyPgUp))
	assert.Equal(t, []float64{35, 100}, s.Values())

	s.Update(keyPress(tea.KeyHome))
	assert.Equal(t, []float64{35, 0}, s.Values())

	_, cmd = s.Update(keyPress(tea.KeyDown))
	assert.Nil(t, cmd, "stepping past min changes nothing")

	s.Update(runeKey('['))
	s.Update(keyPress(tea.KeyEnd))
	assert.Equal(t, []float64{100, 0}, s.Values())
}

func TestEmptyValuesRenderNoThumbs(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := New(WithDefaultValue(), WithTrackWidth(6), WithOnValueChange(rec.record))
	s.SetBounds(ui.Rect{Width: 6, Height: 1})

	assert.Empty(t, s.Thumbs())
	assert.Equal(t, "──────", s.View())

	s.Update(press(3, 0))
	s.Focus()
	s.Update(keyPress(tea.KeyRight))
	assert.Empty(t, rec.calls)
}

func TestThumbAccessibilityInfo(t *testing.T) {
	t.Parallel()

	single := New(WithDefaultValue(25)).Thumbs()
	require.Len(t, single, 1)
	assert.Equal(t, "slider", single[0].Role)
	assert.Empty(t, single[0].Label)
	assert.Equal(t, 0.0, single[0].ValueMin)
	assert.Equal(t, 100.0, single[0].ValueMax)
	assert.Equal(t, 25.0, single[0].ValueNow)
	assert.Equal(t, 0, single[0].TabIndex)

	multi := New(WithDefaultValue(10, 90)).Thumbs()
	require.Len(t, multi, 2)
	assert.Equal(t, "Thumb 1", multi[0].Label)
	assert.Equal(t, "Thumb 2", multi[1].Label)
}

func TestDegenerateRangeDoesNotDivideByZero(t *testing.T) {
	t.Parallel()

	s := New(WithMin(5), WithMax(5), WithDefaultValue(5))
	s.SetBounds(ui.Rect{Width: 11, Height: 1})

	assert.Equal(t, 0.0, s.Thumbs()[0].Offset)
	s.Update(press(7, 0))
	assert.Equal(t, []float64{5}, s.Values())
}

func TestInvalidOptionsAreCorrectedAndLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	s := New(WithStep(0), WithMin(10), WithMax(0), WithLogger(log))

	assert.Equal(t, 1.0, s.Step())
	assert.Equal(t, 10.0, s.Max())
	assert.True(t, strings.Contains(buf.String(), "correcting slider options"))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(0, 100, 1))

	err := Validate(0, 100, 0)
	var validationErr *moonerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "step", validationErr.Field)

	err = Validate(10, 0, 1)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "max", validationErr.Field)
}

func TestDragIsLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	s := New(WithDefaultValue(50), WithLogger(log))
	s.SetBounds(ui.Rect{Width: 11, Height: 1})
	s.Update(press(5, 0))
	s.Update(release(5, 0))

	out := buf.String()
	assert.Contains(t, out, "drag started")
	assert.Contains(t, out, "drag ended")
	assert.Contains(t, out, `"component":"slider"`)
}
