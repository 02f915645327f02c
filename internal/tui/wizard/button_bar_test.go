package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonBar_FocusSkipsDisabled(t *testing.T) {
	t.Parallel()
	bar := NewButtonBar([]Button{
		{Label: "Back", State: ButtonDisabled},
		{Label: "Next", State: ButtonNormal},
	})

	require.True(t, bar.FocusFirst())
	assert.Equal(t, ButtonID(1), bar.FocusedButton(), "first enabled button should be focused")

	assert.False(t, bar.FocusNext(), "no enabled button past the end")
	assert.False(t, bar.FocusPrev(), "disabled button should never receive focus")
	assert.Equal(t, ButtonID(1), bar.FocusedButton())
}

func TestButtonBar_FocusCycling(t *testing.T) {
	t.Parallel()
	bar := NewButtonBar([]Button{
		{Label: "A", State: ButtonNormal},
		{Label: "B", State: ButtonNormal},
		{Label: "C", State: ButtonNormal},
	})

	require.True(t, bar.FocusFirst())
	assert.Equal(t, ButtonID(0), bar.FocusedButton())

	require.True(t, bar.FocusNext())
	require.True(t, bar.FocusNext())
	assert.Equal(t, ButtonID(2), bar.FocusedButton())
	assert.False(t, bar.FocusNext(), "caller decides wrapping at the ends")

	require.True(t, bar.FocusPrev())
	assert.Equal(t, ButtonID(1), bar.FocusedButton())

	require.True(t, bar.FocusLast())
	assert.Equal(t, ButtonID(2), bar.FocusedButton())
}

func TestButtonBar_AllDisabled(t *testing.T) {
	t.Parallel()
	bar := NewButtonBar([]Button{
		{Label: "A", State: ButtonDisabled},
		{Label: "B", State: ButtonDisabled},
	})

	assert.False(t, bar.FocusFirst())
	assert.Equal(t, ButtonNone, bar.FocusedButton())
	assert.False(t, bar.FocusLast())
	assert.Equal(t, ButtonNone, bar.FocusedButton())
}

func TestButtonBar_DisablingFocusedButtonMovesFocus(t *testing.T) {
	t.Parallel()
	bar := NewButtonBar([]Button{
		{Label: "Back", State: ButtonNormal},
		{Label: "Generate", State: ButtonNormal},
	})

	require.True(t, bar.FocusFirst())
	bar.SetState(0, ButtonDisabled)
	assert.Equal(t, ButtonID(1), bar.FocusedButton(), "focus should move off a newly disabled button")

	bar.SetState(1, ButtonDisabled)
	assert.Equal(t, ButtonNone, bar.FocusedButton())
}

func TestButtonBar_Blur(t *testing.T) {
	t.Parallel()
	bar := NewButtonBar([]Button{{Label: "A", State: ButtonNormal}})

	bar.FocusFirst()
	bar.Blur()
	assert.Equal(t, ButtonNone, bar.FocusedButton())
}
