package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormData_ToggleParameter(t *testing.T) {
	t.Parallel()
	var f FormData

	f.ToggleParameter("pH Level")
	f.ToggleParameter("Arsenic Level")
	f.ToggleParameter("Nitrate Level")
	assert.Equal(t, []string{"pH Level", "Arsenic Level", "Nitrate Level"}, f.Parameters, "insertion order is preserved")

	// Removing from the middle keeps the order of the rest
	f.ToggleParameter("Arsenic Level")
	assert.Equal(t, []string{"pH Level", "Nitrate Level"}, f.Parameters)

	// Toggling twice restores the original set
	f.ToggleParameter("Arsenic Level")
	f.ToggleParameter("Arsenic Level")
	assert.Equal(t, []string{"pH Level", "Nitrate Level"}, f.Parameters)
}

func TestFormData_HasParameter(t *testing.T) {
	t.Parallel()
	f := FormData{Parameters: []string{"pH Level"}}

	assert.True(t, f.HasParameter("pH Level"))
	assert.False(t, f.HasParameter("Fluoride Level"))
}
