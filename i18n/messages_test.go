package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Message(t *testing.T) {
	catalog, err := New()
	require.NoError(t, err)

	assert.Equal(t, "Every 5 min", catalog.Message(Every, "5 min"))
	assert.Equal(t, "Required", catalog.Message(EmptyError))
	assert.Equal(t, "form.unknown", catalog.Message("form.unknown"))
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, "Sync frequency", Default().Message(Frequency))
}
