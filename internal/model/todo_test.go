package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/model"
)

func TestDraftWireFormat(t *testing.T) {
	b, err := json.Marshal(model.NewDraft(2, "Buy milk"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":2,"title":"Buy milk","completed":false}`, string(b))
}

func TestStats(t *testing.T) {
	done, pending := model.Stats([]model.Todo{
		{ID: 1, Completed: true},
		{ID: 2},
		{ID: 3},
	})
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}
