package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLabel(t *testing.T) {
	tests := map[string]string{
		"subject":        "Subject",
		"cameraMovement": "Camera Movement",
		"visualStyle":    "Visual Style",
		"ideaSummary":    "Idea Summary",
		"platformNote":   "Platform Note",
		"scriptBeats":    "Script Beats",
		"":               "",
	}
	for key, want := range tests {
		assert.Equal(t, want, ToLabel(key), "key %q", key)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Product launch", Capitalize("product launch"))
	assert.Equal(t, "Élan", Capitalize("élan"))
	assert.Equal(t, "TikTok", Capitalize("TikTok"))
	assert.Equal(t, "", Capitalize(""))
}
