package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_LabelsAndOrder(t *testing.T) {
	bp := Compose(sampleInterpretation())

	require.Len(t, bp.Pieces, len(slots))
	labels := make([]string, len(bp.Pieces))
	for i, p := range bp.Pieces {
		labels[i] = p.Label
	}
	assert.Equal(t, []string{"Subject", "Setting", "Camera Movement", "Lighting", "Mood", "Visual Style"}, labels)
}

func TestCompose_SlotLookups(t *testing.T) {
	in := sampleInterpretation()
	bp := Compose(in)

	lighting, ok := bp.Piece("lighting")
	require.True(t, ok)
	assert.Equal(t, lightingByMood[MoodCalm], lighting)

	camera, _ := bp.Piece("cameraMovement")
	assert.Equal(t, cameraByContentType[ContentTutorial], camera)

	setting, _ := bp.Piece("setting")
	assert.Equal(t, settingsByAudience["Developers and technical builders"], setting)

	mood, _ := bp.Piece("mood")
	assert.Equal(t, "a grounded sense of calm and clarity carried by an educational voice", mood)

	_, ok = bp.Piece("soundtrack")
	assert.False(t, ok)
}

func TestCompose_Defaults(t *testing.T) {
	in := sampleInterpretation()
	in.Audience = "Nobody in particular"
	in.ContentType = ContentExplainer
	in.Mood = MoodUplifting
	in.Platform = PlatformShortVideo
	in.Tone = ToneConfident
	bp := Compose(in)

	want := map[string]string{
		"subject":        "a charismatic host bringing rust async tokio to life",
		"setting":        defaultSetting,
		"cameraMovement": defaultCamera,
		"lighting":       defaultLighting,
		"mood":           defaultMoodCue + " carried by a confident voice",
		"visualStyle":    defaultStyle,
	}
	for key, value := range want {
		got, ok := bp.Piece(key)
		require.True(t, ok, key)
		assert.Equal(t, value, got, key)
	}
}

func TestFormatPieces(t *testing.T) {
	bp := Compose(sampleInterpretation())
	assert.Equal(t, bp.Formatted, FormatPieces(bp.Pieces))

	pieces := []Field{
		{Key: "lighting", Value: "candlelight"},
		{Key: "subject", Value: "a cat"},
	}
	assert.Equal(t, "A cinematic shot of a cat, lit by candlelight.", FormatPieces(pieces))
	assert.Equal(t, "", FormatPieces(nil))
}
