package edge

import (
	"strings"
	"testing"

	"voiceover-app/internal/domain/tts"
)

func TestBuildSSMLPlain(t *testing.T) {
	got := buildSSML(tts.Request{Text: "hello world", Voice: "en-US-GuyNeural"})

	if strings.Contains(got, "<prosody") {
		t.Errorf("zero rate and pitch must not produce prosody markup, got %s", got)
	}
	if !strings.Contains(got, `<voice name="en-US-GuyNeural">hello world</voice>`) {
		t.Errorf("text not scoped to voice element: %s", got)
	}
}

func TestBuildSSMLProsody(t *testing.T) {
	tests := []struct {
		name    string
		rate    int
		pitch   int
		want    []string
		notWant []string
	}{
		{
			name: "rate only",
			rate: 25,
			want: []string{`<prosody rate="25%">`},
			notWant: []string{"pitch="},
		},
		{
			name:  "pitch only",
			pitch: -10,
			want:  []string{`<prosody pitch="-10%">`},
			notWant: []string{"rate="},
		},
		{
			name:  "both",
			rate:  -40,
			pitch: 40,
			want:  []string{`rate="-40%"`, `pitch="40%"`},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := buildSSML(tts.Request{
				Text:         "some narration",
				Voice:        "en-GB-RyanNeural",
				RatePercent:  tc.rate,
				PitchPercent: tc.pitch,
			})
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("missing %q in %s", w, got)
				}
			}
			for _, nw := range tc.notWant {
				if strings.Contains(got, nw) {
					t.Errorf("unexpected %q in %s", nw, got)
				}
			}
			// prosody must sit inside the selected voice
			vi := strings.Index(got, `<voice name="en-GB-RyanNeural">`)
			pi := strings.Index(got, "<prosody")
			if vi < 0 || pi < vi {
				t.Errorf("prosody not scoped to voice: %s", got)
			}
		})
	}
}

func TestBuildSSMLEscaping(t *testing.T) {
	got := buildSSML(tts.Request{Text: "a < b & c > d", Voice: "en-US-JennyNeural"})
	if !strings.Contains(got, "a &lt; b &amp; c &gt; d") {
		t.Errorf("text not escaped: %s", got)
	}
}
