package edge

import (
	"fmt"
	"strings"

	"voiceover-app/internal/domain/tts"
)

// escapeText makes narration safe to embed in the SSML payload.
func escapeText(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return r.Replace(s)
}

// buildSSML renders the synthesis payload for one request.
// With rate and pitch both zero the text goes inside the voice element
// as-is; otherwise it is wrapped in a prosody element carrying only
// the non-zero percentage attributes.
func buildSSML(req tts.Request) string {
	body := escapeText(req.Text)

	var prosody string
	if req.RatePercent != 0 {
		prosody += fmt.Sprintf(" rate=%q", fmt.Sprintf("%d%%", req.RatePercent))
	}
	if req.PitchPercent != 0 {
		prosody += fmt.Sprintf(" pitch=%q", fmt.Sprintf("%d%%", req.PitchPercent))
	}
	if prosody != "" {
		body = fmt.Sprintf("<prosody%s>%s</prosody>", prosody, body)
	}

	return fmt.Sprintf(
		`<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xml:lang="en-US"><voice name="%s">%s</voice></speak>`,
		req.Voice, body,
	)
}
