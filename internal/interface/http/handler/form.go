package handler

import (
	"html/template"

	"github.com/gofiber/fiber/v2"

	"voiceover-app/internal/domain/tts"
)

var formTmpl = template.Must(template.New("form").Parse(formHTML))

// formPage renders the single-request form: narration text, voice,
// rate/pitch and an optional background upload.
func (h *VoiceoverHandler) formPage(c *fiber.Ctx) error {
	data := struct {
		Voices       []string
		DefaultVoice string
		MinRate      int
		MaxRate      int
		MinPitch     int
		MaxPitch     int
	}{
		Voices:       tts.Voices,
		DefaultVoice: h.defaultVoice,
		MinRate:      tts.MinRatePercent,
		MaxRate:      tts.MaxRatePercent,
		MinPitch:     tts.MinPitchPercent,
		MaxPitch:     tts.MaxPitchPercent,
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return formTmpl.Execute(c.Response().BodyWriter(), data)
}

const formHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Text to Voiceover Video</title>
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body {
      font-family: system-ui, -apple-system, sans-serif;
      background: #1a1a2e;
      color: #e4e4e4;
      min-height: 100vh;
      display: flex;
      align-items: center;
      justify-content: center;
      padding: 1rem;
    }
    .card {
      background: #16213e;
      border-radius: 16px;
      padding: 2rem;
      width: 100%;
      max-width: 520px;
    }
    h1 { font-size: 1.4rem; margin-bottom: 1.5rem; text-align: center; }
    .form-group { margin-bottom: 1.25rem; }
    label { display: block; margin-bottom: 0.5rem; color: #888; font-size: 0.9rem; }
    textarea, select, input[type="file"] {
      width: 100%;
      padding: 0.75rem 1rem;
      border: 2px solid #2a3f5f;
      border-radius: 8px;
      background: #1a1a2e;
      color: #e4e4e4;
      font-size: 1rem;
    }
    textarea { min-height: 160px; resize: vertical; }
    input[type="range"] { width: 100%; }
    .sliders { display: flex; gap: 1rem; }
    .sliders > div { flex: 1; }
    button {
      width: 100%;
      padding: 1rem;
      border: none;
      border-radius: 8px;
      background: #4ecca3;
      color: #1a1a2e;
      font-size: 1rem;
      font-weight: 600;
      cursor: pointer;
    }
    button:disabled { opacity: 0.5; cursor: not-allowed; }
    .result {
      margin-top: 1.5rem;
      padding: 1rem;
      border-radius: 8px;
      font-size: 0.9rem;
      word-break: break-all;
    }
    .result.success { border: 1px solid #4ecca3; color: #4ecca3; }
    .result.error { border: 1px solid #e74c3c; color: #e74c3c; }
    .result a { color: inherit; }
  </style>
</head>
<body>
  <div class="card">
    <h1>Text &rarr; Video with Voiceover</h1>
    <form id="voiceoverForm">
      <div class="form-group">
        <label for="text">Narration text</label>
        <textarea id="text" name="text" required></textarea>
      </div>
      <div class="form-group">
        <label for="voice">Voice</label>
        <select id="voice" name="voice">
          {{range .Voices}}
          <option value="{{.}}"{{if eq . $.DefaultVoice}} selected{{end}}>{{.}}</option>
          {{end}}
        </select>
      </div>
      <div class="form-group sliders">
        <div>
          <label for="rate">Rate (%): <span id="rateVal">0</span></label>
          <input type="range" id="rate" name="rate" min="{{.MinRate}}" max="{{.MaxRate}}" step="5" value="0">
        </div>
        <div>
          <label for="pitch">Pitch (%): <span id="pitchVal">0</span></label>
          <input type="range" id="pitch" name="pitch" min="{{.MinPitch}}" max="{{.MaxPitch}}" step="5" value="0">
        </div>
      </div>
      <div class="form-group">
        <label for="media">Background video (mp4/mov/webm) or image (jpg/png) &mdash; optional</label>
        <input type="file" id="media" name="media" accept=".mp4,.mov,.webm,.jpg,.jpeg,.png">
      </div>
      <button type="submit" id="submitBtn">Generate Video</button>
    </form>
    <div id="result"></div>
  </div>

  <script>
    const form = document.getElementById('voiceoverForm');
    const submitBtn = document.getElementById('submitBtn');
    const result = document.getElementById('result');

    for (const id of ['rate', 'pitch']) {
      const input = document.getElementById(id);
      const out = document.getElementById(id + 'Val');
      input.addEventListener('input', () => { out.textContent = input.value; });
    }

    form.addEventListener('submit', async (e) => {
      e.preventDefault();
      submitBtn.disabled = true;
      submitBtn.textContent = 'Generating...';
      result.innerHTML = '';

      try {
        const resp = await fetch('/voiceover', { method: 'POST', body: new FormData(form) });
        if (resp.ok) {
          const data = await resp.json();
          result.className = 'result success';
          result.innerHTML = 'Done (' + data.durationSeconds.toFixed(1) + 's) &mdash; ' +
            '<a href="' + data.videoUrl + '">Download MP4</a> | ' +
            '<a href="' + data.audioUrl + '">Download MP3</a>';
        } else {
          result.className = 'result error';
          result.textContent = await resp.text() || 'Generation failed';
        }
      } catch (err) {
        result.className = 'result error';
        result.textContent = err.message;
      }

      submitBtn.disabled = false;
      submitBtn.textContent = 'Generate Video';
    });
  </script>
</body>
</html>`
