package edge

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"voiceover-app/internal/domain/tts"
)

// DefaultEndpoint is the Edge read-aloud websocket service.
const DefaultEndpoint = "wss://speech.platform.bing.com/consumer/speech/synthesize/readaloud/edge/v1"

const (
	trustedClientToken = "6A5AA1D4EAFF4E9FB37E23D68491D6F4"
	origin             = "chrome-extension://jdiccldimpdaibmpdkjnbmckianbfold"
	outputFormat       = "audio-24khz-48kbitrate-mono-mp3"
)

// Synthesizer implements tts.Synthesizer against the Edge read-aloud
// websocket endpoint. One connection per request, no retry.
type Synthesizer struct {
	endpoint string
	timeout  time.Duration
}

// NewSynthesizer creates an Edge synthesizer. endpoint may be empty to
// use the public service.
func NewSynthesizer(endpoint string) *Synthesizer {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Synthesizer{endpoint: endpoint, timeout: 90 * time.Second}
}

// Synthesize streams the synthesized speech into outPath.
func (s *Synthesizer) Synthesize(ctx context.Context, req tts.Request, outPath string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// fallback deadline when the caller did not set one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	connID := strings.ReplaceAll(uuid.NewString(), "-", "")
	url := fmt.Sprintf("%s?TrustedClientToken=%s&ConnectionId=%s", s.endpoint, trustedClientToken, connID)

	header := http.Header{}
	header.Set("Origin", origin)

	start := time.Now()
	log.Printf("[tts] connecting voice=%s rate=%d%% pitch=%d%% chars=%d",
		req.Voice, req.RatePercent, req.PitchPercent, len([]rune(req.Text)))

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("edge tts dial (status %d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("edge tts dial: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetReadDeadline(deadline)
		conn.SetWriteDeadline(deadline)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(speechConfig())); err != nil {
		return fmt.Errorf("send speech.config: %w", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(ssmlMessage(connID, buildSSML(req)))); err != nil {
		return fmt.Errorf("send ssml: %w", err)
	}

	audio, err := collectAudio(conn)
	if err != nil {
		return err
	}
	if len(audio) == 0 {
		return fmt.Errorf("edge tts returned no audio (voice %q)", req.Voice)
	}

	if err := os.WriteFile(outPath, audio, 0o644); err != nil {
		return fmt.Errorf("write audio file: %w", err)
	}
	log.Printf("[tts] synthesized %d bytes in %.2fs -> %s", len(audio), time.Since(start).Seconds(), outPath)
	return nil
}

// collectAudio reads frames until the service signals turn.end.
// Binary frames carry a big-endian uint16 header length, the text
// header, then the audio payload.
func collectAudio(conn *websocket.Conn) ([]byte, error) {
	var audio []byte
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("edge tts read: %w", err)
		}
		switch msgType {
		case websocket.BinaryMessage:
			if len(data) < 2 {
				continue
			}
			headerLen := int(binary.BigEndian.Uint16(data[:2]))
			if 2+headerLen > len(data) {
				continue
			}
			head := string(data[2 : 2+headerLen])
			if strings.Contains(head, "Path:audio") {
				audio = append(audio, data[2+headerLen:]...)
			}
		case websocket.TextMessage:
			if strings.Contains(string(data), "Path:turn.end") {
				return audio, nil
			}
		}
	}
}

func timestamp() string {
	return time.Now().UTC().Format("Mon Jan 02 2006 15:04:05 GMT+0000 (Coordinated Universal Time)")
}

func speechConfig() string {
	return "X-Timestamp:" + timestamp() + "\r\n" +
		"Content-Type:application/json; charset=utf-8\r\n" +
		"Path:speech.config\r\n\r\n" +
		`{"context":{"synthesis":{"audio":{"metadataoptions":{"sentenceBoundaryEnabled":"false","wordBoundaryEnabled":"false"},"outputFormat":"` + outputFormat + `"}}}}`
}

func ssmlMessage(requestID, ssml string) string {
	return "X-RequestId:" + requestID + "\r\n" +
		"Content-Type:application/ssml+xml\r\n" +
		"X-Timestamp:" + timestamp() + "\r\n" +
		"Path:ssml\r\n\r\n" +
		ssml
}
