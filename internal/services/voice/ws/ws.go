// Package ws adapts a websocket connection into the voice session's
// speech seams. Recognition and synthesis run in the client, the socket
// carries finalized transcripts one way and responses the other
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/text/language"

	"assistant/internal/platform/logger"
	"assistant/internal/services/voice/domain"
)

// Frame types on the wire
const (
	frameTranscript = "transcript" // client -> server, finalized text
	frameNoSpeech   = "no_speech"  // client -> server, quiet timeout
	frameStop       = "stop"       // client -> server, manual stop
	frameSay        = "say"        // server -> client, speak this
	frameStatus     = "status"     // server -> client, state change
	frameListen     = "listen"     // server -> client, arm recognition
)

const writeTimeout = 10 * time.Second

// Frame is one websocket message in either direction
type Frame struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	Lang string `json:"lang,omitempty"`
}

// Conn wraps a websocket with a write lock so reminders fired from
// timer goroutines do not interleave with session writes
type Conn struct {
	mu  sync.Mutex
	ws  *websocket.Conn
	log *logger.Logger
}

// NewConn wraps an upgraded websocket
func NewConn(ws *websocket.Conn, log *logger.Logger) *Conn {
	return &Conn{ws: ws, log: log}
}

// Send writes one frame
func (c *Conn) Send(f Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteJSON(f)
}

// Close closes the underlying socket
func (c *Conn) Close() error { return c.ws.Close() }

// ReadFrame blocks for the next client frame
func (c *Conn) ReadFrame() (Frame, error) {
	var f Frame
	_, data, err := c.ws.ReadMessage()
	if err != nil {
		return f, err
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return f, err
	}
	return f, nil
}

// Input adapts the socket into domain.SpeechInput. The read loop feeds
// Deliver; Start only tells the client to arm its recognizer
type Input struct {
	mu    sync.Mutex
	conn  *Conn
	ev    domain.InputEvents
	armed bool
}

// NewInput builds the capture seam over conn
func NewInput(conn *Conn) *Input { return &Input{conn: conn} }

// Start implements domain.SpeechInput
func (i *Input) Start(lang language.Tag, ev domain.InputEvents) error {
	i.mu.Lock()
	i.ev = ev
	i.armed = true
	i.mu.Unlock()
	return i.conn.Send(Frame{Type: frameListen, Lang: lang.String()})
}

// Stop implements domain.SpeechInput. Partial transcripts after Stop
// are discarded
func (i *Input) Stop() {
	i.mu.Lock()
	i.armed = false
	i.mu.Unlock()
}

// Deliver routes one client frame to the armed session, a no-op when
// the recognizer was stopped
func (i *Input) Deliver(f Frame) {
	i.mu.Lock()
	ev, armed := i.ev, i.armed
	i.mu.Unlock()
	if ev == nil || !armed {
		return
	}
	switch f.Type {
	case frameTranscript:
		ev.OnTranscript(f.Text)
	case frameNoSpeech:
		ev.OnNoSpeech()
	}
}

// Output adapts the socket into domain.SpeechOutput. The client owns
// playback, so a frame successfully written counts as spoken
type Output struct {
	conn *Conn
}

// NewOutput builds the playback seam over conn
func NewOutput(conn *Conn) *Output { return &Output{conn: conn} }

// Speak implements domain.SpeechOutput
func (o *Output) Speak(text string, lang language.Tag, done func(error)) {
	err := o.conn.Send(Frame{Type: frameSay, Text: text, Lang: lang.String()})
	done(err)
}

// Cancel implements domain.SpeechOutput. The client stops playback on
// the next listen frame, nothing to do server side
func (o *Output) Cancel() {}

// Upgrader is the shared websocket upgrader for voice sessions
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// the browser front end is served from another origin in development
	CheckOrigin: func(r *http.Request) bool { return true },
}
