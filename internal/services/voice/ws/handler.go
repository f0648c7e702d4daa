package ws

import (
	"net/http"

	"assistant/internal/platform/clock"
	"assistant/internal/platform/logger"
	apptdomain "assistant/internal/services/appointments/domain"
	asstdomain "assistant/internal/services/assistant/domain"
	"assistant/internal/services/voice/dispatch"
	"assistant/internal/services/voice/domain"
	"assistant/internal/services/voice/reminders"
	"assistant/internal/services/voice/session"
)

// Deps is what a voice session needs from the rest of the system
type Deps struct {
	Log          *logger.Logger
	Query        asstdomain.QueryPort
	Appointments apptdomain.CRUDPort
	Clock        clock.Clock
}

// Handler upgrades the request and runs one voice session until the
// socket closes. Session resources are released on every exit path
func Handler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sock, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			d.Log.Warn().Err(err).Msg("voice upgrade failed")
			return
		}

		userID := r.URL.Query().Get("userId")
		if userID == "" {
			userID = "anonymous"
		}

		conn := NewConn(sock, d.Log)
		defer conn.Close()

		rem := reminders.New(nil, d.Clock, func(text string) {
			if err := conn.Send(Frame{Type: frameSay, Text: "Reminder: " + text}); err != nil {
				d.Log.Warn().Err(err).Msg("reminder send failed")
			}
		})

		input := NewInput(conn)
		output := NewOutput(conn)
		disp := dispatch.New(d.Log, d.Query, d.Appointments, rem, userID)

		ctrl := session.New(session.Options{
			Log:        d.Log,
			Input:      input,
			Output:     output,
			Dispatcher: disp,
			Reminders:  rem,
			Clock:      d.Clock,
			Status: func(s domain.State) {
				_ = conn.Send(Frame{Type: frameStatus, Text: string(s)})
			},
		})
		defer ctrl.Teardown()

		if err := ctrl.StartListening(); err != nil {
			d.Log.Warn().Err(err).Msg("voice session start failed")
			return
		}

		d.Log.Info().Str("user_id", userID).Msg("voice session open")
		for {
			f, err := conn.ReadFrame()
			if err != nil {
				d.Log.Info().Str("user_id", userID).Msg("voice session closed")
				return
			}
			switch f.Type {
			case frameStop:
				ctrl.StopListening()
			default:
				input.Deliver(f)
			}
		}
	}
}
