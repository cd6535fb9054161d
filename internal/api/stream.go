package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"cip-engine/internal/degradation"
	"cip-engine/internal/sampling"
)

const streamWriteTimeout = 10 * time.Second

// Stream message types
const (
	MessageTypePoint      = "point"
	MessageTypeAssessment = "assessment"
	MessageTypeError      = "error"
)

// StreamMessage is one websocket frame of the degradation stream.
type StreamMessage struct {
	Type       string                  `json:"type"`
	Point      *degradation.Point      `json:"point,omitempty"`
	Assessment *degradation.Assessment `json:"assessment,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// handleStream replays the degradation curve point by point, then sends the
// assessment without the curve and closes the connection.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	in, seed, parseErr := parseQuery(r.URL.Query(), s.seedFn)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var a *degradation.Assessment
	if parseErr == nil {
		a, err = s.engine.Assess(sampling.New(seed), in)
	} else {
		err = parseErr
	}
	if err != nil {
		s.writeMessage(conn, StreamMessage{Type: MessageTypeError, Error: err.Error()})
		s.closeStream(conn, websocket.ClosePolicyViolation)
		return
	}
	s.metrics.RecordAssessment(a.ThresholdCrossed)

	for i := range a.Curve {
		if err := r.Context().Err(); err != nil {
			return
		}
		if err := s.writeMessage(conn, StreamMessage{Type: MessageTypePoint, Point: &a.Curve[i]}); err != nil {
			s.logger.Printf("Websocket write failed: %v", err)
			return
		}
		if s.streamInterval > 0 {
			select {
			case <-r.Context().Done():
				return
			case <-time.After(s.streamInterval):
			}
		}
	}

	summary := *a
	summary.Curve = nil
	if err := s.writeMessage(conn, StreamMessage{Type: MessageTypeAssessment, Assessment: &summary}); err != nil {
		s.logger.Printf("Websocket write failed: %v", err)
		return
	}
	s.closeStream(conn, websocket.CloseNormalClosure)
}

func (s *Server) writeMessage(conn *websocket.Conn, msg StreamMessage) error {
	conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	return conn.WriteJSON(msg)
}

func (s *Server) closeStream(conn *websocket.Conn, code int) {
	conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, ""))
}
