package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWebSocketInterviewFlow(t *testing.T) {
	server := httptest.NewServer(Router(newTestService()))
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?jobType=water_damage&tier=standard&postcode=4000&userId=tech-1"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Expect the session opener first.
	msgType, payload := readNext(conn, t, "started")
	if msgType != "started" {
		t.Fatalf("expected started, got %s", msgType)
	}
	sessionID, _ := payload["sessionId"].(string)
	if sessionID == "" {
		t.Fatalf("expected session id in %+v", payload)
	}
	first, _ := payload["firstQuestion"].(map[string]any)
	if first == nil || first["id"] != "water_source" {
		t.Fatalf("expected water_source first, got %+v", payload)
	}

	// Answer the opener; grey water keeps the contamination questions.
	writeAnswer(conn, t, "water_source", "grey_water")
	_, result := readNext(conn, t, "answerResult")
	next, _ := result["nextQuestion"].(map[string]any)
	if next == nil || next["id"] != "contamination_spread" {
		t.Fatalf("expected contamination_spread next, got %+v", result)
	}
	populations, _ := result["populations"].([]any)
	if len(populations) != 2 {
		t.Fatalf("expected 2 populations, got %+v", result["populations"])
	}

	writeAnswer(conn, t, "contamination_spread", "single_room")
	readNext(conn, t, "answerResult")
	writeAnswer(conn, t, "moisture_mapping", 18)
	readNext(conn, t, "answerResult")

	writeAnswer(conn, t, "pre_existing_damage", "unsure")
	_, final := readNext(conn, t, "answerResult")
	if final["completed"] != true {
		t.Fatalf("expected completion, got %+v", final)
	}

	// Completion is followed by the full population set for the form.
	_, completed := readNext(conn, t, "completed")
	if got, _ := completed["populations"].([]any); len(got) != 5 {
		t.Fatalf("expected 5 populations on completion, got %+v", completed)
	}
}

func TestWebSocketQueryAndErrors(t *testing.T) {
	server := httptest.NewServer(Router(newTestService()))
	defer server.Close()

	// Handshake requires a job type.
	bad := "ws" + server.URL[len("http"):] + "/ws"
	if _, res, err := websocket.DefaultDialer.Dial(bad, nil); err == nil {
		t.Fatalf("expected handshake rejection")
	} else if res == nil || res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 handshake, got %+v", res)
	}

	u := "ws" + server.URL[len("http"):] + "/ws?jobType=water_damage"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	readNext(conn, t, "started")

	if err := conn.WriteJSON(map[string]any{"type": "export"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, errPayload := readNext(conn, t, "error")
	if errPayload["message"] != "unsupported message type" {
		t.Fatalf("unexpected error payload %+v", errPayload)
	}

	if err := conn.WriteJSON(map[string]any{"type": "answer", "payload": map[string]any{"questionId": "not_planned", "value": "x"}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	readNext(conn, t, "error")

	if err := conn.WriteJSON(map[string]any{"type": "next"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, question := readNext(conn, t, "question")
	if q, _ := question["question"].(map[string]any); q == nil || q["id"] != "water_source" {
		t.Fatalf("expected water_source from next, got %+v", question)
	}
}

func writeAnswer(conn *websocket.Conn, t *testing.T, questionID string, value any) {
	t.Helper()
	msg := map[string]any{
		"type": "answer",
		"payload": map[string]any{
			"questionId": questionID,
			"value":      value,
		},
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write answer: %v", err)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s (payload %+v)", expect, msg.Type, msg.Payload)
	}
	return msg.Type, msg.Payload
}
