package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nkumar/govbot/internal/api"
	"github.com/nkumar/govbot/internal/models"
)

func newReadyModel(client api.PortalClientInterface) Model {
	m := NewChatModel(client)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func asModel(t *testing.T, mdl tea.Model) Model {
	t.Helper()
	m, ok := mdl.(Model)
	if !ok {
		t.Fatal("Update should return Model type")
	}
	return m
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewChatModel(&api.MockPortalClient{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	typed := asModel(t, updated)
	if typed.width != 100 || typed.height != 40 {
		t.Errorf("dimensions = %dx%d, want 100x40", typed.width, typed.height)
	}
	if !typed.ready {
		t.Error("Model should be ready after WindowSizeMsg")
	}
}

func TestModel_Update_CtrlC(t *testing.T) {
	m := newReadyModel(&api.MockPortalClient{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("expected quit command for Ctrl+C")
	}
}

func TestModel_Submit_EmptyInput(t *testing.T) {
	mock := &api.MockPortalClient{}
	m := newReadyModel(mock)

	for _, input := range []string{"", "   ", "\t\n"} {
		updated, cmd := m.submit(input)
		typed := asModel(t, updated)
		if len(typed.messages) != 0 {
			t.Errorf("submit(%q) should not append a message", input)
		}
		if typed.typing {
			t.Errorf("submit(%q) should not show the typing indicator", input)
		}
		if cmd != nil {
			t.Errorf("submit(%q) should not issue a command", input)
		}
	}
	if mock.SendCalls != 0 {
		t.Errorf("no request should be issued for empty input, got %d", mock.SendCalls)
	}
}

func TestModel_Submit_AppendsUserAndShowsTyping(t *testing.T) {
	m := newReadyModel(&api.MockPortalClient{SendVal: "ok"})

	updated, cmd := m.submit("  apply  ")
	typed := asModel(t, updated)

	if len(typed.messages) != 1 {
		t.Fatalf("messages = %d, want 1 optimistic user echo", len(typed.messages))
	}
	if typed.messages[0].sender != models.SenderUser || typed.messages[0].text != "apply" {
		t.Errorf("user message = %+v, want trimmed %q", typed.messages[0], "apply")
	}
	if !typed.typing {
		t.Error("typing indicator should be active while the request is in flight")
	}
	if cmd == nil {
		t.Fatal("submit should issue the send command")
	}
}

func TestModel_Submit_WhileTyping(t *testing.T) {
	mock := &api.MockPortalClient{}
	m := newReadyModel(mock)
	m.typing = true

	updated, cmd := m.submit("hello")
	typed := asModel(t, updated)

	if len(typed.messages) != 0 || cmd != nil {
		t.Error("submit while a request is in flight should be a no-op")
	}
}

func TestModel_ReplyAppendsBotAndClearsTyping(t *testing.T) {
	m := newReadyModel(&api.MockPortalClient{})
	m.typing = true
	m.messages = []chatMessage{{sender: models.SenderUser, text: "apply"}}

	updated, _ := m.Update(replyMsg{reply: "What is your <b>full name</b>?"})
	typed := asModel(t, updated)

	if typed.typing {
		t.Error("typing indicator should be removed when the reply arrives")
	}
	if len(typed.messages) != 2 {
		t.Fatalf("messages = %d, want exactly one bot message appended", len(typed.messages))
	}
	last := typed.messages[1]
	if last.sender != models.SenderBot || last.text != "What is your <b>full name</b>?" {
		t.Errorf("bot message = %+v", last)
	}
}

func TestModel_SendFailureAppendsFallback(t *testing.T) {
	m := newReadyModel(&api.MockPortalClient{})
	m.typing = true
	m.messages = []chatMessage{{sender: models.SenderUser, text: "hello"}}

	sendErr := errors.New("connection refused")
	updated, _ := m.Update(sendFailedMsg{err: sendErr})
	typed := asModel(t, updated)

	if typed.typing {
		t.Error("typing indicator should be removed on failure")
	}
	if len(typed.messages) != 2 {
		t.Fatalf("messages = %d, want exactly one fallback appended", len(typed.messages))
	}
	last := typed.messages[1]
	if last.sender != models.SenderBot || last.text != models.FallbackReply {
		t.Errorf("fallback message = %+v", last)
	}
	if typed.err == nil {
		t.Error("underlying error should be kept for display")
	}
}

func TestModel_ResetClearsMessages(t *testing.T) {
	m := newReadyModel(&api.MockPortalClient{})
	m.messages = []chatMessage{
		{sender: models.SenderUser, text: "apply"},
		{sender: models.SenderBot, text: "choose a service"},
	}

	greeting := "🔄 Session reset. Type <b>apply</b> to begin!"
	updated, _ := m.Update(resetMsg{greeting: greeting})
	typed := asModel(t, updated)

	if len(typed.messages) != 1 {
		t.Fatalf("messages = %d, want only the greeting after reset", len(typed.messages))
	}
	if typed.messages[0].sender != models.SenderBot || typed.messages[0].text != greeting {
		t.Errorf("greeting message = %+v", typed.messages[0])
	}
}

func TestModel_ResetFailureKeepsMessages(t *testing.T) {
	m := newReadyModel(&api.MockPortalClient{})
	m.typing = true
	m.messages = []chatMessage{{sender: models.SenderUser, text: "apply"}}

	updated, _ := m.Update(resetFailedMsg{err: errors.New("boom")})
	typed := asModel(t, updated)

	if len(typed.messages) != 1 {
		t.Error("failed reset must not clear the conversation")
	}
	if typed.err == nil {
		t.Error("reset failure should be surfaced")
	}
	if typed.typing {
		t.Error("typing indicator should be removed")
	}
}

func TestModel_QuickSendMatchesTypedSend(t *testing.T) {
	typedModel := newReadyModel(&api.MockPortalClient{SendVal: "ok"})
	typedModel.textarea.SetValue(models.PhraseApply)
	afterTyped, typedCmd := typedModel.Update(tea.KeyMsg{Type: tea.KeyEnter})

	quickModel := newReadyModel(&api.MockPortalClient{SendVal: "ok"})
	afterQuick, quickCmd := quickModel.Update(tea.KeyMsg{Type: tea.KeyCtrlA})

	tm := asModel(t, afterTyped)
	qm := asModel(t, afterQuick)

	if len(tm.messages) != 1 || len(qm.messages) != 1 {
		t.Fatalf("both paths should append one user message, got %d and %d", len(tm.messages), len(qm.messages))
	}
	if tm.messages[0] != qm.messages[0] {
		t.Errorf("quick send diverged from typed send: %+v vs %+v", qm.messages[0], tm.messages[0])
	}
	if tm.typing != qm.typing {
		t.Error("typing state should match across both paths")
	}
	if (typedCmd == nil) != (quickCmd == nil) {
		t.Error("both paths should issue a send command")
	}
}

func TestModel_SendCommandCallsClient(t *testing.T) {
	mock := &api.MockPortalClient{SendVal: "reply text"}
	m := newReadyModel(mock)

	cmd := m.sendMessage("hello")
	msg := cmd()

	reply, ok := msg.(replyMsg)
	if !ok {
		t.Fatalf("expected replyMsg, got %T", msg)
	}
	if reply.reply != "reply text" {
		t.Errorf("reply = %q", reply.reply)
	}
	if mock.SendCalls != 1 || len(mock.SentMessages) != 1 || mock.SentMessages[0] != "hello" {
		t.Errorf("client not called as expected: %+v", mock)
	}
}

func TestModel_SendCommandFailure(t *testing.T) {
	mock := &api.MockPortalClient{SendErr: errors.New("portal down")}
	m := newReadyModel(mock)

	msg := m.sendMessage("hello")()
	if _, ok := msg.(sendFailedMsg); !ok {
		t.Fatalf("expected sendFailedMsg, got %T", msg)
	}
}

func TestModel_ResetCommand(t *testing.T) {
	mock := &api.MockPortalClient{ResetVal: "greeting"}
	m := newReadyModel(mock)

	msg := m.resetSession()()
	reset, ok := msg.(resetMsg)
	if !ok {
		t.Fatalf("expected resetMsg, got %T", msg)
	}
	if reset.greeting != "greeting" {
		t.Errorf("greeting = %q", reset.greeting)
	}
	if mock.ResetCalls != 1 {
		t.Errorf("ResetCalls = %d, want 1", mock.ResetCalls)
	}
}

type recordingStore struct {
	entries []string
}

func (r *recordingStore) Append(id, sender, text string) error {
	r.entries = append(r.entries, sender+":"+text)
	return nil
}

func TestModel_TranscriptRecording(t *testing.T) {
	rec := &recordingStore{}
	m := NewChatModelWithTranscript(&api.MockPortalClient{SendVal: "ok"}, rec, "t1")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	afterSubmit, _ := m.submit("apply")
	m = afterSubmit.(Model)
	afterReply, _ := m.Update(replyMsg{reply: "choose a service"})
	m = afterReply.(Model)

	want := []string{"user:apply", "bot:choose a service"}
	if len(rec.entries) != len(want) {
		t.Fatalf("recorded %d entries, want %d: %v", len(rec.entries), len(want), rec.entries)
	}
	for i := range want {
		if rec.entries[i] != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, rec.entries[i], want[i])
		}
	}
}

func TestFormatError(t *testing.T) {
	if FormatError(nil) != "" {
		t.Error("FormatError(nil) should be empty")
	}
	out := FormatError(errors.New("something broke"))
	if out == "" {
		t.Error("FormatError should render non-nil errors")
	}
}
