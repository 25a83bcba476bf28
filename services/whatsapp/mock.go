package whatsapp

import (
	"context"
	"sync"
)

// SentMessage records one outbound send captured by the mock.
type SentMessage struct {
	PhoneNumber string
	Type        string // text, document
	Message     string
	Filename    string
	Document    []byte
}

// MockClient captures outbound sends instead of calling the provider. Used
// in tests and when no access token is configured.
type MockClient struct {
	mu          sync.Mutex
	Sent        []SentMessage
	VerifyToken string
	SendErr     error
}

func NewMockClient(verifyToken string) *MockClient {
	return &MockClient{VerifyToken: verifyToken}
}

func (m *MockClient) SendText(_ context.Context, phone, message string) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMessage{PhoneNumber: phone, Type: "text", Message: message})
	return nil
}

func (m *MockClient) SendDocument(_ context.Context, phone, filename string, document []byte, caption string) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMessage{
		PhoneNumber: phone,
		Type:        "document",
		Message:     caption,
		Filename:    filename,
		Document:    document,
	})
	return nil
}

func (m *MockClient) VerifyWebhook(mode, token, challenge string) (string, bool) {
	if mode == "subscribe" && token == m.VerifyToken {
		return challenge, true
	}
	return "", false
}

func (m *MockClient) ExtractMessage(payload []byte) (*InboundMessage, error) {
	c := &CloudClient{}
	return c.ExtractMessage(payload)
}

// Messages returns a snapshot of captured sends.
func (m *MockClient) Messages() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.Sent))
	copy(out, m.Sent)
	return out
}
