package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"flywise/utils"

	"go.uber.org/zap"
)

// Client is the narrow messaging-provider surface the rest of the system
// uses. The dialogue core only sees its SendDocument side; SendText and the
// webhook helpers belong to the transport layer.
type Client interface {
	SendText(ctx context.Context, phone, message string) error
	SendDocument(ctx context.Context, phone, filename string, document []byte, caption string) error
	VerifyWebhook(mode, token, challenge string) (string, bool)
	ExtractMessage(payload []byte) (*InboundMessage, error)
}

// InboundMessage is one user message lifted out of a webhook delivery.
type InboundMessage struct {
	PhoneNumber string
	MessageID   string
	Type        string
	Text        string
	ContactName string
}

type CloudClient struct {
	apiURL      string
	accessToken string
	verifyToken string
	phoneID     string
	httpClient  *http.Client
}

func NewCloudClient(phoneID, accessToken, verifyToken string) *CloudClient {
	return &CloudClient{
		apiURL:      fmt.Sprintf("https://graph.facebook.com/v18.0/%s", phoneID),
		accessToken: accessToken,
		verifyToken: verifyToken,
		phoneID:     phoneID,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *CloudClient) SendText(ctx context.Context, phone, message string) error {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                phone,
		"type":              "text",
		"text":              map[string]string{"body": message},
	}
	return c.post(ctx, "/messages", payload)
}

// SendDocument uploads the document to the media endpoint, then sends a
// document message referencing the returned media id.
func (c *CloudClient) SendDocument(ctx context.Context, phone, filename string, document []byte, caption string) error {
	mediaID, err := c.uploadMedia(ctx, filename, document)
	if err != nil {
		return fmt.Errorf("upload document: %w", err)
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                phone,
		"type":              "document",
		"document": map[string]string{
			"id":       mediaID,
			"filename": filename,
			"caption":  caption,
		},
	}
	return c.post(ctx, "/messages", payload)
}

func (c *CloudClient) uploadMedia(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("messaging_product", "whatsapp"); err != nil {
		return "", err
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/media", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("media upload failed: %d %s", resp.StatusCode, string(raw))
	}
	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}
	return result.ID, nil
}

func (c *CloudClient) post(ctx context.Context, path string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		utils.GetLogger().Error("WhatsApp API call failed",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", raw))
		return fmt.Errorf("whatsapp api returned %d", resp.StatusCode)
	}
	return nil
}

// VerifyWebhook answers the provider's subscription challenge.
func (c *CloudClient) VerifyWebhook(mode, token, challenge string) (string, bool) {
	if mode == "subscribe" && token == c.verifyToken {
		return challenge, true
	}
	return "", false
}

// webhookEnvelope mirrors the provider's nested delivery format.
type webhookEnvelope struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Contacts []struct {
					Profile struct {
						Name string `json:"name"`
					} `json:"profile"`
				} `json:"contacts"`
				Messages []struct {
					From string `json:"from"`
					ID   string `json:"id"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// ExtractMessage pulls the first user message out of a webhook delivery.
// Status-only deliveries return (nil, nil).
func (c *CloudClient) ExtractMessage(payload []byte) (*InboundMessage, error) {
	var envelope webhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("decode webhook payload: %w", err)
	}
	for _, entry := range envelope.Entry {
		for _, change := range entry.Changes {
			value := change.Value
			if len(value.Messages) == 0 {
				continue
			}
			msg := value.Messages[0]
			inbound := &InboundMessage{
				PhoneNumber: msg.From,
				MessageID:   msg.ID,
				Type:        msg.Type,
			}
			if msg.Type == "text" {
				inbound.Text = msg.Text.Body
			}
			if len(value.Contacts) > 0 {
				inbound.ContactName = value.Contacts[0].Profile.Name
			}
			return inbound, nil
		}
	}
	return nil, nil
}
