package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    fmt.Sprintf("https://api.telegram.org/bot%s", token),
	}
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	return c.postJSON(ctx, "/sendMessage", payload)
}

func (c *Client) SendRichMessage(ctx context.Context, chatID int64, text string) error {
	payload := map[string]any{
		"chat_id":                  chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}
	return c.postJSON(ctx, "/sendMessage", payload)
}

// SendKeyboardMessage sends a rich message with a one-time reply keyboard.
// Tapping a button sends its label back as a regular message.
func (c *Client) SendKeyboardMessage(ctx context.Context, chatID int64, text string, buttons []string) error {
	keyboard := make([][]map[string]any, 0, len(buttons))
	for _, label := range buttons {
		keyboard = append(keyboard, []map[string]any{{"text": label}})
	}

	payload := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
		"reply_markup": map[string]any{
			"keyboard":          keyboard,
			"resize_keyboard":   true,
			"one_time_keyboard": true,
		},
	}
	return c.postJSON(ctx, "/sendMessage", payload)
}

// SendPhoto uploads a PNG image with an HTML caption via multipart form data.
func (c *Client) SendPhoto(ctx context.Context, chatID int64, caption string, png []byte) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("chat_id", strconv.FormatInt(chatID, 10)); err != nil {
		return fmt.Errorf("write chat_id field: %w", err)
	}
	if err := writer.WriteField("caption", caption); err != nil {
		return fmt.Errorf("write caption field: %w", err)
	}
	if err := writer.WriteField("parse_mode", "HTML"); err != nil {
		return fmt.Errorf("write parse_mode field: %w", err)
	}

	part, err := writer.CreateFormFile("photo", "qr.png")
	if err != nil {
		return fmt.Errorf("create photo part: %w", err)
	}
	if _, err := part.Write(png); err != nil {
		return fmt.Errorf("write photo bytes: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sendPhoto", &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

func (c *Client) SetWebhook(ctx context.Context, webhookURL string) error {
	payload := map[string]any{
		"url": webhookURL,
	}
	return c.postJSON(ctx, "/setWebhook", payload)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read telegram response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(data))
	}

	var out apiResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("unmarshal telegram response: %w", err)
	}
	if !out.OK {
		return fmt.Errorf("telegram api error: %s", out.Description)
	}

	return nil
}

func BuildWebhookURL(baseURL, secret string) (string, error) {
	if baseURL == "" {
		return "", fmt.Errorf("base URL is empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid BOT_BASE_URL: %w", err)
	}
	parsed.Path = "/webhook/" + secret
	return parsed.String(), nil
}

// BotIDFromToken extracts the numeric bot id that prefixes every bot token
// ("<id>:<secret>"). The id doubles as the bot's own user id in updates.
func BotIDFromToken(token string) (int64, error) {
	idPart, _, found := strings.Cut(token, ":")
	if !found {
		return 0, fmt.Errorf("token has no id prefix")
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bot id in token: %w", err)
	}
	return id, nil
}

// Telegram update models.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID      int    `json:"message_id"`
	Text           string `json:"text"`
	From           User   `json:"from"`
	Chat           Chat   `json:"chat"`
	NewChatMembers []User `json:"new_chat_members,omitempty"`
}

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
	IsBot     bool   `json:"is_bot"`
}

type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}
