package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"estatehub/server/internal/models"

	"github.com/sirupsen/logrus"
)

// Service sends inquiry alerts to the broker's Telegram chat. An empty bot
// token disables it; every method becomes a no-op.
type Service struct {
	logger   *logrus.Logger
	client   *http.Client
	botToken string
	chatID   string
}

func NewService(logger *logrus.Logger, botToken, chatID string) *Service {
	return &Service{
		logger:   logger,
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether alerting is configured.
func (s *Service) Enabled() bool {
	return s.botToken != "" && s.chatID != ""
}

// SendMessage sends a message to the configured Telegram chat
func (s *Service) SendMessage(message string) error {
	if !s.Enabled() {
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)
	payload := map[string]interface{}{
		"chat_id":    s.chatID,
		"text":       message,
		"parse_mode": "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %v", err)
	}

	resp, err := s.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send message to Telegram API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return errors.New("invalid bot token - please check your token from @BotFather")
		case http.StatusBadRequest:
			return fmt.Errorf("invalid chat ID or message format: %s", string(body))
		case http.StatusForbidden:
			return errors.New("bot was blocked by the user or chat")
		case http.StatusNotFound:
			return errors.New("bot not found - please check your token from @BotFather")
		default:
			return fmt.Errorf("Telegram API error (status %d): %s", resp.StatusCode, string(body))
		}
	}

	return nil
}

// NotifyNewInquiry sends a notification about a new contact inquiry
func (s *Service) NotifyNewInquiry(inquiry *models.Inquiry) error {
	if !s.Enabled() {
		return nil
	}

	context := ""
	if inquiry.PropertyID != "" {
		context += fmt.Sprintf("\n🏠 Property: %s", inquiry.PropertyID)
	}
	if inquiry.AreaSlug != "" {
		context += fmt.Sprintf("\n📍 Area: %s", inquiry.AreaSlug)
	}

	message := fmt.Sprintf(
		"<b>New Inquiry!</b>\n\n"+
			"👤 %s\n"+
			"📧 %s\n"+
			"📞 %s\n"+
			"💬 %s%s\n\n"+
			"Source: %s",
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		inquiry.Message,
		context,
		inquiry.Source,
	)

	return s.SendMessage(message)
}
