package notify

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"belshop/metrics"
	"belshop/models"
)

// WhatsApp relays created orders as text messages through the WhatsApp
// Cloud API.
type WhatsApp struct {
	client *resty.Client
	apiKey string
	phone  string
}

func NewWhatsApp(baseURL, apiKey, phone string) *WhatsApp {
	return &WhatsApp{
		client: resty.New().SetBaseURL(baseURL).SetRetryCount(0),
		apiKey: apiKey,
		phone:  phone,
	}
}

type textPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

// SendOrderNotification posts the rendered order message. True only on a 200
// from the messaging API; every failure is logged and reported as false,
// never raised.
func (w *WhatsApp) SendOrderNotification(order *models.Order) bool {
	if w.apiKey == "" || w.phone == "" {
		log.Error("whatsapp credentials not configured, skipping notification")
		return false
	}

	payload := textPayload{
		MessagingProduct: "whatsapp",
		To:               order.CustomerPhone,
		Type:             "text",
		Text:             textBody{Body: formatOrderMessage(order)},
	}

	resp, err := w.client.R().
		SetAuthToken(w.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/" + w.phone + "/messages")
	if err != nil {
		log.WithError(err).Error("failed to send whatsapp notification")
		metrics.Notifications.WithLabelValues("error").Inc()
		return false
	}
	if resp.StatusCode() != http.StatusOK {
		log.WithFields(log.Fields{"status": resp.StatusCode(), "body": resp.String()}).Error("failed to send whatsapp notification")
		metrics.Notifications.WithLabelValues("error").Inc()
		return false
	}

	log.WithField("to", order.CustomerPhone).Info("whatsapp notification sent")
	metrics.Notifications.WithLabelValues("ok").Inc()
	return true
}

func formatOrderMessage(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "¡Nuevo pedido de %s!\n\n", order.CustomerName)
	b.WriteString("Productos:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %dx %s ($%s)\n", item.Quantity, item.ProductID, item.Price)
	}
	fmt.Fprintf(&b, "\nTotal: $%s\n", order.Total)
	if order.CustomerAddress != nil {
		fmt.Fprintf(&b, "\nDirección de entrega: %s", *order.CustomerAddress)
	}
	if order.Notes != nil {
		fmt.Fprintf(&b, "\nNotas: %s", *order.Notes)
	}
	return b.String()
}
