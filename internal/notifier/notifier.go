// Package notifier delivers rendered shopping lists to users by email.
package notifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strconv"

	"github.com/guttosm/recipe-service/internal/domain/model"
)

// Subject is the subject line of every shopping list email.
const Subject = "Your Shopping List"

var (
	// ErrDeliveryFailed wraps every error returned by Send.
	ErrDeliveryFailed = errors.New("shopping list delivery failed")

	// ErrNoRecipient is returned when Send is called without an address.
	ErrNoRecipient = errors.New("recipient address is required")
)

// Notifier sends a computed shopping list to a recipient.
type Notifier interface {
	Send(ctx context.Context, to string, list model.ShoppingList) error
}

var bodyTemplate = template.Must(template.New("shopping_list").Funcs(template.FuncMap{
	"amount": FormatAmount,
}).Parse(`<h2>{{.Subject}}</h2><ul>{{range .Items}}<li>{{amount .Amount}} {{.Unit}} {{.Name}}</li>{{end}}</ul><p>Happy cooking!</p>`))

// RenderHTML renders the HTML body for list. Every item becomes one
// "<amount> <unit> <name>" list entry with names and units escaped.
func RenderHTML(list model.ShoppingList) (string, error) {
	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, struct {
		Subject string
		Items   []model.ShoppingListItem
	}{
		Subject: Subject,
		Items:   list.Items,
	})
	if err != nil {
		return "", fmt.Errorf("render shopping list: %w", err)
	}
	return buf.String(), nil
}

// FormatAmount prints an amount without a trailing ".0", so 500 renders as
// "500" and 0.5 as "0.5".
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// DeliveryError reports which recipient could not be reached.
type DeliveryError struct {
	To  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("send shopping list to %s: %v", e.To, e.Err)
}

// Unwrap exposes both ErrDeliveryFailed and the underlying cause.
func (e *DeliveryError) Unwrap() []error {
	return []error{ErrDeliveryFailed, e.Err}
}
