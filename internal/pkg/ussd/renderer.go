// Package ussd renders provider dial strings from admin-editable templates.
package ussd

import (
	"strconv"
	"strings"

	"github.com/piresc/chadpay/internal/pkg/apperror"
)

// Placeholders understood by Render
const (
	PlaceholderPhone     = "phone"
	PlaceholderAmount    = "amount"
	PlaceholderReference = "reference"
)

// Known mobile-money providers
const (
	ProviderAirtelMoney = "airtel_money"
	ProviderMoovCash    = "moov_cash"
)

// Providers lists the providers a template can be configured for
var Providers = []string{ProviderAirtelMoney, ProviderMoovCash}

// TemplateKey is the settings key holding the template for provider
func TemplateKey(provider string) string {
	return provider + "_template"
}

// Render substitutes the merchant phone, amount and reference into template.
// It has no side effects and returns the same output for the same input.
func Render(template, phone string, amount int64, reference string) (string, error) {
	values := map[string]string{
		PlaceholderPhone:     phone,
		PlaceholderAmount:    strconv.FormatInt(amount, 10),
		PlaceholderReference: reference,
	}
	return expand(template, values)
}

// Validate reports a configuration error for templates Render would reject
func Validate(template string) error {
	if strings.TrimSpace(template) == "" {
		return apperror.Configuration("dial template is empty")
	}
	_, err := expand(template, map[string]string{
		PlaceholderPhone:     "",
		PlaceholderAmount:    "",
		PlaceholderReference: "",
	})
	return err
}

func expand(template string, values map[string]string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(template) + 32)

	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", apperror.Configuration("dial template %q has an unclosed placeholder at offset %d", template, i)
			}
			name := template[i+1 : i+1+end]
			value, ok := values[name]
			if !ok {
				return "", apperror.Configuration("dial template %q uses unknown placeholder {%s}", template, name)
			}
			sb.WriteString(value)
			i += end + 1
		case '}':
			return "", apperror.Configuration("dial template %q has a stray '}' at offset %d", template, i)
		default:
			sb.WriteByte(template[i])
		}
	}

	return sb.String(), nil
}
