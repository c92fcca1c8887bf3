package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dev-star23/Audiophile/internal/domain"
)

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(template.FuncMap{
	"usd": formatUSD,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Order Confirmation - {{.Order.Number}}</title>
</head>
<body style="margin:0;padding:0;font-family:'Helvetica Neue',Arial,sans-serif;background-color:#fafafa;">
  <div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
    <div style="padding:32px;text-align:center;background-color:#101010;">
      <h1 style="margin:0;color:#ffffff;text-transform:uppercase;letter-spacing:1.4px;">AUDIOPHILE</h1>
    </div>
    <div style="padding:32px;text-align:center;">
      <h2 style="margin:0 0 12px;color:#101010;text-transform:uppercase;">Thank you for your order</h2>
      <p style="margin:0;color:#6b6b6b;">Your order has been confirmed and will be shipped soon.</p>
      <p style="margin:10px 0 0;color:#6b6b6b;">Order Number: <strong style="color:#101010;">{{.Order.Number}}</strong></p>
    </div>
    <table role="presentation" style="width:100%;border-collapse:collapse;background-color:#f1f1f1;">
      {{range .Order.Items}}
      <tr>
        <td style="padding:16px;width:80px;">
          <img src="{{index $.ImageURLs .ID}}" alt="{{.ImageAlt}}" style="width:64px;height:64px;object-fit:contain;border-radius:8px;background-color:#ffffff;" />
        </td>
        <td style="padding:16px;">
          <p style="margin:0 0 4px;font-weight:bold;color:#101010;">{{.Name}}</p>
          <p style="margin:0;color:#6b6b6b;">{{usd .Price}}</p>
        </td>
        <td style="padding:16px;text-align:right;font-weight:bold;color:#6b6b6b;">x{{.Quantity}}</td>
      </tr>
      {{end}}
    </table>
    <table role="presentation" style="width:100%;border-collapse:collapse;padding:16px;">
      <tr><td style="padding:8px 32px;color:#6b6b6b;text-transform:uppercase;">Total</td><td style="padding:8px 32px;text-align:right;font-weight:bold;">{{usd .Order.Totals.Subtotal}}</td></tr>
      <tr><td style="padding:8px 32px;color:#6b6b6b;text-transform:uppercase;">Shipping</td><td style="padding:8px 32px;text-align:right;font-weight:bold;">{{usd .Order.Totals.Shipping}}</td></tr>
      <tr><td style="padding:8px 32px;color:#6b6b6b;text-transform:uppercase;">VAT (15% included)</td><td style="padding:8px 32px;text-align:right;font-weight:bold;">{{usd .Order.Totals.VAT}}</td></tr>
      <tr><td style="padding:16px 32px;color:#ffffff;text-transform:uppercase;background-color:#101010;">Grand Total</td><td style="padding:16px 32px;text-align:right;font-weight:bold;color:#ffffff;background-color:#101010;">{{usd .Order.Totals.GrandTotal}}</td></tr>
    </table>
    <div style="padding:24px 32px;">
      <h3 style="margin:0 0 12px;color:#d87d4a;text-transform:uppercase;letter-spacing:0.9px;">Shipping Address</h3>
      <p style="margin:0;color:#101010;line-height:25px;">{{.Order.Form.Name}}<br />{{.Order.Form.Address}}<br />{{.Order.Form.City}}, {{.Order.Form.ZipCode}}<br />{{.Order.Form.Country}}</p>
    </div>
    <div style="padding:24px 32px;text-align:center;background-color:#101010;color:#ffffff;">
      <p style="margin:0;">Thank you for shopping with Audiophile!</p>
    </div>
  </div>
</body>
</html>
`))

type confirmationData struct {
	Order     domain.Order
	ImageURLs map[string]string
}

func renderConfirmation(order domain.Order, baseURL string) ([]byte, error) {
	urls := make(map[string]string, len(order.Items))
	for _, item := range order.Items {
		urls[item.ID] = absoluteImageURL(baseURL, item.Image)
	}
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, confirmationData{Order: order, ImageURLs: urls}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatUSD renders whole currency units, the way the storefront displays
// prices (no fractional cents).
func formatUSD(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return sign + "$" + string(out)
}
