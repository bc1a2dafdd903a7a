// Package render turns an assembled quote record into the commercial-offer
// document: first HTML, then PDF via headless Chrome.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"cartonquote/internal/quote"
)

var offerTemplate = template.Must(template.New("offer").Funcs(template.FuncMap{
	"money":   formatMoney,
	"dataURI": dataURI,
}).Parse(offerHTML))

// HTML renders the offer document for the given quote.
func HTML(q quote.Quote) (string, error) {
	var buf bytes.Buffer
	if err := offerTemplate.Execute(&buf, q); err != nil {
		return "", fmt.Errorf("render offer template: %w", err)
	}
	return buf.String(), nil
}

// formatMoney renders a rounded amount with spaces between thousand groups,
// the way prices appear in Russian documents: 18 600 руб.
func formatMoney(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func dataURI(b64 string) template.URL {
	return template.URL("data:image/png;base64," + b64)
}

const offerHTML = `<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="UTF-8">
    <title>Коммерческое предложение {{.LeadID}}</title>
    <style>
        body { font-family: "DejaVu Sans", Arial, sans-serif; margin: 0; padding: 20px; background-color: #f2f3f5; color: #111827; }
        .container { max-width: 800px; margin: 0 auto; background: #ffffff; padding: 30px; border-radius: 12px; }
        .company-logo img { max-width: 120px; max-height: 60px; }
        .greeting { font-size: 14pt; line-height: 1.45; margin: 25px 0; }
        .order-info { background: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .order-info h3 { margin: 0 0 15px 0; font-size: 16pt; }
        .order-list li { margin: 8px 0; font-size: 12pt; }
        h2 { background: #f0d020; padding: 10px; margin: 25px 0 15px 0; font-size: 16pt; border-radius: 4px; }
        .tiers { display: flex; justify-content: space-between; margin: 15px 0; }
        .tier { text-align: center; padding: 15px; border: 2px solid #e5e7eb; border-radius: 8px; flex: 1; margin: 0 5px; }
        .tier h4 { margin: 0 0 10px 0; font-size: 13pt; }
        .tier .price { font-size: 17pt; font-weight: bold; color: #004277; }
        .tier .lead { font-size: 10pt; color: #4b5563; margin-top: 8px; }
        table { width: 100%; border-collapse: collapse; margin: 12px 0; }
        th, td { padding: 8px 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
        td.num { text-align: right; }
        .cta { background: #004277; color: white; padding: 15px; border-radius: 4px; text-align: center; margin-top: 20px; }
        .cta a { color: #f0d020; }
        .qr-codes { display: flex; justify-content: center; gap: 30px; margin-top: 15px; }
        .qr-codes img { width: 80px; height: 80px; border: 1px solid #e5e7eb; border-radius: 5px; }
        .qr-label { font-size: 9pt; color: #e5e7eb; }
        .footer { margin-top: 30px; text-align: center; font-size: 11pt; color: #4b5563; }
    </style>
</head>
<body>
<div class="container">
    {{if .CTA.Assets.Logo}}
    <div class="company-logo"><img src="{{dataURI .CTA.Assets.Logo}}" alt="Логотип"></div>
    {{end}}

    <div class="greeting">
        {{if .ContactName -}}
        <p>Доброго времени суток, {{.ContactName}}! Благодарим вас за выбор нашей компании. Для вашего удобства мы продублировали ваш заказ:</p>
        {{- else -}}
        <p>Доброго времени суток! Благодарим вас за выбор нашей компании. Для вашего удобства мы продублировали ваш заказ:</p>
        {{- end}}
    </div>

    <div class="order-info">
        <h3>Ваш заказ:</h3>
        <ol class="order-list">
            <li>Код FEFCO: {{.Summary.FEFCO}}</li>
            <li>Тип картона: {{.Summary.Material}}</li>
            <li>Марка картона: {{if .Summary.Grade}}{{.Summary.Grade}}{{else}}не указана{{end}}</li>
            <li>Размеры: {{.Summary.Dimensions}}</li>
            <li>Печать: {{.Summary.Print}}</li>
            <li>Количество: {{.Summary.Qty}} шт</li>
            {{if .Summary.SKU}}<li>Артикул: {{.Summary.SKU}}</li>{{end}}
        </ol>
    </div>

    {{if .Tiers}}
    <h2>Варианты сотрудничества</h2>
    <div class="tiers">
        {{range .Tiers}}
        <div class="tier">
            <h4>{{.Name}}</h4>
            <div class="price">{{money .TotalPrice}} руб</div>
            <div class="lead">готовность {{.DeliveryDate}} ({{.LeadTimeDays}} раб. дн.)</div>
        </div>
        {{end}}
    </div>
    {{end}}

    {{if .VolumeTable}}
    <h2>Цены при больших тиражах</h2>
    <table>
        <tr><th>Тираж, шт</th><th>Цена за единицу, руб</th></tr>
        {{range .VolumeTable}}
        <tr><td class="num">{{.Volume}}</td><td class="num">{{money .Price}}</td></tr>
        {{end}}
    </table>
    {{end}}

    <h2>Важная информация</h2>
    <ul>
        {{range .Notes}}<li>{{.}}</li>{{end}}
    </ul>

    <div class="cta">
        <h3>Готовы заказать?</h3>
        <p>Свяжитесь с нами для подтверждения заказа</p>
        {{if .CTA.Contacts.Telegram}}<p>Telegram: {{.CTA.Contacts.Telegram}}</p>{{end}}
        {{if .CTA.Contacts.Phone}}<p>Телефон: {{.CTA.Contacts.Phone}}</p>{{end}}
        {{if .CTA.Contacts.WhatsApp}}<p>WhatsApp: {{.CTA.Contacts.WhatsApp}}</p>{{end}}
        {{if or .CTA.Assets.TelegramQR .CTA.Assets.WhatsAppQR}}
        <div class="qr-codes">
            {{if .CTA.Assets.TelegramQR}}<div><img src="{{dataURI .CTA.Assets.TelegramQR}}" alt="Telegram QR"><div class="qr-label">Telegram</div></div>{{end}}
            {{if .CTA.Assets.WhatsAppQR}}<div><img src="{{dataURI .CTA.Assets.WhatsAppQR}}" alt="WhatsApp QR"><div class="qr-label">WhatsApp</div></div>{{end}}
        </div>
        {{end}}
    </div>

    <div class="footer">
        <p>С уважением, {{.CTA.Contacts.Name}}</p>
        <p>Предложение № {{.LeadID}}, действительно до {{.ValidUntil}}</p>
    </div>
</div>
</body>
</html>
`
