package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"

	"menuiserie_back_end/internal/models"
)

// NotifyOwnerOrder envoie au propriétaire le récapitulatif HTML d'une
// nouvelle commande. Sans configuration SMTP l'envoi est simplement
// ignoré ; un échec est journalisé, jamais remonté au client.
func NotifyOwnerOrder(order models.Order) {
	host := os.Getenv("SMTP_HOST")
	to := os.Getenv("OWNER_NOTIFY_EMAIL")
	if host == "" || to == "" {
		log.Println("⚠️ SMTP non configuré — notification de commande ignorée")
		return
	}

	subject := fmt.Sprintf("🛒 Nouvelle commande : %s x%d", order.ProductName, order.Quantity)
	if err := sendMail(host, to, subject, orderNotificationHTML(order)); err != nil {
		log.Println("❌ Erreur envoi email commande:", err)
		return
	}
	log.Println("📤 Notification de commande envoyée à", to)
}

func sendMail(host, to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@menuiserie-dubois.fr"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	return client.DialAndSend(msg)
}

func orderNotificationHTML(order models.Order) string {
	contact := order.CustomerEmail
	if contact == "" {
		contact = order.CustomerMobile
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Nouvelle commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Nouvelle commande reçue</h2>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<tr><td style="padding: 8px; border: 1px solid #ddd;">Commande</td><td style="padding: 8px; border: 1px solid #ddd;">%s</td></tr>
			<tr><td style="padding: 8px; border: 1px solid #ddd;">Client</td><td style="padding: 8px; border: 1px solid #ddd;">%s (%s)</td></tr>
			<tr><td style="padding: 8px; border: 1px solid #ddd;">Produit</td><td style="padding: 8px; border: 1px solid #ddd;">%s</td></tr>
			<tr><td style="padding: 8px; border: 1px solid #ddd;">Quantité</td><td style="padding: 8px; border: 1px solid #ddd;">%d</td></tr>
			<tr><td style="padding: 8px; border: 1px solid #ddd;">Total</td><td style="padding: 8px; border: 1px solid #ddd;">%.2f</td></tr>
			<tr><td style="padding: 8px; border: 1px solid #ddd;">Livraison</td><td style="padding: 8px; border: 1px solid #ddd;">%s</td></tr>
		</table>
		<p style="margin-top: 30px; color: #555;">
			La commande est en statut <strong>%s</strong> dans le back-office.
		</p>
	</div>
</body>
</html>`, order.ID.String(), order.CustomerName, contact, order.ProductName,
		order.Quantity, order.TotalAmount, order.DeliveryAddress, order.Status)
}
