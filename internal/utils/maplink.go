package utils

import (
	"fmt"
	"net/url"
)

// MapURL construit le lien Google Maps de la boutique : par
// coordonnées si latitude et longitude sont renseignées, sinon par
// recherche d'adresse encodée, sinon chaîne vide.
func MapURL(address string, latitude, longitude *float64) string {
	if latitude != nil && longitude != nil {
		return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", *latitude, *longitude)
	}
	if address != "" {
		return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
	}
	return ""
}
