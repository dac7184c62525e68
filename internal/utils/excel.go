package utils

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"menuiserie_back_end/internal/models"
)

// Export tableur : un classeur, une feuille, une ligne d'en-tête puis
// une ligne par enregistrement. Colonnes et libellés fixes, valeurs
// absentes rendues "N/A". Transformation à sens unique, pas d'import.

var orderHeaders = []string{
	"Order ID", "Customer Name", "Customer Email", "Customer Mobile",
	"Product Name", "Quantity", "Price", "Total Amount",
	"Delivery Address", "Status", "Order Date",
}

var customerHeaders = []string{
	"Customer ID", "Name", "Email", "Mobile", "Joined Date",
}

const exportDateLayout = "02/01/2006 15:04:05"

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func orderRow(o models.Order) []interface{} {
	return []interface{}{
		o.ID.String(),
		o.CustomerName,
		orNA(o.CustomerEmail),
		orNA(o.CustomerMobile),
		o.ProductName,
		o.Quantity,
		o.ProductPrice,
		o.TotalAmount,
		o.DeliveryAddress,
		o.Status,
		o.CreatedAt.Format(exportDateLayout),
	}
}

func newWorkbook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	return f, nil
}

// BuildOrdersWorkbook produit le classeur de la liste des commandes
// (feuille "Orders").
func BuildOrdersWorkbook(orders []models.Order) (*excelize.File, error) {
	f, err := newWorkbook("Orders")
	if err != nil {
		return nil, err
	}

	headers := make([]interface{}, len(orderHeaders))
	for i, h := range orderHeaders {
		headers[i] = h
	}
	if err := writeRow(f, "Orders", 1, headers); err != nil {
		return nil, err
	}

	for i, o := range orders {
		if err := writeRow(f, "Orders", i+2, orderRow(o)); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// BuildOrderWorkbook produit le classeur d'une commande seule
// (feuille "Order").
func BuildOrderWorkbook(o models.Order) (*excelize.File, error) {
	f, err := newWorkbook("Order")
	if err != nil {
		return nil, err
	}

	headers := make([]interface{}, len(orderHeaders))
	for i, h := range orderHeaders {
		headers[i] = h
	}
	if err := writeRow(f, "Order", 1, headers); err != nil {
		return nil, err
	}
	if err := writeRow(f, "Order", 2, orderRow(o)); err != nil {
		return nil, err
	}
	return f, nil
}

// BuildCustomersWorkbook produit le classeur de la liste des clients
// (feuille "Customers").
func BuildCustomersWorkbook(customers []models.Customer) (*excelize.File, error) {
	f, err := newWorkbook("Customers")
	if err != nil {
		return nil, err
	}

	headers := make([]interface{}, len(customerHeaders))
	for i, h := range customerHeaders {
		headers[i] = h
	}
	if err := writeRow(f, "Customers", 1, headers); err != nil {
		return nil, err
	}

	for i, c := range customers {
		row := []interface{}{
			c.ID.String(),
			orNA(c.Name),
			orNA(c.Email),
			orNA(c.Mobile),
			c.CreatedAt.Format(exportDateLayout),
		}
		if err := writeRow(f, "Customers", i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Noms de fichiers : type d'enregistrement + date du jour, préfixe
// court de l'identifiant pour l'export d'une commande seule.

func OrdersFileName(now time.Time) string {
	return fmt.Sprintf("Orders_%s.xlsx", now.Format("2006-01-02"))
}

func CustomersFileName(now time.Time) string {
	return fmt.Sprintf("Customers_%s.xlsx", now.Format("2006-01-02"))
}

func OrderFileName(id string, now time.Time) string {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("Order_%s_%s.xlsx", short, now.Format("2006-01-02"))
}
