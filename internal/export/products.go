// Package export renders a shop's catalog as an Excel workbook for shop
// owners and the admin tool.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/dukerupert/kirana/internal/domain"
)

// ContentType is the MIME type of the workbooks written here.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const timeLayout = "2006-01-02 15:04:05"

// productHeaders is the column order of the Products sheet.
var productHeaders = []string{
	"ID", "Name", "Category", "Price", "Original Price", "Unit",
	"Available", "Stock", "Description", "Image", "Created At", "Updated At",
}

// ProductsWorkbook builds a workbook with a Products sheet listing every
// product and a Shop sheet with the shop's details.
func ProductsWorkbook(shop *domain.Shop, products []domain.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, fmt.Errorf("failed to add products sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range productHeaders {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID.String())
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Category)
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		if p.OriginalPrice != nil {
			row.AddCell().SetFloat(p.OriginalPrice.InexactFloat64())
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetString(p.Unit)
		row.AddCell().SetBool(p.IsAvailable)
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetString(p.Image)
		row.AddCell().SetString(formatTime(p.CreatedAt))
		row.AddCell().SetString(formatTime(p.UpdatedAt))
	}

	info, err := file.AddSheet("Shop")
	if err != nil {
		return nil, fmt.Errorf("failed to add shop sheet: %w", err)
	}
	for _, kv := range [][2]string{
		{"ID", shop.ID.String()},
		{"Name", shop.Name},
		{"Category", shop.Category},
		{"Address", shop.Address},
		{"City", shop.City},
		{"Phone", shop.Phone},
		{"Exported At", formatTime(time.Now())},
	} {
		row := info.AddRow()
		row.AddCell().SetString(kv[0])
		row.AddCell().SetString(kv[1])
	}

	return file, nil
}

// WriteProducts writes the workbook for shop to w.
func WriteProducts(w io.Writer, shop *domain.Shop, products []domain.Product) error {
	file, err := ProductsWorkbook(shop, products)
	if err != nil {
		return err
	}
	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Filename is the download name for a shop's export.
func Filename(shop *domain.Shop) string {
	return fmt.Sprintf("products-%s.xlsx", shop.ID.String()[:8])
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}
