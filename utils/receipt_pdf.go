package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"expresocargas/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// GenerateReceiptPDF renders the voucher receipt for a submitted preorder:
// one copy for the client and one for the branch file, kept whole on the
// page.
func GenerateReceiptPDF(preorder *models.Preorder, branch *models.Branch) ([]byte, error) {
	if preorder == nil {
		return nil, nil
	}

	formattedDate := "-"
	if !preorder.CreatedAt.IsZero() {
		formattedDate = preorder.CreatedAt.Format("02-01-2006")
	}

	contacts := ""
	if branch != nil {
		contacts = branch.Phone
	}

	copyTitles := []string{"Copia Cliente", "Copia Sucursal"}

	tmpl, err := template.ParseFiles("templates/receipt_template.html")
	if err != nil {
		return nil, err
	}

	var fullHTML bytes.Buffer
	for _, title := range copyTitles {
		data := models.ReceiptPDFData{
			Branch:     branch,
			Preorder:   preorder,
			Contacts:   contacts,
			Date:       formattedDate,
			Total:      preorder.Price,
			TotalWords: AmountToWords(preorder.Price),
			CopyTitle:  title,
			Packages:   len(preorder.Packages),
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, err
		}

		fullHTML.WriteString("<div class='receipt-copy'>")
		fullHTML.Write(buf.Bytes())
		fullHTML.WriteString("</div>")
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.receipt-copy {
			page-break-inside: avoid;
			border: none;
		}
		</style>
		</head>
		<body>` + fullHTML.String() + `</body></html>`

	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "receipt_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
