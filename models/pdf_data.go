package models

// ReceiptPDFData feeds the voucher receipt HTML template.
type ReceiptPDFData struct {
	Branch     *Branch  // issuing branch header
	Preorder   *Preorder
	Contacts   string // formatted branch phone line
	Date       string // formatted issue date
	Total      float64
	TotalWords string
	CopyTitle  string
	Packages   int
}
