package entity

// Payment representa um pagamento de aluguel registrado com comprovante.
type Payment struct {
	ID          string
	ContractID  string
	ReceiptPath string
	MonthRef    int    // 1–12
	YearRef     int    // ex: 2025
	PaymentDate string // criação, ISO 8601
}
