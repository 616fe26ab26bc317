// Package brformat concentra a formatação de telefones, datas e valores
// monetários no padrão brasileiro usado pelas duas interfaces (web e terminal).
package brformat

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Phone aplica a máscara (NN) NNNNN-NNNN a um telefone com DDD (11 dígitos).
// Entradas vazias devolvem vazio; outros comprimentos são devolvidos só com dígitos.
func Phone(raw string) string {
	if raw == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 11 {
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	}
	return digits
}

// ParseDecimal interpreta valores numéricos tanto no formato brasileiro
// (1.234,56) quanto no neutro (1234.56). Política única para todo valor
// monetário que entra no sistema, vindo de formulário ou de planilha.
// Vazio devolve zero.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

// Money formata um valor monetário como R$ 1.234,56 (locale pt-BR).
func Money(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// ISOToBR converte uma data ISO ('2023-12-31T23:59:59' ou '2023-12-31') para
// DD/MM/YYYY HH:MM:SS (com horário) ou DD/MM/YYYY (sem horário).
func ISOToBR(iso string) (string, error) {
	if strings.Contains(iso, "T") {
		t, err := time.Parse("2006-01-02T15:04:05", iso)
		if err != nil {
			return "", errors.New("formato ISO inválido: use 'YYYY-MM-DDTHH:MM:SS' ou 'YYYY-MM-DD'")
		}
		return t.Format("02/01/2006 15:04:05"), nil
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", errors.New("formato ISO inválido: use 'YYYY-MM-DDTHH:MM:SS' ou 'YYYY-MM-DD'")
	}
	return t.Format("02/01/2006"), nil
}

// BRToISO converte uma data DD/MM/YYYY para YYYY-MM-DD.
func BRToISO(br string) (string, error) {
	t, err := time.Parse("02/01/2006", br)
	if err != nil {
		return "", errors.New("formato inválido: use 'DD/MM/YYYY'")
	}
	return t.Format("2006-01-02"), nil
}

// NowISO devolve a data e hora atual em ISO 8601 sem fuso (ex: 2025-07-05T19:22:35).
func NowISO() string {
	return time.Now().Format("2006-01-02T15:04:05")
}
