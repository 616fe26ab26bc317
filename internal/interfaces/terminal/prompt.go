package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Apeirom/rental-manager/pkg/brformat"
)

// prompt exibe a pergunta e lê uma linha; ok=false no fim da entrada.
func (u *UI) prompt(label string) (string, bool) {
	fmt.Fprint(u.out, label)
	if !u.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.in.Text()), true
}

// promptRequired repete a pergunta até obter um valor não vazio.
func (u *UI) promptRequired(label string) (string, bool) {
	for {
		v, ok := u.prompt(label)
		if !ok {
			return "", false
		}
		if v != "" {
			return v, true
		}
		fmt.Fprintln(u.out, "Valor obrigatório.")
	}
}

// promptInt repete a pergunta até obter um inteiro; vazio devolve def.
func (u *UI) promptInt(label string, def int) (int, bool) {
	for {
		v, ok := u.prompt(label)
		if !ok {
			return 0, false
		}
		if v == "" {
			return def, true
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintln(u.out, "Entrada inválida. Digite um número inteiro.")
			continue
		}
		return n, true
	}
}

// promptMoney repete a pergunta até obter um valor monetário; vazio vale zero.
func (u *UI) promptMoney(label string) (decimal.Decimal, bool) {
	for {
		v, ok := u.prompt(label)
		if !ok {
			return decimal.Zero, false
		}
		d, err := brformat.ParseDecimal(v)
		if err != nil {
			fmt.Fprintln(u.out, "Entrada inválida. Use o formato 1.234,56 ou 1234.56.")
			continue
		}
		return d, true
	}
}
