package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Apeirom/rental-manager/internal/domain"
	"github.com/Apeirom/rental-manager/internal/domain/entity"
	"github.com/Apeirom/rental-manager/pkg/brformat"
)

// field é um atributo editável de uma entidade: rótulo, leitura do valor
// atual e gravação a partir do texto digitado. O registro explícito por
// entidade define o que pode ser editado; identificadores e referências
// ficam de fora.
type field struct {
	name string
	get  func() string
	set  func(string) error
}

func stringField(name string, p *string) field {
	return field{name, func() string { return *p }, func(v string) error { *p = v; return nil }}
}

func intField(name string, p *int) field {
	return field{name, func() string { return strconv.Itoa(*p) }, func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %q não é um inteiro", domain.ErrValidation, v)
		}
		*p = n
		return nil
	}}
}

func (u *UI) tenantFields(t *entity.Tenant) []field {
	return []field{
		stringField("name", &t.Name),
		stringField("cpf", &t.CPF),
		stringField("cnpj", &t.CNPJ),
	}
}

func (u *UI) propertyFields(p *entity.Property) []field {
	return []field{
		stringField("property_name", &p.PropertyName),
		stringField("owner_name", &p.OwnerName),
		stringField("address", &p.Address),
		intField("room_count", &p.RoomCount),
	}
}

func (u *UI) agencyFields(a *entity.Agency) []field {
	return []field{
		stringField("name", &a.Name),
		stringField("cnpj", &a.CNPJ),
		stringField("address", &a.Address),
		{"commission", func() string { return a.Commission.String() }, func(v string) error {
			d, err := brformat.ParseDecimal(v)
			if err != nil {
				return fmt.Errorf("%w: comissão %q inválida", domain.ErrValidation, v)
			}
			a.Commission = d
			return nil
		}},
		stringField("phone", &a.Phone),
	}
}

func (u *UI) contractFields(c *entity.Contract) []field {
	return []field{
		{"guarantee", func() string { return string(c.Guarantee) }, func(v string) error {
			switch entity.GuaranteeKind(v) {
			case entity.GuaranteeDeposit, entity.GuaranteeGuarantor, entity.GuaranteeBailInsurance:
				c.Guarantee = entity.GuaranteeKind(v)
				return nil
			}
			return fmt.Errorf("%w: garantia %q desconhecida", domain.ErrValidation, v)
		}},
		{"rental_deposit", func() string { return c.RentalDeposit.String() }, func(v string) error {
			d, err := brformat.ParseDecimal(v)
			if err != nil {
				return fmt.Errorf("%w: caução %q inválida", domain.ErrValidation, v)
			}
			c.RentalDeposit = d
			return nil
		}},
		{"rent_amount", func() string { return c.RentAmount.String() }, func(v string) error {
			d, err := brformat.ParseDecimal(v)
			if err != nil {
				return fmt.Errorf("%w: aluguel %q inválido", domain.ErrValidation, v)
			}
			c.RentAmount = d
			return nil
		}},
		stringField("room_name", &c.RoomName),
		stringField("file_path", &c.FilePath),
		{"acting", func() string { return strconv.FormatBool(c.Acting) }, func(v string) error {
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true", "1", "sim", "s", "verdadeiro":
				c.SetActive(true)
			default:
				c.SetActive(false)
			}
			return nil
		}},
	}
}

func (u *UI) paymentFields(p *entity.Payment) []field {
	return []field{
		stringField("receipt_path", &p.ReceiptPath),
		intField("month_ref", &p.MonthRef),
		intField("year_ref", &p.YearRef),
		stringField("payment_date", &p.PaymentDate),
	}
}

func (u *UI) extractFields(e *entity.Extract) []field {
	return []field{
		intField("month_ref", &e.MonthRef),
		intField("year_ref", &e.YearRef),
		{"rent_amount", func() string { return e.RentAmount.String() }, func(v string) error {
			d, err := brformat.ParseDecimal(v)
			if err != nil {
				return fmt.Errorf("%w: aluguel %q inválido", domain.ErrValidation, v)
			}
			e.RentAmount = d
			return nil
		}},
		{"iptu", func() string { return e.IPTU.String() }, func(v string) error {
			d, err := brformat.ParseDecimal(v)
			if err != nil {
				return fmt.Errorf("%w: iptu %q inválido", domain.ErrValidation, v)
			}
			e.IPTU = d
			return nil
		}},
		{"water", func() string { return e.Water.String() }, func(v string) error {
			d, err := brformat.ParseDecimal(v)
			if err != nil {
				return fmt.Errorf("%w: água %q inválida", domain.ErrValidation, v)
			}
			e.Water = d
			return nil
		}},
		{"agreement", func() string { return e.Agreement.String() }, func(v string) error {
			d, err := brformat.ParseDecimal(v)
			if err != nil {
				return fmt.Errorf("%w: acordo %q inválido", domain.ErrValidation, v)
			}
			e.Agreement = d
			return nil
		}},
		stringField("receipt_path", &e.ReceiptPath),
	}
}

func (u *UI) guarantorFields(g *entity.Guarantor) []field {
	return []field{
		stringField("name", &g.Name),
		stringField("cpf", &g.CPF),
		stringField("cnpj", &g.CNPJ),
	}
}

func (u *UI) bailInsuranceFields(b *entity.BailInsurance) []field {
	return []field{
		{"value", func() string { return b.Value.String() }, func(v string) error {
			d, err := brformat.ParseDecimal(v)
			if err != nil {
				return fmt.Errorf("%w: valor %q inválido", domain.ErrValidation, v)
			}
			b.Value = d
			return nil
		}},
		stringField("insurance_company", &b.InsuranceCompany),
		stringField("vality", &b.Validity),
	}
}

// editFields lista os atributos e aplica a alteração escolhida.
func (u *UI) editFields(fields []field) {
	fmt.Fprintln(u.out, "\n--- ATRIBUTOS DISPONÍVEIS PARA EDIÇÃO ---")
	for i, f := range fields {
		fmt.Fprintf(u.out, "%d. %s = %s\n", i+1, f.name, f.get())
	}
	idx, ok := u.promptInt("\nEscolha o número do atributo para editar: ", 0)
	if !ok || idx < 1 || idx > len(fields) {
		fmt.Fprintln(u.out, "Seleção de atributo inválida.")
		return
	}
	f := fields[idx-1]
	v, ok := u.prompt(fmt.Sprintf("Novo valor para '%s' (atual: %s): ", f.name, f.get()))
	if !ok {
		return
	}
	if err := f.set(v); err != nil {
		fmt.Fprintf(u.out, "Erro ao atualizar o valor: %v\n", err)
		return
	}
	fmt.Fprintf(u.out, "\nAtributo '%s' atualizado para: %s\n", f.name, f.get())
}
