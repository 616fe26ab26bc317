package terminal

import (
	"fmt"
	"text/tabwriter"

	"github.com/Apeirom/rental-manager/internal/domain/entity"
	"github.com/Apeirom/rental-manager/pkg/brformat"
)

// Listagens numeradas em tabela. O número exibido é o usado na seleção de
// itens (1..n); cada função devolve a fatia na mesma ordem da exibição.

func orND(s string) string {
	if s == "" {
		return "N/D"
	}
	return s
}

func (u *UI) table() *tabwriter.Writer {
	return tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
}

func (u *UI) listTenants(onlyActing bool) []*entity.Tenant {
	items := u.store.Tenants()
	if onlyActing {
		items = u.store.ActiveTenants()
	}
	tw := u.table()
	fmt.Fprintln(tw, "#\tNome\tCPF\tCNPJ")
	for i, t := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, t.Name, orND(t.CPF), orND(t.CNPJ))
	}
	tw.Flush()
	return items
}

func (u *UI) listProperties(onlyActing bool) []*entity.Property {
	items := u.store.Properties()
	if onlyActing {
		items = u.store.ActiveProperties()
	}
	tw := u.table()
	fmt.Fprintln(tw, "#\tImóvel\tProprietário\tEndereço\tSalas")
	for i, p := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", i+1, p.PropertyName, p.OwnerName, p.Address, p.RoomCount)
	}
	tw.Flush()
	return items
}

func (u *UI) listAgencies(onlyActing bool) []*entity.Agency {
	items := u.store.Agencies()
	if onlyActing {
		items = u.store.ActiveAgencies()
	}
	tw := u.table()
	fmt.Fprintln(tw, "#\tNome\tCNPJ\tComissão\tTelefone\tImóveis")
	for i, a := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n", i+1, a.Name, orND(a.CNPJ), a.Commission.String(), brformat.Phone(a.Phone), len(a.PropertyIDs))
	}
	tw.Flush()
	return items
}

func (u *UI) listContracts(onlyActing bool) []*entity.Contract {
	items := u.store.Contracts()
	if onlyActing {
		items = u.store.ActiveContracts()
	}
	tw := u.table()
	fmt.Fprintln(tw, "#\tInquilino\tImóvel\tSala\tAluguel\tGarantia\tSituação")
	for i, c := range items {
		tenant := "(removido)"
		if t := u.store.FindTenantByID(c.TenantID); t != nil {
			tenant = t.Name
		}
		property := "(removido)"
		if p := u.store.FindPropertyByID(c.PropertyID); p != nil {
			property = p.PropertyName
		}
		status := "Encerrado"
		if c.Acting {
			status = "Vigente"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", i+1, tenant, property, orND(c.RoomName), brformat.Money(c.RentAmount), c.Guarantee, status)
	}
	tw.Flush()
	return items
}

func (u *UI) listPayments(onlyActing bool) []*entity.Payment {
	items := u.store.Payments()
	if onlyActing {
		items = u.store.ActivePayments()
	}
	tw := u.table()
	fmt.Fprintln(tw, "#\tReferência\tData do pagamento\tComprovante")
	for i, p := range items {
		date := p.PaymentDate
		if br, err := brformat.ISOToBR(p.PaymentDate); err == nil {
			date = br
		}
		fmt.Fprintf(tw, "%d\t%02d/%d\t%s\t%s\n", i+1, p.MonthRef, p.YearRef, date, orND(p.ReceiptPath))
	}
	tw.Flush()
	return items
}

func (u *UI) listExtracts(onlyActing bool) []*entity.Extract {
	items := u.store.Extracts()
	if onlyActing {
		items = u.store.ActiveExtracts()
	}
	tw := u.table()
	fmt.Fprintln(tw, "#\tReferência\tAluguel\tIPTU\tÁgua\tAcordo")
	for i, e := range items {
		fmt.Fprintf(tw, "%d\t%02d/%d\t%s\t%s\t%s\t%s\n", i+1, e.MonthRef, e.YearRef,
			brformat.Money(e.RentAmount), brformat.Money(e.IPTU), brformat.Money(e.Water), brformat.Money(e.Agreement))
	}
	tw.Flush()
	return items
}

func (u *UI) listGuarantors(onlyActing bool) []*entity.Guarantor {
	items := u.store.Guarantors()
	if onlyActing {
		items = u.store.ActiveGuarantors()
	}
	tw := u.table()
	fmt.Fprintln(tw, "#\tNome\tCPF\tCNPJ")
	for i, g := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, g.Name, orND(g.CPF), orND(g.CNPJ))
	}
	tw.Flush()
	return items
}

func (u *UI) listBailInsurances(onlyActing bool) []*entity.BailInsurance {
	items := u.store.BailInsurances()
	if onlyActing {
		items = u.store.ActiveBailInsurances()
	}
	tw := u.table()
	fmt.Fprintln(tw, "#\tSeguradora\tValor\tValidade")
	for i, b := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, b.InsuranceCompany, brformat.Money(b.Value), orND(b.Validity))
	}
	tw.Flush()
	return items
}

// selectIndex lê o número escolhido (1..count) e devolve o índice, ou -1 para
// cancelamento e entradas fora do intervalo.
func (u *UI) selectIndex(count int, what string) int {
	if count == 0 {
		fmt.Fprintf(u.out, "Nenhum(a) %s cadastrado(a) para selecionar.\n", what)
		return -1
	}
	n, ok := u.promptInt(fmt.Sprintf("Escolha o número do(a) %s (0 para cancelar): ", what), 0)
	if !ok || n == 0 {
		fmt.Fprintln(u.out, "Seleção cancelada.")
		return -1
	}
	if n < 1 || n > count {
		fmt.Fprintln(u.out, "Número inválido.")
		return -1
	}
	return n - 1
}
