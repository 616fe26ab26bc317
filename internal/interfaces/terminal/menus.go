package terminal

import "fmt"

// Nomes das classes na ordem das opções 1-8 do menu.
var entityTitles = []string{
	"Inquilino", "Imóvel", "Contrato", "Pagamento",
	"Imobiliária", "Extrato", "Fiador", "Seguro Fiança",
}

func (u *UI) printEntityMenu() {
	for i, title := range entityTitles {
		fmt.Fprintf(u.out, "%d. %s\n", i+1, title)
	}
}

// viewData exibe a listagem de uma classe, com o filtro opcional de registros
// ligados a contratos vigentes.
func (u *UI) viewData() {
	fmt.Fprintln(u.out, "\n===== VISUALIZAR DADOS =====")
	u.printEntityMenu()
	choice, ok := u.promptInt("Escolha a classe para visualizar: ", 0)
	if !ok {
		return
	}
	answer, ok := u.prompt("Deseja ver apenas registros com contratos ativos? (s/n): ")
	if !ok {
		return
	}
	onlyActing := answer == "s" || answer == "S"

	switch choice {
	case 1:
		u.listTenants(onlyActing)
	case 2:
		u.listProperties(onlyActing)
	case 3:
		u.listContracts(onlyActing)
	case 4:
		u.listPayments(onlyActing)
	case 5:
		u.listAgencies(onlyActing)
	case 6:
		u.listExtracts(onlyActing)
	case 7:
		u.listGuarantors(onlyActing)
	case 8:
		u.listBailInsurances(onlyActing)
	default:
		fmt.Fprintln(u.out, "Opção inválida.")
	}
}

// removeItem remove o item escolhido da classe escolhida. Remover não tem
// cascata: registros que referenciavam o item permanecem.
func (u *UI) removeItem() {
	fmt.Fprintln(u.out, "\n===== REMOVER ITEM =====")
	u.printEntityMenu()
	choice, ok := u.promptInt("Escolha o tipo de item para remover: ", 0)
	if !ok {
		return
	}

	removed := false
	switch choice {
	case 1:
		items := u.listTenants(false)
		if idx := u.selectIndex(len(items), "inquilino"); idx >= 0 {
			u.store.RemoveTenant(items[idx].ID)
			removed = true
		}
	case 2:
		items := u.listProperties(false)
		if idx := u.selectIndex(len(items), "imóvel"); idx >= 0 {
			u.store.RemoveProperty(items[idx].ID)
			removed = true
		}
	case 3:
		items := u.listContracts(false)
		if idx := u.selectIndex(len(items), "contrato"); idx >= 0 {
			u.store.RemoveContract(items[idx].ID)
			removed = true
		}
	case 4:
		items := u.listPayments(false)
		if idx := u.selectIndex(len(items), "pagamento"); idx >= 0 {
			u.store.RemovePayment(items[idx].ID)
			removed = true
		}
	case 5:
		items := u.listAgencies(false)
		if idx := u.selectIndex(len(items), "imobiliária"); idx >= 0 {
			u.store.RemoveAgency(items[idx].ID)
			removed = true
		}
	case 6:
		items := u.listExtracts(false)
		if idx := u.selectIndex(len(items), "extrato"); idx >= 0 {
			u.store.RemoveExtract(items[idx].ID)
			removed = true
		}
	case 7:
		items := u.listGuarantors(false)
		if idx := u.selectIndex(len(items), "fiador"); idx >= 0 {
			u.store.RemoveGuarantor(items[idx].ID)
			removed = true
		}
	case 8:
		items := u.listBailInsurances(false)
		if idx := u.selectIndex(len(items), "seguro fiança"); idx >= 0 {
			u.store.RemoveBailInsurance(items[idx].ID)
			removed = true
		}
	default:
		fmt.Fprintln(u.out, "Opção inválida.")
		return
	}

	if removed {
		fmt.Fprintf(u.out, "\n%s removido com sucesso!\n", entityTitles[choice-1])
	}
}

// editItem altera um atributo de um item pelo registro de campos editáveis da
// classe.
func (u *UI) editItem() {
	fmt.Fprintln(u.out, "=== EDIÇÃO DE INFORMAÇÕES ===")
	u.printEntityMenu()
	choice, ok := u.promptInt("Escolha o tipo de item para editar: ", 0)
	if !ok {
		return
	}

	switch choice {
	case 1:
		items := u.listTenants(false)
		if idx := u.selectIndex(len(items), "inquilino"); idx >= 0 {
			u.editFields(u.tenantFields(items[idx]))
		}
	case 2:
		items := u.listProperties(false)
		if idx := u.selectIndex(len(items), "imóvel"); idx >= 0 {
			u.editFields(u.propertyFields(items[idx]))
		}
	case 3:
		items := u.listContracts(false)
		if idx := u.selectIndex(len(items), "contrato"); idx >= 0 {
			u.editFields(u.contractFields(items[idx]))
		}
	case 4:
		items := u.listPayments(false)
		if idx := u.selectIndex(len(items), "pagamento"); idx >= 0 {
			u.editFields(u.paymentFields(items[idx]))
		}
	case 5:
		items := u.listAgencies(false)
		if idx := u.selectIndex(len(items), "imobiliária"); idx >= 0 {
			u.editFields(u.agencyFields(items[idx]))
		}
	case 6:
		items := u.listExtracts(false)
		if idx := u.selectIndex(len(items), "extrato"); idx >= 0 {
			u.editFields(u.extractFields(items[idx]))
		}
	case 7:
		items := u.listGuarantors(false)
		if idx := u.selectIndex(len(items), "fiador"); idx >= 0 {
			u.editFields(u.guarantorFields(items[idx]))
		}
	case 8:
		items := u.listBailInsurances(false)
		if idx := u.selectIndex(len(items), "seguro fiança"); idx >= 0 {
			u.editFields(u.bailInsuranceFields(items[idx]))
		}
	default:
		fmt.Fprintln(u.out, "Opção inválida.")
	}
}
