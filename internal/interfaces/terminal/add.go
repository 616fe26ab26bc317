package terminal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/Apeirom/rental-manager/internal/domain"
	"github.com/Apeirom/rental-manager/internal/domain/entity"
	"github.com/Apeirom/rental-manager/internal/infrastructure/pdf"
)

// Fluxos de cadastro. Cada um pergunta os campos na ordem da ficha e delega a
// criação ao Store.

func (u *UI) addTenant() {
	fmt.Fprintln(u.out, "=== ADICIONAR INQUILINO ===")
	name, ok := u.promptRequired("Nome: ")
	if !ok {
		return
	}
	cpf, _ := u.prompt("Caso pessoa física insira o CPF: ")
	cnpj, _ := u.prompt("Caso pessoa jurídica insira o CNPJ: ")
	u.store.AddTenant(name, cpf, cnpj)
	fmt.Fprintln(u.out, "\nInquilino adicionado com sucesso!")
}

func (u *UI) addProperty() {
	fmt.Fprintln(u.out, "=== ADICIONAR IMÓVEL ===")
	name, ok := u.promptRequired("Nome do imóvel (apelido ou sala): ")
	if !ok {
		return
	}
	owner, _ := u.prompt("Nome do proprietário: ")
	address, _ := u.prompt("Endereço: ")
	rooms, ok := u.promptInt("Número de salas: ", 0)
	if !ok {
		return
	}
	u.store.AddProperty(name, owner, address, rooms)
	fmt.Fprintln(u.out, "\nImóvel adicionado com sucesso!")
}

func (u *UI) addAgency() {
	fmt.Fprintln(u.out, "=== ADICIONAR IMOBILIÁRIA ===")
	name, ok := u.promptRequired("Nome da imobiliária: ")
	if !ok {
		return
	}
	cnpj, _ := u.prompt("CNPJ: ")
	commission, ok := u.promptMoney("Comissão (ex: 0,1): ")
	if !ok {
		return
	}
	phone, _ := u.prompt("Telefone (opcional): ")
	address, _ := u.prompt("Endereço (opcional): ")
	u.store.AddAgency(name, cnpj, commission, phone, address)
	fmt.Fprintln(u.out, "\nImobiliária adicionada com sucesso!")
}

func (u *UI) addGuarantor() {
	fmt.Fprintln(u.out, "=== ADICIONAR FIADOR ===")
	name, ok := u.promptRequired("Nome completo: ")
	if !ok {
		return
	}
	cpf, _ := u.prompt("CPF (opcional - deixe em branco para PJ): ")
	cnpj, _ := u.prompt("CNPJ (opcional - deixe em branco para PF): ")
	if _, err := u.store.AddGuarantor(name, cpf, cnpj); err != nil {
		fmt.Fprintf(u.out, "\nOcorreu um erro ao adicionar o item: %v\n", err)
		return
	}
	fmt.Fprintln(u.out, "\nFiador adicionado com sucesso!")
}

func (u *UI) addBailInsurance() {
	fmt.Fprintln(u.out, "=== ADICIONAR SEGURO FIANÇA ===")
	value, ok := u.promptMoney("Valor coberto pelo seguro: ")
	if !ok {
		return
	}
	company, ok := u.promptRequired("Nome da seguradora: ")
	if !ok {
		return
	}
	validity, _ := u.prompt("Data de validade (DD/MM/YYYY): ")
	u.store.AddBailInsurance(value, company, validity)
	fmt.Fprintln(u.out, "\nSeguro fiança adicionado com sucesso!")
}

// guaranteeDetails conduz o subdiálogo de garantia do contrato. ok=false
// significa seleção cancelada ou inválida.
func (u *UI) guaranteeDetails() (kind entity.GuaranteeKind, deposit decimal.Decimal, guaranteeID string, ok bool) {
	fmt.Fprintln(u.out, "\nTipo de garantia:\n1. Caução\n2. Fiador\n3. Seguro fiança")
	choice, okIn := u.promptInt("Escolha (1-3): ", 0)
	if !okIn {
		return "", decimal.Zero, "", false
	}
	switch choice {
	case 1:
		deposit, okIn = u.promptMoney("Valor da caução: ")
		return entity.GuaranteeDeposit, deposit, "", okIn
	case 2:
		items := u.listGuarantors(false)
		idx := u.selectIndex(len(items), "fiador")
		if idx < 0 {
			return "", decimal.Zero, "", false
		}
		return entity.GuaranteeGuarantor, decimal.Zero, items[idx].ID, true
	case 3:
		items := u.listBailInsurances(false)
		idx := u.selectIndex(len(items), "seguro fiança")
		if idx < 0 {
			return "", decimal.Zero, "", false
		}
		return entity.GuaranteeBailInsurance, decimal.Zero, items[idx].ID, true
	}
	fmt.Fprintln(u.out, "Opção de garantia inválida.")
	return "", decimal.Zero, "", false
}

func (u *UI) addContract() {
	fmt.Fprintln(u.out, "=== ADICIONAR CONTRATO ===")
	kind, deposit, guaranteeID, ok := u.guaranteeDetails()
	if !ok {
		fmt.Fprintln(u.out, "A seleção da garantia é obrigatória. Operação cancelada.")
		return
	}
	rent, ok := u.promptMoney("Valor do aluguel: ")
	if !ok {
		return
	}
	room, _ := u.prompt("Nome da sala: ")

	properties := u.listProperties(false)
	pIdx := u.selectIndex(len(properties), "imóvel")
	if pIdx < 0 {
		fmt.Fprintln(u.out, "A seleção de um Imóvel é obrigatória. Operação cancelada.")
		return
	}
	tenants := u.listTenants(false)
	tIdx := u.selectIndex(len(tenants), "inquilino")
	if tIdx < 0 {
		fmt.Fprintln(u.out, "A seleção de um Inquilino é obrigatória. Operação cancelada.")
		return
	}
	agencies := u.listAgencies(false)
	aIdx := u.selectIndex(len(agencies), "imobiliária")
	if aIdx < 0 {
		fmt.Fprintln(u.out, "A seleção de uma Imobiliária é obrigatória. Operação cancelada.")
		return
	}
	filePath, _ := u.prompt("Caminho do arquivo do contrato (opcional): ")

	_, err := u.store.AddContract(kind, deposit, rent, room,
		properties[pIdx].ID, tenants[tIdx].ID, agencies[aIdx].ID, guaranteeID, filePath)
	if err != nil {
		fmt.Fprintf(u.out, "\nOcorreu um erro ao adicionar o item: %v\n", err)
		return
	}
	fmt.Fprintln(u.out, "\nContrato adicionado com sucesso!")
}

func (u *UI) addPayment() {
	fmt.Fprintln(u.out, "=== ADICIONAR PAGAMENTO ===")
	contracts := u.listContracts(false)
	idx := u.selectIndex(len(contracts), "contrato")
	if idx < 0 {
		fmt.Fprintln(u.out, "A seleção de um Contrato é obrigatória. Operação cancelada.")
		return
	}
	receipt, _ := u.prompt("Caminho do comprovante (em branco para gerar recibo): ")
	month, ok := u.promptInt("Mês de referência (1-12): ", 0)
	if !ok {
		return
	}
	year, ok := u.promptInt("Ano de referência: ", 0)
	if !ok {
		return
	}
	paymentID := u.store.AddPayment(contracts[idx].ID, receipt, month, year)
	if receipt == "" {
		if path, err := u.generateReceipt(paymentID); err != nil {
			fmt.Fprintf(u.out, "Recibo não gerado: %v\n", err)
		} else {
			fmt.Fprintf(u.out, "Recibo gerado em %s\n", path)
		}
	}
	fmt.Fprintln(u.out, "\nPagamento adicionado com sucesso!")
}

// generateReceipt resolve as entidades do pagamento, grava o PDF do recibo no
// diretório de documentos e registra o caminho no próprio pagamento.
func (u *UI) generateReceipt(paymentID string) (string, error) {
	payment := u.store.FindPaymentByID(paymentID)
	if payment == nil {
		return "", fmt.Errorf("%w: pagamento %s", domain.ErrNotFound, paymentID)
	}
	contract := u.store.FindContractByID(payment.ContractID)
	if contract == nil {
		return "", fmt.Errorf("%w: pagamento %s referencia contrato %s", domain.ErrBrokenReference, payment.ID, payment.ContractID)
	}
	tenant := u.store.FindTenantByID(contract.TenantID)
	property := u.store.FindPropertyByID(contract.PropertyID)
	agency := u.store.FindAgencyByID(contract.RealEstateID)
	if tenant == nil || property == nil || agency == nil {
		return "", fmt.Errorf("%w: contrato %s com referências pendentes", domain.ErrBrokenReference, contract.ID)
	}

	doc, err := u.receipts.GenerateReceipt(payment, contract, tenant, property, agency)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(u.docsDir, "recibos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, pdf.ReceiptFileName(payment, tenant))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", err
	}
	payment.ReceiptPath = path
	u.log.Info().Str("payment_id", payment.ID).Str("path", path).Msg("recibo gerado")
	return path, nil
}

func (u *UI) addExtract() {
	fmt.Fprintln(u.out, "=== ADICIONAR EXTRATO ===")
	contracts := u.listContracts(false)
	idx := u.selectIndex(len(contracts), "contrato")
	if idx < 0 {
		fmt.Fprintln(u.out, "A seleção de um Contrato é obrigatória. Operação cancelada.")
		return
	}
	month, ok := u.promptInt("Mês de referência (1-12): ", 0)
	if !ok {
		return
	}
	year, ok := u.promptInt("Ano de referência: ", 0)
	if !ok {
		return
	}
	rent, ok := u.promptMoney("Valor do aluguel: ")
	if !ok {
		return
	}
	receipt, _ := u.prompt("Caminho do comprovante (opcional): ")
	iptu, ok := u.promptMoney("Valor do IPTU: ")
	if !ok {
		return
	}
	water, ok := u.promptMoney("Valor da água: ")
	if !ok {
		return
	}
	agreement, ok := u.promptMoney("Valor do acordo: ")
	if !ok {
		return
	}
	u.store.AddExtract(contracts[idx].ID, month, year, rent, receipt, iptu, water, agreement)
	fmt.Fprintln(u.out, "\nExtrato adicionado com sucesso!")
}
