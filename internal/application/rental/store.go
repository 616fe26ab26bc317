// Package rental implementa o núcleo do sistema: o Store é o único dono das
// oito coleções em memória e media toda criação, remoção e consulta.
package rental

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Apeirom/rental-manager/internal/domain"
	"github.com/Apeirom/rental-manager/internal/domain/entity"
	"github.com/Apeirom/rental-manager/internal/domain/repository"
	"github.com/Apeirom/rental-manager/pkg/brformat"
	"github.com/Apeirom/rental-manager/pkg/logger"
)

// Store mantém as coleções e delega a persistência ao DataStore. Todas as
// operações passam por um único mutex: o modelo é de escritor único, e o lock
// torna essa fronteira explícita para o servidor web.
type Store struct {
	mu  sync.Mutex
	ds  repository.DataStore
	log *logger.Logger

	tenants        *collection[entity.Tenant]
	properties     *collection[entity.Property]
	agencies       *collection[entity.Agency]
	contracts      *collection[entity.Contract]
	payments       *collection[entity.Payment]
	extracts       *collection[entity.Extract]
	guarantors     *collection[entity.Guarantor]
	bailInsurances *collection[entity.BailInsurance]
}

// NewStore constrói o Store e carrega todas as coleções. A carga é sempre
// completa; falha de leitura é erro de ambiente e impede a inicialização.
func NewStore(ds repository.DataStore, log *logger.Logger) (*Store, error) {
	s := &Store{ds: ds, log: log}
	if err := s.LoadAll(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadAll recarrega as oito coleções a partir da persistência.
func (s *Store) LoadAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenants, err := s.ds.LoadTenants()
	if err != nil {
		return fmt.Errorf("carregar inquilinos: %w", err)
	}
	properties, err := s.ds.LoadProperties()
	if err != nil {
		return fmt.Errorf("carregar imóveis: %w", err)
	}
	agencies, err := s.ds.LoadAgencies()
	if err != nil {
		return fmt.Errorf("carregar imobiliárias: %w", err)
	}
	contracts, err := s.ds.LoadContracts()
	if err != nil {
		return fmt.Errorf("carregar contratos: %w", err)
	}
	payments, err := s.ds.LoadPayments()
	if err != nil {
		return fmt.Errorf("carregar pagamentos: %w", err)
	}
	extracts, err := s.ds.LoadExtracts()
	if err != nil {
		return fmt.Errorf("carregar extratos: %w", err)
	}
	guarantors, err := s.ds.LoadGuarantors()
	if err != nil {
		return fmt.Errorf("carregar fiadores: %w", err)
	}
	insurances, err := s.ds.LoadBailInsurances()
	if err != nil {
		return fmt.Errorf("carregar seguros fiança: %w", err)
	}

	s.tenants = newCollection[entity.Tenant]()
	for _, t := range tenants {
		s.tenants.add(t.ID, t)
	}
	s.properties = newCollection[entity.Property]()
	for _, p := range properties {
		s.properties.add(p.ID, p)
	}
	s.agencies = newCollection[entity.Agency]()
	for _, a := range agencies {
		s.agencies.add(a.ID, a)
	}
	s.contracts = newCollection[entity.Contract]()
	for _, c := range contracts {
		s.contracts.add(c.ID, c)
	}
	s.payments = newCollection[entity.Payment]()
	for _, p := range payments {
		s.payments.add(p.ID, p)
	}
	s.extracts = newCollection[entity.Extract]()
	for _, e := range extracts {
		s.extracts.add(e.ID, e)
	}
	s.guarantors = newCollection[entity.Guarantor]()
	for _, g := range guarantors {
		s.guarantors.add(g.ID, g)
	}
	s.bailInsurances = newCollection[entity.BailInsurance]()
	for _, b := range insurances {
		s.bailInsurances.add(b.ID, b)
	}

	s.log.Info().
		Int("tenants", s.tenants.size()).
		Int("properties", s.properties.size()).
		Int("agencies", s.agencies.size()).
		Int("contracts", s.contracts.size()).
		Msg("coleções carregadas")
	return nil
}

// SaveAll grava incondicionalmente as oito coleções, uma planilha por vez,
// em modo best-effort. Devolve a lista de arquivos que falharam.
func (s *Store) SaveAll() []repository.SaveIssue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.SaveAll(repository.Snapshot{
		Tenants:        s.tenants.values(),
		Properties:     s.properties.values(),
		Agencies:       s.agencies.values(),
		Contracts:      s.contracts.values(),
		Payments:       s.payments.values(),
		Extracts:       s.extracts.values(),
		Guarantors:     s.guarantors.values(),
		BailInsurances: s.bailInsurances.values(),
	})
}

// ── Criação e remoção ─────────────────────────────────────────────────────────

// AddTenant cria um inquilino e devolve o id gerado.
func (s *Store) AddTenant(name, cpf, cnpj string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &entity.Tenant{ID: uuid.New().String(), Name: name, CPF: cpf, CNPJ: cnpj}
	s.tenants.add(t.ID, t)
	return t.ID
}

// RemoveTenant apaga o inquilino se presente.
func (s *Store) RemoveTenant(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants.remove(id)
}

// AddProperty cria um imóvel e devolve o id gerado.
func (s *Store) AddProperty(propertyName, ownerName, address string, roomCount int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &entity.Property{
		ID:           uuid.New().String(),
		PropertyName: propertyName,
		OwnerName:    ownerName,
		Address:      address,
		RoomCount:    roomCount,
	}
	s.properties.add(p.ID, p)
	return p.ID
}

// RemoveProperty apaga o imóvel se presente.
func (s *Store) RemoveProperty(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties.remove(id)
}

// AddAgency cria uma imobiliária e devolve o id gerado.
func (s *Store) AddAgency(name, cnpj string, commission decimal.Decimal, phone, address string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &entity.Agency{
		ID:         uuid.New().String(),
		Name:       name,
		CNPJ:       cnpj,
		Address:    address,
		Commission: commission,
		Phone:      phone,
	}
	s.agencies.add(a.ID, a)
	return a.ID
}

// RemoveAgency apaga a imobiliária se presente.
func (s *Store) RemoveAgency(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agencies.remove(id)
}

// AddContract cria um contrato vigente e registra o imóvel na lista da
// imobiliária. Garantias que não sejam caução exigem guaranteeID e zeram a
// caução; a caução dispensa guaranteeID.
func (s *Store) AddContract(guarantee entity.GuaranteeKind, rentalDeposit, rentAmount decimal.Decimal,
	roomName, propertyID, tenantID, agencyID, guaranteeID, filePath string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if guarantee != entity.GuaranteeDeposit {
		if guaranteeID == "" {
			return "", fmt.Errorf("%w: garantia %q exige um fiador ou seguro fiança", domain.ErrValidation, guarantee)
		}
		rentalDeposit = decimal.Zero
	} else {
		guaranteeID = ""
	}

	c := &entity.Contract{
		ID:            uuid.New().String(),
		Guarantee:     guarantee,
		RentalDeposit: rentalDeposit,
		GuaranteeID:   guaranteeID,
		RentAmount:    rentAmount,
		RoomName:      roomName,
		PropertyID:    propertyID,
		TenantID:      tenantID,
		RealEstateID:  agencyID,
		FilePath:      filePath,
		Acting:        true,
	}
	s.contracts.add(c.ID, c)

	// Atualiza a lista de imóveis da imobiliária correspondente
	if a := s.agencies.get(agencyID); a != nil {
		a.AddProperty(propertyID)
	}
	return c.ID, nil
}

// RemoveContract apaga o contrato se presente. Não há cascata: pagamentos e
// extratos que o referenciam permanecem, com a referência pendente.
func (s *Store) RemoveContract(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts.remove(id)
}

// AddPayment registra um pagamento com a data de criação em ISO 8601.
func (s *Store) AddPayment(contractID, receiptPath string, monthRef, yearRef int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &entity.Payment{
		ID:          uuid.New().String(),
		ContractID:  contractID,
		ReceiptPath: receiptPath,
		MonthRef:    monthRef,
		YearRef:     yearRef,
		PaymentDate: brformat.NowISO(),
	}
	s.payments.add(p.ID, p)
	return p.ID
}

// RemovePayment apaga o pagamento se presente.
func (s *Store) RemovePayment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.remove(id)
}

// AddExtract registra o extrato financeiro de um período.
func (s *Store) AddExtract(contractID string, monthRef, yearRef int,
	rentAmount decimal.Decimal, receiptPath string, iptu, water, agreement decimal.Decimal) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := &entity.Extract{
		ID:          uuid.New().String(),
		ContractID:  contractID,
		MonthRef:    monthRef,
		YearRef:     yearRef,
		RentAmount:  rentAmount,
		ReceiptPath: receiptPath,
		IPTU:        iptu,
		Water:       water,
		Agreement:   agreement,
	}
	s.extracts.add(e.ID, e)
	return e.ID
}

// RemoveExtract apaga o extrato se presente.
func (s *Store) RemoveExtract(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extracts.remove(id)
}

// AddGuarantor cria um fiador; falha de validação se não houver CPF nem CNPJ.
func (s *Store) AddGuarantor(name, cpf, cnpj string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, err := entity.NewGuarantor(uuid.New().String(), name, cpf, cnpj)
	if err != nil {
		return "", err
	}
	s.guarantors.add(g.ID, g)
	return g.ID, nil
}

// RemoveGuarantor apaga o fiador se presente.
func (s *Store) RemoveGuarantor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guarantors.remove(id)
}

// AddBailInsurance cria um seguro fiança e devolve o id gerado.
func (s *Store) AddBailInsurance(value decimal.Decimal, insuranceCompany, validity string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := &entity.BailInsurance{
		ID:               uuid.New().String(),
		Value:            value,
		InsuranceCompany: insuranceCompany,
		Validity:         validity,
	}
	s.bailInsurances.add(b.ID, b)
	return b.ID
}

// RemoveBailInsurance apaga o seguro se presente.
func (s *Store) RemoveBailInsurance(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bailInsurances.remove(id)
}

// ── Busca por id (nil quando ausente, nunca erro) ─────────────────────────────

func (s *Store) FindTenantByID(id string) *entity.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tenants.get(id)
}

func (s *Store) FindPropertyByID(id string) *entity.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.properties.get(id)
}

func (s *Store) FindAgencyByID(id string) *entity.Agency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agencies.get(id)
}

func (s *Store) FindContractByID(id string) *entity.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contracts.get(id)
}

func (s *Store) FindPaymentByID(id string) *entity.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payments.get(id)
}

func (s *Store) FindExtractByID(id string) *entity.Extract {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extracts.get(id)
}

func (s *Store) FindGuarantorByID(id string) *entity.Guarantor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guarantors.get(id)
}

func (s *Store) FindBailInsuranceByID(id string) *entity.BailInsurance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bailInsurances.get(id)
}

// ── Listagem completa (ordem de inserção) ─────────────────────────────────────

func (s *Store) Tenants() []*entity.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tenants.values()
}

func (s *Store) Properties() []*entity.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.properties.values()
}

func (s *Store) Agencies() []*entity.Agency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agencies.values()
}

func (s *Store) Contracts() []*entity.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contracts.values()
}

func (s *Store) Payments() []*entity.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payments.values()
}

func (s *Store) Extracts() []*entity.Extract {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extracts.values()
}

func (s *Store) Guarantors() []*entity.Guarantor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guarantors.values()
}

func (s *Store) BailInsurances() []*entity.BailInsurance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bailInsurances.values()
}

// Counts devolve o total de cada coleção para o painel (contratos: só os vigentes).
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := 0
	for _, c := range s.contracts.values() {
		if c.Acting {
			active++
		}
	}
	return map[string]int{
		"tenants":         s.tenants.size(),
		"properties":      s.properties.size(),
		"contracts":       active,
		"payments":        s.payments.size(),
		"agencies":        s.agencies.size(),
		"extracts":        s.extracts.size(),
		"guarantors":      s.guarantors.size(),
		"bail_insurances": s.bailInsurances.size(),
	}
}
