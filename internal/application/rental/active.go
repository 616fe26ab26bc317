package rental

import "github.com/Apeirom/rental-manager/internal/domain/entity"

// Filtros de "ativos": um registro é ativo quando aparece como chave
// estrangeira em pelo menos um contrato vigente (Acting). A ordem de inserção
// da coleção é preservada.

// ActiveContracts devolve os contratos vigentes.
func (s *Store) ActiveContracts() []*entity.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Contract
	for _, c := range s.contracts.values() {
		if c.Acting {
			out = append(out, c)
		}
	}
	return out
}

// ActiveTenants devolve os inquilinos com algum contrato vigente.
func (s *Store) ActiveTenants() []*entity.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make(map[string]bool)
	for _, c := range s.contracts.values() {
		if c.Acting {
			ids[c.TenantID] = true
		}
	}
	var out []*entity.Tenant
	for _, t := range s.tenants.values() {
		if ids[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

// ActiveProperties devolve os imóveis com algum contrato vigente.
func (s *Store) ActiveProperties() []*entity.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make(map[string]bool)
	for _, c := range s.contracts.values() {
		if c.Acting {
			ids[c.PropertyID] = true
		}
	}
	var out []*entity.Property
	for _, p := range s.properties.values() {
		if ids[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// ActiveAgencies devolve as imobiliárias com algum contrato vigente.
func (s *Store) ActiveAgencies() []*entity.Agency {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make(map[string]bool)
	for _, c := range s.contracts.values() {
		if c.Acting {
			ids[c.RealEstateID] = true
		}
	}
	var out []*entity.Agency
	for _, a := range s.agencies.values() {
		if ids[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

// ActivePayments devolve os pagamentos ligados a contratos vigentes.
func (s *Store) ActivePayments() []*entity.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.actingContractIDs()
	var out []*entity.Payment
	for _, p := range s.payments.values() {
		if ids[p.ContractID] {
			out = append(out, p)
		}
	}
	return out
}

// ActiveExtracts devolve os extratos ligados a contratos vigentes.
func (s *Store) ActiveExtracts() []*entity.Extract {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.actingContractIDs()
	var out []*entity.Extract
	for _, e := range s.extracts.values() {
		if ids[e.ContractID] {
			out = append(out, e)
		}
	}
	return out
}

// ActiveGuarantors devolve os fiadores que lastreiam contratos vigentes.
func (s *Store) ActiveGuarantors() []*entity.Guarantor {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make(map[string]bool)
	for _, c := range s.contracts.values() {
		if c.Acting && c.Guarantee == entity.GuaranteeGuarantor && c.GuaranteeID != "" {
			ids[c.GuaranteeID] = true
		}
	}
	var out []*entity.Guarantor
	for _, g := range s.guarantors.values() {
		if ids[g.ID] {
			out = append(out, g)
		}
	}
	return out
}

// ActiveBailInsurances devolve os seguros que lastreiam contratos vigentes.
func (s *Store) ActiveBailInsurances() []*entity.BailInsurance {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make(map[string]bool)
	for _, c := range s.contracts.values() {
		if c.Acting && c.Guarantee == entity.GuaranteeBailInsurance && c.GuaranteeID != "" {
			ids[c.GuaranteeID] = true
		}
	}
	var out []*entity.BailInsurance
	for _, b := range s.bailInsurances.values() {
		if ids[b.ID] {
			out = append(out, b)
		}
	}
	return out
}

// actingContractIDs pressupõe o mutex já adquirido.
func (s *Store) actingContractIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, c := range s.contracts.values() {
		if c.Acting {
			ids[c.ID] = true
		}
	}
	return ids
}
