package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apeirom/rental-manager/internal/domain"
	"github.com/Apeirom/rental-manager/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestTenant_DocumentKind(t *testing.T) {
	pf := entity.Tenant{Name: "João", CPF: "111.222.333-44"}
	assert.Equal(t, "CPF", pf.DocumentKind())
	assert.Equal(t, "111.222.333-44", pf.Document())

	pj := entity.Tenant{Name: "ACME", CNPJ: "12.345.678/0001-00"}
	assert.Equal(t, "CNPJ", pj.DocumentKind())
	assert.Equal(t, "12.345.678/0001-00", pj.Document())

	nd := entity.Tenant{Name: "Sem documento"}
	assert.Equal(t, "N/D", nd.DocumentKind(), "inquilino sem documento deve reportar N/D")
	assert.Equal(t, "", nd.Document())
}

func TestTenant_CPFTemPrecedencia(t *testing.T) {
	both := entity.Tenant{Name: "Ambos", CPF: "111", CNPJ: "222"}
	assert.Equal(t, "CPF", both.DocumentKind())
	assert.Equal(t, "111", both.Document())
}

// ──────────────────────────────────────────────────────────────────────────────
// Guarantor
// ──────────────────────────────────────────────────────────────────────────────

func TestNewGuarantor_ExigeDocumento(t *testing.T) {
	_, err := entity.NewGuarantor("id-1", "Fulano", "", "")
	require.Error(t, err, "fiador sem CPF e sem CNPJ deve ser recusado")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewGuarantor_PessoaFisica(t *testing.T) {
	g, err := entity.NewGuarantor("id-1", "Fulano", "111.222.333-44", "")
	require.NoError(t, err)
	assert.False(t, g.IsCompany())
}

func TestNewGuarantor_PessoaJuridica(t *testing.T) {
	g, err := entity.NewGuarantor("id-2", "ACME Fianças", "", "12.345.678/0001-00")
	require.NoError(t, err)
	assert.True(t, g.IsCompany())
}

// ──────────────────────────────────────────────────────────────────────────────
// Agency
// ──────────────────────────────────────────────────────────────────────────────

func TestAgency_AddPropertySemDuplicar(t *testing.T) {
	a := entity.Agency{Name: "Imob"}
	a.AddProperty("p1")
	a.AddProperty("p2")
	a.AddProperty("p1")
	assert.Equal(t, []string{"p1", "p2"}, a.PropertyIDs, "registro repetido não deve duplicar")
}

func TestAgency_RemoveProperty(t *testing.T) {
	a := entity.Agency{PropertyIDs: []string{"p1", "p2", "p3"}}
	a.RemoveProperty("p2")
	assert.Equal(t, []string{"p1", "p3"}, a.PropertyIDs)
	a.RemoveProperty("inexistente")
	assert.Equal(t, []string{"p1", "p3"}, a.PropertyIDs, "remover id ausente não altera a lista")
}

// ──────────────────────────────────────────────────────────────────────────────
// Contract e Property
// ──────────────────────────────────────────────────────────────────────────────

func TestContract_SetActive(t *testing.T) {
	c := entity.Contract{Acting: true}
	c.SetActive(false)
	assert.False(t, c.Acting)
	c.SetActive(true)
	assert.True(t, c.Acting)
}

func TestProperty_Rooms(t *testing.T) {
	p := entity.Property{RoomCount: 2}
	p.AddRoom()
	assert.Equal(t, 3, p.RoomCount)
	p.RemoveRoom()
	p.RemoveRoom()
	p.RemoveRoom()
	assert.Equal(t, 0, p.RoomCount)
	p.RemoveRoom()
	assert.Equal(t, 0, p.RoomCount, "contagem de salas não fica negativa")
}
