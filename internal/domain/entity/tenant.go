package entity

// Tenant representa um inquilino (pessoa física com CPF ou jurídica com CNPJ).
type Tenant struct {
	ID   string
	Name string
	CPF  string
	CNPJ string
}

// Document devolve o documento do inquilino (CPF tem prioridade sobre CNPJ).
func (t *Tenant) Document() string {
	if t.CPF != "" {
		return t.CPF
	}
	return t.CNPJ
}

// DocumentKind classifica o documento: "CPF", "CNPJ" ou "N/D" se não houver.
func (t *Tenant) DocumentKind() string {
	switch {
	case t.CPF != "":
		return "CPF"
	case t.CNPJ != "":
		return "CNPJ"
	default:
		return "N/D"
	}
}
