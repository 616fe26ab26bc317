package entity

// Property representa um imóvel com uma ou mais salas para locação.
type Property struct {
	ID           string
	PropertyName string
	OwnerName    string
	Address      string
	RoomCount    int
}

// AddRoom incrementa a contagem de salas.
func (p *Property) AddRoom() { p.RoomCount++ }

// RemoveRoom decrementa a contagem de salas, sem ficar negativa.
func (p *Property) RemoveRoom() {
	if p.RoomCount > 0 {
		p.RoomCount--
	}
}
