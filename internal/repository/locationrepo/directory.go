package locationrepo

import (
	"sort"
	"strings"

	"gofulfill/internal/domain"
)

// defaultLocations é o conjunto fixo de localizações conhecidas pelo serviço.
var defaultLocations = []domain.Location{
	{Identification: "ZWOLLE-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
	{Identification: "ZWOLLE-002", MaxNumberOfWarehouses: 2, MaxCapacity: 50},
	{Identification: "AMSTERDAM-001", MaxNumberOfWarehouses: 5, MaxCapacity: 100},
	{Identification: "AMSTERDAM-002", MaxNumberOfWarehouses: 3, MaxCapacity: 75},
	{Identification: "TILBURG-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
	{Identification: "HELMOND-001", MaxNumberOfWarehouses: 1, MaxCapacity: 45},
	{Identification: "EINDHOVEN-001", MaxNumberOfWarehouses: 2, MaxCapacity: 70},
	{Identification: "VETSBY-001", MaxNumberOfWarehouses: 1, MaxCapacity: 90},
}

// Directory resolve identificadores de localização para seus limites estáticos.
// É imutável após a construção e pode ser compartilhado entre goroutines.
type Directory struct {
	byKey map[string]domain.Location
}

// NewDirectory cria um diretório com as localizações informadas
// ou, sem argumentos, com o conjunto padrão.
func NewDirectory(locations ...domain.Location) *Directory {
	if len(locations) == 0 {
		locations = defaultLocations
	}
	d := &Directory{byKey: make(map[string]domain.Location, len(locations))}
	for _, l := range locations {
		d.byKey[normalize(l.Identification)] = l
	}
	return d
}

func normalize(identifier string) string {
	return strings.ToUpper(strings.TrimSpace(identifier))
}

// Resolve busca a localização ignorando maiúsculas/minúsculas.
// Identificadores vazios ou desconhecidos retornam false.
func (d *Directory) Resolve(identifier string) (domain.Location, bool) {
	key := normalize(identifier)
	if key == "" {
		return domain.Location{}, false
	}
	l, ok := d.byKey[key]
	return l, ok
}

// List devolve todas as localizações ordenadas pelo identificador.
func (d *Directory) List() []domain.Location {
	out := make([]domain.Location, 0, len(d.byKey))
	for _, l := range d.byKey {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identification < out[j].Identification })
	return out
}
