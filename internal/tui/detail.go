package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-patient-registry/internal/cedula"
	"github.com/MKhiriev/go-patient-registry/models"
)

const registeredAtLayout = "2006-01-02 15:04"

type detailModel struct {
	patient models.Patient
}

// provinceLabel names the region encoded in the cédula, or "-" when the
// stored number no longer passes the checks.
func provinceLabel(number string) string {
	province, ok := cedula.ProvinceOf(number)
	if !ok {
		return "-"
	}
	return province
}

func (m detailModel) View() string {
	p := m.patient

	var b strings.Builder
	b.WriteString(fmt.Sprintf("ID:          %d\n", p.ID))
	b.WriteString(fmt.Sprintf("Nombre:      %s\n", valueOrDash(p.Name)))
	b.WriteString(fmt.Sprintf("Cédula:      %s\n", valueOrDash(p.Cedula)))
	b.WriteString(fmt.Sprintf("Provincia:   %s\n", provinceLabel(p.Cedula)))
	b.WriteString(fmt.Sprintf("Correo:      %s\n", valueOrDash(p.Email)))
	b.WriteString(fmt.Sprintf("Edad:        %d\n", p.Age))
	b.WriteString(fmt.Sprintf("Dirección:   %s\n", valueOrDash(p.Address)))
	b.WriteString(fmt.Sprintf("Estado:      %s\n", activeLabel(p.Active)))

	registered := "-"
	if !p.RegisteredAt.IsZero() {
		registered = p.RegisteredAt.Local().Format(registeredAtLayout)
	}
	b.WriteString(fmt.Sprintf("Registrado:  %s", registered))

	return b.String()
}
