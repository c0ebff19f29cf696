package tui

type confirmAction int

const (
	confirmDelete confirmAction = iota + 1
	confirmToggle
)

type confirmModel struct {
	action confirmAction
	id     int64
	name   string
	active bool
}

func (m confirmModel) View() string {
	var content string
	switch m.action {
	case confirmDelete:
		content = "¿Eliminar a \"" + m.name + "\"?\n\n"
	case confirmToggle:
		verb := "Activar"
		if m.active {
			verb = "Desactivar"
		}
		content = "¿" + verb + " a \"" + m.name + "\"?\n\n"
	}
	content += "s/y sí    n no"
	return overlayBoxStyle.Render(content)
}
