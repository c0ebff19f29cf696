// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-patient-registry/models"
)

func renderBuildInfoWindow(client, server models.AppBuildInfo, serverErr string) string {
	var b strings.Builder

	b.WriteString("Aplicación: Registro de Pacientes\n\n")
	b.WriteString("Cliente\n")
	writeBuildInfo(&b, client)

	b.WriteString("\nServidor\n")
	if serverErr != "" {
		b.WriteString("  ")
		b.WriteString(serverErr)
	} else {
		writeBuildInfo(&b, server)
	}

	return renderPage("ACERCA DE", b.String(), "esc: volver")
}

func writeBuildInfo(b *strings.Builder, info models.AppBuildInfo) {
	b.WriteString("  Versión: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n  Fecha:   ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n  Commit:  ")
	b.WriteString(valueOrNA(info.Commit))
	b.WriteString("\n")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
