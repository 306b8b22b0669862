// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Aplicativo: Ordo Keeper\n")
	b.WriteString("Versão: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Data: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())

	return renderPage("SOBRE O PROGRAMA", b.String(), "esc: voltar")
}
