package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: sair"))

	return b.String()
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func typeBadge(t models.CharacterType) string {
	if t == models.CharacterNPC {
		return npcBadgeStyle.Render("[NPC]")
	}
	return pcBadgeStyle.Render("[PC] ")
}

func roleLabel(r models.Role) string {
	if r == models.RoleGM {
		return "Mestre"
	}
	return "Jogador"
}

func vitalText(v models.Vital) string {
	return fmt.Sprintf("%d/%d", v.Current, v.Max)
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
