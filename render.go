package main

import (
	"fmt"
	"strings"

	"go-tetris/internal/board"
	"go-tetris/internal/piece"
	"go-tetris/internal/scoring"
	"go-tetris/internal/state"

	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 2

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	borderStyle = lipgloss.NewStyle().Border(lipgloss.ThickBorder())
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(16)
	overlayBox  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2).Align(lipgloss.Center)
)

// pieceColors maps piece color tags to ANSI 256 colors.
var pieceColors = map[piece.Color]lipgloss.Color{
	piece.Cyan:   lipgloss.Color("14"),
	piece.Yellow: lipgloss.Color("11"),
	piece.Purple: lipgloss.Color("13"),
	piece.Green:  lipgloss.Color("10"),
	piece.Red:    lipgloss.Color("9"),
	piece.Blue:   lipgloss.Color("12"),
	piece.Orange: lipgloss.Color("208"),
}

func renderCell(c state.ViewCell) string {
	switch c.Layer {
	case state.LayerLocked, state.LayerActive:
		return lipgloss.NewStyle().Background(pieceColors[c.Color]).Render(strings.Repeat(" ", cellWidth))
	case state.LayerGhost:
		return lipgloss.NewStyle().Foreground(pieceColors[c.Color]).Faint(true).Render(strings.Repeat("░", cellWidth))
	}
	return dimStyle.Render(" ·")
}

func renderBoard(st state.GameState) string {
	grid := st.Composite()
	var b strings.Builder
	for y, row := range grid {
		for _, c := range row {
			b.WriteString(renderCell(c))
		}
		if y < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderShape(p piece.Piece) string {
	var b strings.Builder
	style := lipgloss.NewStyle().Background(pieceColors[p.Color])
	for y, row := range p.Shape {
		for _, v := range row {
			if v == 1 {
				b.WriteString(style.Render(strings.Repeat(" ", cellWidth)))
			} else {
				b.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
		if y < len(p.Shape)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderNext(next []piece.Piece) string {
	parts := []string{boldStyle.Render("NEXT")}
	for i, p := range next {
		if i == 2 {
			break
		}
		parts = append(parts, "", renderShape(p))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderStats(st state.GameState) string {
	lines := []string{
		boldStyle.Render("SCORE"),
		scoreStyle.Render(fmt.Sprint(st.Score)),
		"",
		boldStyle.Render("STAGE"),
		fmt.Sprint(st.Stage),
		"",
		boldStyle.Render("LINES"),
		fmt.Sprint(st.Lines),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func renderOverlay(st state.GameState, history scoring.ScoreHistory) string {
	switch st.Phase() {
	case state.Paused:
		return overlayBox.Render(boldStyle.Render("PAUSED") + "\n\nesc  resume\nr    restart")
	case state.GameOver:
		msg := redStyle.Render("GAME OVER") + "\n\n" + fmt.Sprintf("Final score: %d", st.Score)
		if history.Attempts() > 1 && history.GotHighScore(st.Score) {
			msg += "\n" + scoreStyle.Render("New session best!")
		}
		top := history.GetNScoreEntries(3)
		if len(top) > 0 {
			msg += "\n\nTop scores:"
			for _, e := range top {
				msg += fmt.Sprintf("\n  %6d  stage %d", e.Score, e.Stage)
			}
		}
		return overlayBox.Render(msg + "\n\nr    restart")
	}
	return ""
}

func renderScreen(st state.GameState, history scoring.ScoreHistory) string {
	field := renderBoard(st)
	if overlay := renderOverlay(st, history); overlay != "" {
		field = lipgloss.Place(board.Width*cellWidth, board.Height, lipgloss.Center, lipgloss.Center, overlay)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderStats(st),
		borderStyle.Render(field),
		renderNext(st.Next),
	)
}
