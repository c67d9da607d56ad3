package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// Team 0 is neutral and renders gray
var teamColors = []string{ColorGray, ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorCyan}

const (
	seaSymbol    = "~"
	desertSymbol = "·"
	landSymbol   = ","
	citySymbol   = "⬢"
	teamSymbols  = "NABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var buildingSymbols = [core.NumBuildingKinds]string{
	core.Research: "r",
	core.Power:    "p",
	core.School:   "s",
	core.Station:  "t",
	core.Hospital: "h",
}

// Board renders a snapshot as a colored grid. Each tile takes three columns:
// the construction symbol, then the top meeple's team letter and stack depth.
// Tails-up meeples are lowercase.
func Board(g core.Game) string {
	size := g.BoardSize
	var sb strings.Builder
	sb.Grow((size*24+8)*(size+4) + 256)

	sb.WriteString("   ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&sb, "%3d", col)
	}
	sb.WriteString("\n")

	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, "%2d ", row)
		for col := 0; col < size; col++ {
			writeTile(&sb, &g, g.TerrainAt(core.NewPosition(row, col)))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\nround %d, team %s to act, %s side\n", g.Turn.Round, teamLetter(g.Turn.Team), g.Turn.Side)
	sb.WriteString(seaSymbol + "=sea " + desertSymbol + "=desert " + landSymbol + "=land " + citySymbol + "=city r/p/s/t/h=buildings N=neutral\n")
	return sb.String()
}

func writeTile(sb *strings.Builder, g *core.Game, t *core.Terrain) {
	symbol, color := landSymbol, ColorWhite
	switch c := t.Construction.(type) {
	case core.City:
		symbol, color = citySymbol, teamColor(c.Team)
	case core.Building:
		symbol, color = buildingSymbols[c.Kind], teamColor(c.Team)
	default:
		switch t.Geography {
		case core.Sea:
			symbol, color = seaSymbol, ColorCyan
		case core.Desert:
			symbol, color = desertSymbol, ColorYellow
		}
	}
	sb.WriteString(color + symbol + ColorReset)

	top := g.Meeple(t.Top)
	if top == nil {
		sb.WriteString("  ")
		return
	}
	letter := teamLetter(top.Team)
	if top.Side == core.Tails {
		letter = strings.ToLower(letter)
	}
	depth := len(g.Stack(t.Position))
	if depth > 9 {
		depth = 9
	}
	fmt.Fprintf(sb, "%s%s%d%s", teamColor(top.Team), letter, depth, ColorReset)
}

func teamLetter(team int) string {
	if team >= 0 && team < len(teamSymbols) {
		return string(teamSymbols[team])
	}
	return "?"
}

func teamColor(team int) string {
	if team >= 0 && team < len(teamColors) {
		return teamColors[team]
	}
	return ColorWhite
}
