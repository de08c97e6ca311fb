package slides

import (
	"strings"

	"agentdeck/internal/scene"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorCursor      = "#22d3ee"
	colorCursorDeep  = "#06b6d4"
	colorClaude      = "#fbbf24"
	colorClaudeDeep  = "#f59e0b"
	colorAgent       = "#34d399"
	colorAgentDeep   = "#10b981"
	colorIntroBlue   = "#60a5fa"
	colorIntroPurple = "#a855f7"
	colorDanger      = "#ef4444"
	colorDangerSoft  = "#f87171"
	colorPositive    = "#4ade80"
	colorNegative    = "#f97316"
	colorText        = "#f4f4f5"
	colorMuted       = "#a1a1aa"
	colorFaint       = "#71717a"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorText))
	bodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorFaint))
	quoteStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(colorMuted))
)

// point is one pro or con on a tool slide.
type point struct {
	Head string
	Body string
}

// tool describes one of the three tool slides.
type tool struct {
	Name    string
	Tagline string
	Quote   string
	Accent  string
	Pros    []point
	Cons    []point
	Scene   func(step int) scene.Scene
}

var cursorTool = tool{
	Name:    "Cursor",
	Tagline: "The Bionic Suit",
	Quote:   `"I am still writing the code, but I have a jetpack."`,
	Accent:  colorCursor,
	Pros: []point{
		{"Flow State", `Never breaks rhythm. "Tab" is addictive.`},
		{"Granular Control", "You see every line. Great for complex logic."},
		{"UX Superiority", "Best-in-class diffs."},
	},
	Cons: []point{
		{"The Context Trap", "Only knows open files. Struggles with massive refactors."},
		{"Tethered", "If you stop typing, it stops working."},
	},
	Scene: func(int) scene.Scene {
		return scene.Orb{Stars: 40, Seed: 3, Palette: scene.NewPalette(colorCursorDeep, colorCursor)}
	},
}

var claudeTool = tool{
	Name:    "Claude CLI",
	Tagline: "The Brain in a Box",
	Quote:   `"I need a genius to think through this problem, but I have to copy-paste the result."`,
	Accent:  colorClaude,
	Pros: []point{
		{"Reasoning Depth", "Unmatched logic. Great for architectural debates."},
		{"Terminal Native", `Great for "headless" tasks or quick scripts.`},
	},
	Cons: []point{
		{`The "Blindfold"`, `Cannot see localhost. "Looks correct, renders broken."`},
		{"Friction", "The Context Switching tax. It feels like a separate tool."},
	},
	Scene: func(int) scene.Scene {
		return scene.Orb{Stars: 40, Seed: 4, Boxed: true, Palette: scene.NewPalette(colorClaudeDeep, colorClaude)}
	},
}

var antigravityTool = tool{
	Name:    "Google Antigravity",
	Tagline: "The Living Swarm",
	Quote:   `"I am the Architect. I define the What, you handle the How."`,
	Accent:  colorAgent,
	Pros: []point{
		{"Full Loop Agency", "Doesn't just write code; runs it. Fixes its own mistakes."},
		{"Infrastructure Aware", "Integrates with Cloud/Deployments. Manages the environment."},
		{"Async Work", "Give it a 20-min task and get coffee. Works while you are away."},
	},
	Cons: []point{
		{`"Black Box" Anxiety`, "Loss of control when files change in background."},
		{"Latency", `Not as "snappy" as Cursor. Takes time to "plan."`},
		{"Cost/Lock-in", "Safer to stay in Google ecosystem. Hard for teams invested elsewhere."},
	},
	Scene: func(int) scene.Scene {
		return scene.Swarm{Particles: 60, Stars: 40, Seed: 5, Palette: scene.NewPalette(colorAgentDeep, colorAgent)}
	},
}

func renderCursor(f Frame) string      { return renderTool(f, cursorTool) }
func renderClaude(f Frame) string      { return renderTool(f, claudeTool) }
func renderAntigravity(f Frame) string { return renderTool(f, antigravityTool) }

// renderTool lays out pros | title, scene and quote | cons.
func renderTool(f Frame, t tool) string {
	side := f.Width / 3
	center := f.Width - 2*side

	pros := verdictColumn("✓ THE POSITIVE", colorPositive, t.Pros, side, f.Height)
	cons := verdictColumn("✗ THE NEGATIVE", colorNegative, t.Cons, side, f.Height)

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Accent)).Render(t.Name)
	tagline := faintStyle.Render(strings.ToUpper(t.Tagline))
	quote := quoteStyle.Width(max(center-4, 1)).Align(lipgloss.Center).Render(t.Quote)

	sceneHeight := f.Height - lipgloss.Height(quote) - 5
	parts := []string{"", title, tagline, ""}
	if sceneHeight > 0 {
		parts = append(parts, t.Scene(f.Step).Render(center, sceneHeight, f.Elapsed))
	}
	parts = append(parts, "", quote)
	middle := lipgloss.Place(center, f.Height, lipgloss.Center, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Center, parts...))

	return lipgloss.JoinHorizontal(lipgloss.Top, pros, middle, cons)
}

// verdictColumn renders a titled list of points, vertically centered.
func verdictColumn(heading, color string, points []point, width, height int) string {
	inner := max(width-4, 1)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(heading),
		"",
	}
	for _, p := range points {
		lines = append(lines,
			headingStyle.Width(inner).Render(p.Head),
			bodyStyle.Width(inner).Render(p.Body),
			"",
		)
	}
	block := lipgloss.NewStyle().Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, block)
}

func renderIntro(f Frame) string {
	band := f.Height / 4
	palette := scene.NewPalette(colorIntroBlue, colorIntroPurple)

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorIntroPurple)).
		Width(max(f.Width-4, 1)).Align(lipgloss.Center).
		Render("From Bricklayer to Architect")
	subtitle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d8")).Render("The Era of Agentic Coding")
	rule := faintStyle.Render(strings.Repeat("─", max(f.Width/2, 1)))
	tagline := faintStyle.Render("COMPARING CURSOR, CLAUDE, AND GOOGLE ANTIGRAVITY")

	text := lipgloss.JoinVertical(lipgloss.Center, title, "", subtitle, "", rule, tagline)
	middle := lipgloss.Place(f.Width, max(f.Height-2*band, 1), lipgloss.Center, lipgloss.Center, text)
	if band < 1 {
		return middle
	}
	top := scene.Cubes{Count: 10, Seed: 11, Palette: palette}.Render(f.Width, band, f.Elapsed)
	bottom := scene.Cubes{Count: 10, Seed: 12, Palette: palette}.Render(f.Width, band, f.Elapsed)
	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

// spectrumStop is the card shown when the camera rests on one tool.
type spectrumStop struct {
	Heading string
	Motto   string
	Body    string
	Accent  string
}

var spectrumStops = []spectrumStop{
	{
		Heading: "Assisted Coding",
		Motto:   `"You drive, AI navigates."`,
		Body:    "Cursor is a Bionic Suit. It makes you faster, but you must still understand exactly how to move.",
		Accent:  colorCursor,
	},
	{
		Heading: "Agentic Coding",
		Motto:   `"Co-pilot."`,
		Body:    "Claude is a Remote Consultant. Smart reasoning, logical, but disconnected from your runtime.",
		Accent:  colorClaude,
	},
	{
		Heading: "Digital Employee",
		Motto:   `"You direct, AI drives."`,
		Body:    "Antigravity is a Living Entity. It has hands (tools), eyes (vision), and access to your infrastructure.",
		Accent:  colorAgent,
	},
}

// renderSpectrum shows the timeline with the step's tool highlighted and its card below.
// Step 0 is the overview.
func renderSpectrum(f Frame) string {
	timelineHeight := max(f.Height*55/100, 5)
	timeline := scene.Timeline{
		Active:  f.Step,
		Stars:   60,
		Seed:    2,
		Labels:  [3]string{"Cursor", "Claude", "Antigravity"},
		Palette: scene.NewPalette("#00ff88", "#ffffff"),
	}.Render(f.Width, min(timelineHeight, f.Height), f.Elapsed)

	var card string
	if f.Step <= 0 || f.Step > len(spectrumStops) {
		card = lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorText)).Render("The Spectrum of Agency"),
			"",
			faintStyle.Render("A JOURNEY FROM TOOLS TO TEAMMATES"),
		)
	} else {
		card = spectrumCard(spectrumStops[f.Step-1], min(70, max(f.Width-4, 10)))
	}
	rest := max(f.Height-timelineHeight, 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		timeline,
		lipgloss.Place(f.Width, rest, lipgloss.Center, lipgloss.Center, card),
	)
}

func spectrumCard(s spectrumStop, width int) string {
	accent := lipgloss.Color(s.Accent)
	bar := lipgloss.NewStyle().Foreground(accent).Render("┃\n┃")
	head := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(s.Heading),
		lipgloss.NewStyle().Foreground(accent).Render(s.Motto),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Top, bar, " ", head)
	body := lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d8")).Width(max(width-4, 1)).Render(s.Body)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3f3f46")).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, top, "", body))
}

// risk is one card on the paradox slide.
type risk struct {
	Heading string
	Body    string
	Footer  string
}

var risks = []risk{
	{
		Heading: "Skill Atrophy",
		Body:    "Over-reliance leads to loss of deep understanding. If the Agent writes the SQL, can you still debug a deadlock at 3 AM?",
		Footer:  "USE IT OR LOSE IT",
	},
	{
		Heading: `The "Spinning" Cost`,
		Body:    `Agents can get stuck in "Fix -> Fail -> Retry" loops. Can burn API credits or infinite-loop CI/CD without guardrails.`,
	},
	{
		Heading: "Review Fatigue",
		Body:    `Harder to review 500 generated lines than write 50. "LGTM" syndrome creates subtle architectural bugs.`,
	},
}

func renderParadox(f Frame) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorDanger)).Render("⚠ The Auto-Pilot Paradox")
	sub := bodyStyle.Render("The Risks of Total Agency")

	stacked := f.Width < 60
	cardWidth := max((f.Width-10)/3, 12)
	if stacked {
		cardWidth = max(f.Width-4, 12)
	}
	cards := make([]string, len(risks))
	for i, r := range risks {
		cards[i] = riskCard(r, cardWidth)
	}
	var grid string
	if stacked {
		grid = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, cards[0], "  ", cards[1], "  ", cards[2])
	}

	content := lipgloss.JoinVertical(lipgloss.Left, heading, sub, "", grid)
	return lipgloss.Place(f.Width, f.Height, lipgloss.Center, lipgloss.Center, content)
}

func riskCard(r risk, width int) string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorDangerSoft)).Render(r.Heading),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d8")).Width(max(width-4, 1)).Render(r.Body),
	}
	if r.Footer != "" {
		lines = append(lines, "", faintStyle.Render(r.Footer))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7f1d1d")).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
