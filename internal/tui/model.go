package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textvec/internal/domain"
)

// SystemPort is the TUI-facing subset of the embedding service.
type SystemPort interface {
	SemanticSearch(query string, documents []string, topK int) []domain.SearchResult
	Encode(text string) []float64
	Decode(vec []float64, topK int) ([]string, error)
	Cluster(texts []string, k int) map[int][]string
	ExportModel() (string, error)
	Info() domain.Info
}

// ExportFileName is where ctrl+e writes the serialized model.
const ExportFileName = "textvec-model.json"

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service      SystemPort
	documents    []string
	searchTopK   int
	decodeTopK   int
	clusterCount int

	input           textinput.Model
	viewport        viewport.Model
	results         []domain.SearchResult
	cursor          int
	ready           bool
	lastQuery       string
	showingClusters bool
	status          string
}

// New creates a new TUI model instance over the loaded documents.
func New(service SystemPort, documents []string, searchTopK, decodeTopK, clusterCount int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type query and press Enter (tab: clusters, ctrl+e: export)"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:      service,
		documents:    documents,
		searchTopK:   searchTopK,
		decodeTopK:   decodeTopK,
		clusterCount: clusterCount,
		input:        ti,
		viewport:     vp,
		status:       "Loaded. Type to search.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and query boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + qh + 1 // header + status, query frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderContent())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				m.results = m.service.SemanticSearch(q, m.documents, m.searchTopK)
				m.cursor = 0
				m.lastQuery = q
				m.showingClusters = false
				m.status = fmt.Sprintf("Results for %q", q)
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		case "tab":
			m.showingClusters = !m.showingClusters
			if m.showingClusters {
				m.status = fmt.Sprintf("Clusters (k=%d)", m.clusterCount)
			} else {
				m.status = "Search view"
			}
			m.viewport.SetContent(m.renderContent())
			return m, nil
		case "ctrl+e":
			blob, err := m.service.ExportModel()
			if err != nil {
				m.status = "Export error: " + err.Error()
			} else if err := os.WriteFile(ExportFileName, []byte(blob), 0o644); err != nil {
				m.status = "Export error: " + err.Error()
			} else {
				m.status = "Model written to " + ExportFileName
			}
			return m, nil
		case "down":
			if !m.showingClusters && len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		case "up":
			if !m.showingClusters && len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current content.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	info := m.service.Info()
	header := headerStyle.Render("textvec") + " " +
		infoStyle.Render(fmt.Sprintf("vocab=%d dim=%d docs=%d", info.VocabularySize, info.Dimension, len(m.documents)))
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	content := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + content + "\n" + input + "\n" + status
}

func (m Model) renderContent() string {
	if m.showingClusters {
		return m.renderClusters()
	}
	return m.renderCurrentResult()
}

func (m Model) renderCurrentResult() string {
	if len(m.results) == 0 {
		return "No results yet."
	}
	r := m.results[m.cursor]
	title := fmt.Sprintf("Result %d/%d  score=%.3f  doc=%d", m.cursor+1, len(m.results), r.Score, r.Index)
	body := r.Text
	nearest := m.nearestWords()
	if nearest != "" {
		body += "\n\n" + infoStyle.Render("query decodes to: "+nearest)
	}
	return title + "\n\n" + body
}

func (m Model) nearestWords() string {
	if m.lastQuery == "" {
		return ""
	}
	words, err := m.service.Decode(m.service.Encode(m.lastQuery), m.decodeTopK)
	if err != nil || len(words) == 0 {
		return ""
	}
	return strings.Join(words, ", ")
}

func (m Model) renderClusters() string {
	clusters := m.service.Cluster(m.documents, m.clusterCount)
	keys := make([]int, 0, len(clusters))
	for k := range clusters {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("Cluster %d (%d docs)", k, len(clusters[k]))))
		for _, text := range clusters[k] {
			fmt.Fprintf(&b, "  %s\n", truncate(text, m.viewport.Width-4))
		}
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "No documents to cluster."
	}
	return b.String()
}

func truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headerStyle    = lipgloss.NewStyle().Bold(true)
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
