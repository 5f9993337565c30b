package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// openExportForm shows the format picker for the active module
func (m Model) openExportForm() (Model, tea.Cmd) {
	m.formFormat = "csv"
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Format d'export").
				Description("Module: " + m.activeModule()).
				Options(
					huh.NewOption("CSV", "csv"),
					huh.NewOption("Excel", "excel"),
					huh.NewOption("Document imprimable", "pdf"),
				).
				Value(&m.formFormat),
		),
	)
	m.mode = modeExportForm
	return m, m.form.Init()
}

// openImportForm asks for the file to import into the active module
func (m Model) openImportForm() (Model, tea.Cmd) {
	m.formPath = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Fichier à importer").
				Description("Module: " + m.activeModule()).
				Placeholder("/chemin/vers/fichier.csv").
				Value(&m.formPath),
		),
	)
	m.mode = modeImportForm
	return m, m.form.Init()
}

// updateForm drives the active huh form and fires the operation on submit
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = modeNormal
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		wasExport := m.mode == modeExportForm
		m.mode = modeNormal
		m.form = nil
		if wasExport {
			return m, tea.Batch(cmd, m.fireExport())
		}
		return m, tea.Batch(cmd, m.fireImport())

	case huh.StateAborted:
		m.mode = modeNormal
		m.form = nil
		return m, cmd
	}
	return m, cmd
}
