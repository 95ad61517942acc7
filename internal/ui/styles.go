// Package ui рисует карточку формы и таблицу записей в терминале.
package ui

import "github.com/charmbracelet/lipgloss"

// Цвета карточек, взяты из веб-версии формы.
var (
	FormAccent   = lipgloss.Color("#8fd3f4")
	ButtonAccent = lipgloss.Color("#f5576c")
	TableAccent  = lipgloss.Color("#764ba2")
	MutedColor   = lipgloss.Color("#6c757d")
)

// Styles — набор стилей для отрисовки.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Button lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
	Card   lipgloss.Style
	Alert  lipgloss.Style
}

// DefaultStyles возвращает стили по умолчанию.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(FormAccent),
		Label:  lipgloss.NewStyle().Bold(true),
		Value:  lipgloss.NewStyle(),
		Button: lipgloss.NewStyle().Bold(true).Foreground(ButtonAccent),
		Header: lipgloss.NewStyle().Bold(true).Foreground(TableAccent),
		Cell:   lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Foreground(MutedColor),
		Card:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Alert:  lipgloss.NewStyle().Bold(true).Foreground(ButtonAccent),
	}
}
