package ui

import (
	"fmt"
	"strings"
)

// FormField — поле формы для отрисовки.
type FormField struct {
	Label  string
	Value  string
	Masked bool
	Hint   string // показывается, когда значение пустое
}

// Form — карточка формы с заголовком и кнопкой отправки.
type Form struct {
	Title  string
	Fields []FormField
	Button string
}

// View рисует карточку формы.
func (f Form) View(styles Styles) string {
	width := 0
	for _, fld := range f.Fields {
		if len(fld.Label) > width {
			width = len(fld.Label)
		}
	}

	lines := make([]string, 0, len(f.Fields)+3)
	lines = append(lines, styles.Title.Render(f.Title), "")
	for _, fld := range f.Fields {
		value := fld.Value
		switch {
		case value == "":
			value = styles.Muted.Render(fld.Hint)
		case fld.Masked:
			value = styles.Value.Render(strings.Repeat("•", len([]rune(fld.Value))))
		default:
			value = styles.Value.Render(value)
		}
		label := styles.Label.Render(fmt.Sprintf("%-*s", width, fld.Label))
		lines = append(lines, label+"  "+value)
	}
	lines = append(lines, "", styles.Button.Render("[ "+f.Button+" ]"))
	return styles.Card.Render(strings.Join(lines, "\n"))
}
