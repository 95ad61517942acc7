package crud

import (
	"fmt"
	"io"

	"UserCRUD/internal/ui"
)

// Render рисует карточку формы и таблицу пользователей.
// Строки таблицы нумеруются с 1: номер можно передавать в edit/delete интерактивной сессии.
func (v *View) Render(w io.Writer) error {
	styles := ui.DefaultStyles()
	d := v.Draft()

	form := ui.Form{
		Title: v.Heading(),
		Fields: []ui.FormField{
			{Label: "Email", Value: d.Email, Hint: "Enter email"},
			{Label: "Password", Value: d.Password, Masked: true, Hint: "Enter password"},
		},
		Button: v.SubmitLabel(),
	}
	if _, err := fmt.Fprintln(w, form.View(styles)); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, v.userTable(true).View(styles))
	return err
}

// RenderTable рисует только таблицу пользователей.
func (v *View) RenderTable(w io.Writer) error {
	_, err := fmt.Fprint(w, v.userTable(false).View(ui.DefaultStyles()))
	return err
}

func (v *View) userTable(actions bool) *ui.SimpleTable {
	headers := []string{"#", "Email", "Password", "ID"}
	if actions {
		headers = append(headers, "Actions")
	}
	table := ui.NewSimpleTable("User List", headers...)
	table.Empty = "no users"
	for i, r := range v.Records() {
		row := []string{fmt.Sprint(i + 1), r.Email, r.Password, r.ID}
		if actions {
			row = append(row, "edit | delete")
		}
		table.AddRow(row...)
	}
	return table
}
