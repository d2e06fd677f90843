// RAINBOND, Application Management Platform
// Copyright (C) 2021 Goodrain Co., Ltd.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version. For any non-GPL usage of Rainbond,
// one or multiple Commercial Licenses authorized by Goodrain Co., Ltd.
// must be obtained first.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package form

import (
	"errors"
	"net/url"
)

//ErrTriggerLimit returned by BeginAdd once one trigger of each type exists
var ErrTriggerLimit = errors.New("every trigger type is already configured")

//Editor a modal edit session over one trigger row. The shared form
//state already holds the draft while editing; the one-deep snapshot is
//what makes Cancel behave correctly.
type Editor struct {
	form     *TriggerForm
	index    int
	added    bool
	snapshot *TriggerRow
	done     bool
}

//BeginAdd appends an empty trigger row and opens an editor at the new
//trailing index
func (f *TriggerForm) BeginAdd() (*Editor, error) {
	if !f.CanAddTrigger() {
		return nil, ErrTriggerLimit
	}
	f.rows = append(f.rows, newTriggerRow())
	return &Editor{
		form:  f,
		index: len(f.rows) - 1,
		added: true,
	}, nil
}

//BeginEdit opens an editor over the existing trigger row at index i,
//remembering its current value for Cancel
func (f *TriggerForm) BeginEdit(i int) (*Editor, error) {
	row, err := f.Row(i)
	if err != nil {
		return nil, err
	}
	return &Editor{
		form:     f,
		index:    i,
		snapshot: row.clone(),
	}, nil
}

//Index the trigger row this editor is positioned at
func (e *Editor) Index() int {
	return e.index
}

//SetField writes a field of the edited row
func (e *Editor) SetField(field Field, value interface{}) error {
	if e.done {
		return errors.New("edit session is closed")
	}
	return e.form.SetField(e.index, field, value)
}

//AvailableTypes the type options offered to the edited row
func (e *Editor) AvailableTypes() []string {
	return e.form.AvailableTypes(e.index)
}

//Cancel closes the session: an added row is removed again, an edited
//row is restored to its snapshot
func (e *Editor) Cancel() {
	if e.done {
		return
	}
	e.done = true
	if e.added {
		e.form.rows = append(e.form.rows[:e.index], e.form.rows[e.index+1:]...)
		return
	}
	e.form.rows[e.index] = e.snapshot
}

//Confirm validates the edited row. A non-empty bag means the modal
//stays open and nothing is cleared; an empty bag closes the session and
//the in-place edit stands.
func (e *Editor) Confirm() url.Values {
	if e.done {
		return nil
	}
	errs := e.form.validateRow(e.index)
	if len(errs) > 0 {
		return errs
	}
	e.done = true
	e.snapshot = nil
	return nil
}
