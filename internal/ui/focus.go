package ui

// FocusManager rotates keyboard focus across the on-screen controls.
// An empty Current means nothing is focused.
type FocusManager struct {
	Current  string
	Order    []string
	OnChange func(from, to string)
}

// Next moves focus to the following control, wrapping at the end.
// With nothing focused it lands on the first control.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.set(f.Order[(f.indexOf(f.Current)+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the preceding control, wrapping at the start.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	i := f.indexOf(f.Current) - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	f.set(f.Order[i])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not a known control.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

// Clear removes focus.
func (f *FocusManager) Clear() {
	f.set("")
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
