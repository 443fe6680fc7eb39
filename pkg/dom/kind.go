package dom

// Kind discriminates how a form control stores and exposes its value.
type Kind uint8

const (
	// KindNone is any element that is not a form control.
	KindNone Kind = iota
	// KindInput is an <input> that holds a plain string value.
	KindInput
	KindCheckbox
	KindRadio
	KindSelect
	KindTextarea
	KindButton
	KindOutput
)

var kindNames = [...]string{
	KindNone:     "none",
	KindInput:    "input",
	KindCheckbox: "checkbox",
	KindRadio:    "radio",
	KindSelect:   "select",
	KindTextarea: "textarea",
	KindButton:   "button",
	KindOutput:   "output",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsField reports whether elements of this kind take part in validation.
func (k Kind) IsField() bool {
	return k != KindNone
}

// IsCheckable reports whether the kind carries a checked state.
func (k Kind) IsCheckable() bool {
	return k == KindCheckbox || k == KindRadio
}

func kindOf(tag, typ string) Kind {
	switch tag {
	case "input":
		switch typ {
		case "checkbox":
			return KindCheckbox
		case "radio":
			return KindRadio
		default:
			return KindInput
		}
	case "select":
		return KindSelect
	case "textarea":
		return KindTextarea
	case "button":
		return KindButton
	case "output":
		return KindOutput
	default:
		return KindNone
	}
}
