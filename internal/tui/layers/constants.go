package layers

const (
	ModalWidthNumerator = 2
	ModalWidthDivisor   = 3 // 2/3 of the screen

	ModalMinWidth = 40
	ModalMaxWidth = 90

	PickerWidth = 44
)
