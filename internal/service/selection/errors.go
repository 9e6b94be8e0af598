package selection

import "errors"

var (
	// ErrNoDateSelected возвращается при выборе времени без выбранной даты
	// Это ошибка программирования внешнего слоя, а не пользовательская
	ErrNoDateSelected = errors.New("selection: no date selected")

	// ErrDateNotSelectable возвращается при выборе дня, недоступного в
	// загруженном месяце (прошедший день или недоступный день недели)
	ErrDateNotSelectable = errors.New("selection: date is not selectable")

	// ErrSlotNotAvailable возвращается при выборе времени, отсутствующего
	// в загруженной сетке слотов или уже занятого
	ErrSlotNotAvailable = errors.New("selection: slot is not available")
)
