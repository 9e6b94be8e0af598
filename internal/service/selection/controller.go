package selection

import (
	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// Controller держит текущий выбор даты и времени одного сценария записи
// и следит за инвариантом: время осмысленно только вместе с датой того же
// цикла пересчёта. Два состояния: пусто / выбрана дата (время опционально).
//
// Контроллер рассчитан на однопоточное использование - как и весь движок,
// он вызывается в стиле запрос-ответ из одного сценария
type Controller struct {
	cells []domain.DayCell
	slots []domain.SlotAvailability
	state domain.SelectionState

	onDateSelect DateCallback
	onTimeSelect TimeCallback

	logger Logger
}

// NewController создает новый контроллер выбора
func NewController(logger Logger) *Controller {
	return &Controller{logger: logger}
}

// OnDateSelect регистрирует колбэк смены даты
func (c *Controller) OnDateSelect(fn DateCallback) {
	c.onDateSelect = fn
}

// OnTimeSelect регистрирует колбэк смены времени
func (c *Controller) OnTimeSelect(fn TimeCallback) {
	c.onTimeSelect = fn
}

// LoadMonth загружает ячейки последнего разрешённого месяца
// Выбор даты проверяется именно против этих ячеек
func (c *Controller) LoadMonth(cells []domain.DayCell) {
	c.cells = cells
}

// LoadSlots загружает сетку слотов, сгенерированную для текущей даты
// Выбор времени проверяется именно против этой сетки
func (c *Controller) LoadSlots(slots []domain.SlotAvailability) {
	c.slots = slots
}

// State возвращает копию текущего состояния выбора
func (c *Controller) State() domain.SelectionState {
	return c.state
}

// SelectDate выбирает дату
// Дата должна соответствовать выбираемой ячейке загруженного месяца; иначе
// состояние не меняется и возвращается ErrDateNotSelectable. Ранее выбранное
// время сбрасывается всегда: слоты привязаны к дате, и для новой даты старое
// время может не существовать
func (c *Controller) SelectDate(date types.CivilDate) error {
	cell, ok := c.findCell(date)
	if !ok || !cell.Selectable {
		c.logger.Warn("SelectDate: date=%s is not selectable in the loaded month", date)
		return ErrDateNotSelectable
	}

	c.state.Date = date
	c.clearTime()
	c.slots = nil

	c.logger.Info("SelectDate: date=%s selected", date)
	if c.onDateSelect != nil {
		selected := date
		c.onDateSelect(&selected)
	}

	return nil
}

// SelectTime выбирает время для текущей даты
// Допустимо только при выбранной дате; время должно присутствовать в
// загруженной сетке и быть свободным
func (c *Controller) SelectTime(t types.TimeOfDay) error {
	if !c.state.HasDate() {
		c.logger.Error("SelectTime: called with no date selected")
		return ErrNoDateSelected
	}

	if !c.slotAvailable(t) {
		c.logger.Warn("SelectTime: time=%s is not available for date=%s", t, c.state.Date)
		return ErrSlotNotAvailable
	}

	selected := t
	c.state.Time = &selected

	c.logger.Info("SelectTime: time=%s selected for date=%s", t, c.state.Date)
	if c.onTimeSelect != nil {
		c.onTimeSelect(&selected)
	}

	return nil
}

// ClearDate сбрасывает выбор полностью: без даты время не имеет смысла
func (c *Controller) ClearDate() {
	c.state.Date = types.CivilDate{}
	c.clearTime()
	c.slots = nil

	c.logger.Info("ClearDate: selection cleared")
	if c.onDateSelect != nil {
		c.onDateSelect(nil)
	}
}

// ClearTime сбрасывает только выбранное время, дата остаётся
func (c *Controller) ClearTime() {
	c.clearTime()
	c.logger.Info("ClearTime: time selection cleared")
}

func (c *Controller) clearTime() {
	if c.state.Time == nil {
		return
	}
	c.state.Time = nil
	if c.onTimeSelect != nil {
		c.onTimeSelect(nil)
	}
}

func (c *Controller) findCell(date types.CivilDate) (domain.DayCell, bool) {
	for _, cell := range c.cells {
		if !cell.IsPlaceholder() && cell.Date.Equal(date) {
			return cell, true
		}
	}
	return domain.DayCell{}, false
}

func (c *Controller) slotAvailable(t types.TimeOfDay) bool {
	for _, sa := range c.slots {
		if sa.Slot.Start == t {
			return !sa.IsBooked
		}
	}
	return false
}
