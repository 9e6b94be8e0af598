package selection

import "github.com/m04kA/BMC-AppointmentService/pkg/types"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DateCallback уведомляет внешний слой о смене выбранной даты
// nil означает сброс выбора
type DateCallback func(date *types.CivilDate)

// TimeCallback уведомляет внешний слой о смене выбранного времени
// nil означает сброс выбора
type TimeCallback func(time *types.TimeOfDay)
