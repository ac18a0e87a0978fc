package models

const (
	ShiftMorning = "Matutino"
	ShiftEvening = "Vespertino"
	ShiftNight   = "Nocturno"
)

// Shifts lista los turnos válidos en el orden en que se muestran.
var Shifts = []string{ShiftMorning, ShiftEvening, ShiftNight}

// TimestampLayout es el formato con el que se guarda el Timestamp en la hoja.
const TimestampLayout = "2006-01-02 15:04:05"

// SensorRequest es una solicitud enviada por un empleado. Una vez creada es
// inmutable: solo se agrega al final de la hoja, nunca se edita ni se borra.
type SensorRequest struct {
	Timestamp  string `json:"timestamp"`
	Requester  string `json:"nombre"`
	EmployeeID string `json:"nomina"`
	Line       string `json:"linea"`
	Station    string `json:"estacion"`
	Quantity   int    `json:"cantidad"`
	Shift      string `json:"turno"`
	Reason     string `json:"motivo"`
	PartNumber string `json:"num_parte"`
	SensorName string `json:"nombre_sensor"`
}

// ValidShift reporta si s es uno de los turnos del catálogo. La cadena vacía
// (selector sin elegir) no es válida.
func ValidShift(s string) bool {
	for _, shift := range Shifts {
		if s == shift {
			return true
		}
	}
	return false
}

// CreateSensorRequest es el payload del formulario de solicitud. El sensor se
// identifica por ID de catálogo; NumParte y NombreSensor se copian del
// registro seleccionado, nunca los manda el cliente.
type CreateSensorRequest struct {
	SensorID   int    `json:"sensor_id"`
	Requester  string `json:"nombre"`
	EmployeeID string `json:"nomina"`
	Line       string `json:"linea"`
	Station    string `json:"estacion"`
	Quantity   int    `json:"cantidad"`
	Shift      string `json:"turno"`
	Reason     string `json:"motivo"`
}
