package catalog

import "github.com/ErikArmenta/SistemaGestionSensores/pkg/models"

// records es el catálogo fijo de la planta. Es material de referencia: el
// orden es el orden de despliegue y nada del sistema lo muta.
var records = []models.SensorRecord{
	{ID: 1, Name: "Sensor Flat Amarillo", PartNumber: "31 T89 79711", Description: "Sensor de 3 PIN de 8mm", ImageURL: "imagenes/sensor1.jpg"},
	{ID: 2, Name: "Sensor Flat Azul", PartNumber: "31 C47 39980", Description: "Sensor de 3 PIN de 8mm", ImageURL: "imagenes/sensor2.jpg"},
	{ID: 3, Name: "Sensor Flat Metalico", PartNumber: "30 A51 21098", Description: "Sensor de 3 PIN de 12mm", ImageURL: "imagenes/sensor3.jpg"},
	{ID: 4, Name: "Sensor Flat Blanco", PartNumber: "31 I34 003010", Description: "Sensor Flat Blanco", ImageURL: "imagenes/sensor4.jpg"},
	{ID: 5, Name: "Sensor Falt Naranja", PartNumber: "31 E28 002286", Description: "Sensor Flat de 4 PIN de 12mm", ImageURL: "imagenes/sensor5.jpg"},
	{ID: 6, Name: "Sensor Flat Negro", PartNumber: "31 A51 24742", Description: "Sensor Flat de 3 PIN de 12mm", ImageURL: "imagenes/sensor6.jpg"},
	{ID: 7, Name: "Sensor Goma Blanca", PartNumber: "30 I34 67223", Description: "Sensor de Goma de 3 PIN de 12mm", ImageURL: "imagenes/sensor7.jpg"},
	{ID: 8, Name: "Sensor Goma Naranja", PartNumber: "31 I34 36291", Description: "Sensor de Goma de 3 PIN de 12mm", ImageURL: "imagenes/sensor8.jpg"},
	{ID: 9, Name: "Sensor Flat de Luz", PartNumber: "31 F21 43655", Description: "Sensor Flat de 4 PIN de 12mm", ImageURL: "imagenes/sensor9.jpg"},
	{ID: 10, Name: "Sensor Flat Azul", PartNumber: "31 S19 016 018", Description: "Sensor Flat de 4 PIN de 12mm", ImageURL: "imagenes/sensor10.jpg"},
	{ID: 11, Name: "Sensor MARPOSS", PartNumber: "31 T19 013 009", Description: "Sensor para Riel Marposs", ImageURL: "imagenes/sensor11.jpg"},
	{ID: 12, Name: "Sensor de Flujo", PartNumber: "31 I34 57555", Description: "Sensor de Flujo especial para agua", ImageURL: "imagenes/sensor12.jpg"},
	{ID: 13, Name: "Sensor Presión de Aire", PartNumber: "31 I34 110991", Description: "Sensor para presión de aire", ImageURL: "imagenes/sensor13.jpg"},
	{ID: 14, Name: "Sensor Cripper", PartNumber: "31 R260 13264", Description: "Sensor Cripper", ImageURL: "imagenes/sensor14.jpg"},
	{ID: 15, Name: "Sensor Elevador", PartNumber: "31 P18 37173", Description: "Sensor para elevaodres", ImageURL: "imagenes/sensor15.jpg"},
	{ID: 16, Name: "Sensor de Pluma", PartNumber: "31 K05 008014", Description: "Sensor de pluma", ImageURL: "imagenes/sensor16.jpg"},
	{ID: 17, Name: "Sensor Carlo Gavazzi", PartNumber: "31 C760 15563", Description: "Sensor Carlo Gavazzi", ImageURL: "imagenes/sensor17.jpg"},
	{ID: 18, Name: "Sensor Carlo Gavazzi 8mm", PartNumber: "31 C760 17270", Description: "Sensor Carlo Gavazzi 8mm", ImageURL: "imagenes/sensor18.jpg"},
	{ID: 19, Name: "Sensor Carlo Gavazzi Laser", PartNumber: "31 C760 15564", Description: "Sensor Carlo Gavazzi Laser", ImageURL: "imagenes/sensor19.jpg"},
	{ID: 20, Name: "Sensor Carlo Gavazzi Flat", PartNumber: "31 C760 17269", Description: "Sensor Carlo Gavazzi Flat 12mm", ImageURL: "imagenes/sensor20.jpg"},
}

// List devuelve el catálogo completo en orden de despliegue.
func List() []models.SensorRecord {
	out := make([]models.SensorRecord, len(records))
	copy(out, records)
	return out
}

// FindByID busca un sensor por su ID de catálogo.
func FindByID(id int) (models.SensorRecord, bool) {
	for _, record := range records {
		if record.ID == id {
			return record, true
		}
	}
	return models.SensorRecord{}, false
}

// Grid parte el catálogo en filas de perRow tarjetas, en el mismo orden.
// La última fila puede quedar incompleta.
func Grid(perRow int) [][]models.SensorRecord {
	if perRow < 1 {
		perRow = 1
	}

	all := List()
	rows := make([][]models.SensorRecord, 0, (len(all)+perRow-1)/perRow)
	for start := 0; start < len(all); start += perRow {
		end := start + perRow
		if end > len(all) {
			end = len(all)
		}
		rows = append(rows, all[start:end])
	}
	return rows
}
