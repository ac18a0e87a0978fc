package models

// SensorRecord es una entrada del catálogo fijo. Se define al arrancar el
// proceso y nunca se persiste ni se modifica.
type SensorRecord struct {
	ID          int    `json:"id"`
	Name        string `json:"nombre"`
	PartNumber  string `json:"num_parte"`
	Description string `json:"descripcion"`
	ImageURL    string `json:"imagen_url"`
}
