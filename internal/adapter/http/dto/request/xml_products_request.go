package request

import "taller_pos/internal/domain/entities"

// ClassifyRequest is the manual classification of a "new" XML product:
// the four catalog codes plus the markup margin. The sale price is
// derived server-side.
type ClassifyRequest struct {
	Division string  `json:"division" binding:"required"`
	Linea    string  `json:"linea" binding:"required"`
	Clase    string  `json:"clase" binding:"required"`
	Subclase string  `json:"subclase" binding:"required"`
	Margen   float64 `json:"margen" binding:"required"`
}

func (r ClassifyRequest) ToClassification() entities.XmlClassification {
	return entities.XmlClassification{
		Division: r.Division,
		Linea:    r.Linea,
		Clase:    r.Clase,
		Subclase: r.Subclase,
		Margen:   r.Margen,
	}
}
