package dto

// PageResponse metadatos de página en listados. Count es la cantidad de filas
// devueltas en esta página, no el total del dataset (los listados del back
// office paginan por limit/offset sin COUNT global).
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// NewPage arma los metadatos de página para una tanda de resultados.
func NewPage(limit, offset, count int) PageResponse {
	return PageResponse{Limit: limit, Offset: offset, Count: count}
}

// ErrorResponse cuerpo de error HTTP: código estable para el cliente y mensaje
// legible. Los PermissionError de filtros viajan con los campos en Message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
