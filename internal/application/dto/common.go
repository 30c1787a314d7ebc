package dto

// ErrorResponse cuerpo de error HTTP. Todo error de negocio o de transporte
// llega al cliente con este formato.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de éxito con mensaje descriptivo.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
