package dto

type UploadVideoRequest struct {
	Title    string `form:"title" validate:"required,min=1,max=255"`
	Category string `form:"category" validate:"required,min=1,max=100"`
	Language string `form:"language" validate:"required,min=1,max=50"`
}

// Status divalidasi di boundary: nilai di luar enum → 422, bukan diterima diam-diam.
type UpdateVideoStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=pending approved rejected"`
}
