package model

type BookRequest struct {
	BookID int `json:"book_id" validate:"required,gt=0"`
}

type ConfirmRequest struct {
	UserID int    `json:"user_id" validate:"required,gt=0"`
	BookID int    `json:"book_id" validate:"required,gt=0"`
	Action Action `json:"action" validate:"required,oneof=borrow return"`
}

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Author      string `json:"author" validate:"required,max=255"`
	ISBN        string `json:"isbn" validate:"required,max=32"`
	Category    string `json:"category" validate:"max=100"`
	TotalCopies int    `json:"total_copies" validate:"gte=0"`
}

// EditBookRequest carries only the fields to change.
type EditBookRequest struct {
	ID          int     `json:"-" param:"bookId" validate:"required,gt=0"`
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Author      *string `json:"author" validate:"omitempty,min=1,max=255"`
	ISBN        *string `json:"isbn" validate:"omitempty,min=1,max=32"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	TotalCopies *int    `json:"total_copies" validate:"omitempty,gte=0"`
}

type DecideFineRequest struct {
	UserID  int   `json:"user_id" validate:"required,gt=0"`
	Approve *bool `json:"approve" validate:"required"`
}
