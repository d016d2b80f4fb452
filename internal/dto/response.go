package dto

import (
	"time"

	"github.com/AlexMarkGIT/shareit/internal/models"
	"github.com/AlexMarkGIT/shareit/internal/service"
)

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *uint  `json:"request_id,omitempty"`
}

type BookingResponse struct {
	ID     uint                 `json:"id"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Status models.BookingStatus `json:"status"`
	Item   *ItemResponse        `json:"item,omitempty"`
	Booker *UserResponse        `json:"booker,omitempty"`
}

// BookingRefResponse is the short form embedded in item views.
type BookingRefResponse struct {
	ID       uint `json:"id"`
	BookerID uint `json:"booker_id"`
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

type ItemDetailsResponse struct {
	ItemResponse
	LastBooking *BookingRefResponse `json:"last_booking"`
	NextBooking *BookingRefResponse `json:"next_booking"`
	Comments    []CommentResponse   `json:"comments"`
}

type RequestResponse struct {
	ID          uint           `json:"id"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []ItemResponse `json:"items"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
	}
	if b.Item != nil {
		item := ToItemResponse(b.Item)
		resp.Item = &item
	}
	if b.Booker != nil {
		booker := ToUserResponse(b.Booker)
		resp.Booker = &booker
	}
	return resp
}

func toBookingRef(b *models.Booking) *BookingRefResponse {
	if b == nil {
		return nil
	}
	return &BookingRefResponse{ID: b.ID, BookerID: b.BookerID}
}

func ToCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{ID: c.ID, Text: c.Text, Created: c.CreatedAt}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}

func ToItemDetailsResponse(d *service.ItemDetails) ItemDetailsResponse {
	comments := make([]CommentResponse, len(d.Comments))
	for i := range d.Comments {
		comments[i] = ToCommentResponse(&d.Comments[i])
	}
	return ItemDetailsResponse{
		ItemResponse: ToItemResponse(&d.Item),
		LastBooking:  toBookingRef(d.LastBooking),
		NextBooking:  toBookingRef(d.NextBooking),
		Comments:     comments,
	}
}

func ToRequestResponse(d *service.RequestDetails) RequestResponse {
	items := make([]ItemResponse, len(d.Items))
	for i := range d.Items {
		items[i] = ToItemResponse(&d.Items[i])
	}
	return RequestResponse{
		ID:          d.Request.ID,
		Description: d.Request.Description,
		Created:     d.Request.CreatedAt,
		Items:       items,
	}
}
