package receipt

import (
	"context"
	"fmt"
	"time"
)

// Receipt is the content printed on a payment receipt.
type Receipt struct {
	PaymentID   string
	Amount      float64
	Notes       string
	Status      string
	PaidAt      time.Time
	WorkerName  string
	WorkerPhone string
}

// Renderer turns a receipt into a document.
type Renderer interface {
	Render(ctx context.Context, r Receipt) ([]byte, error)
}

// Archive stores rendered receipts.
type Archive interface {
	Put(ctx context.Context, key string, data []byte) error
}

// Key is the archive object key of a receipt.
func Key(orgID, paymentID string) string {
	return fmt.Sprintf("receipts/%s/%s.pdf", orgID, paymentID)
}

// Filename is the download name of a receipt.
func Filename(paymentID string) string {
	short := paymentID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("receipt-%s.pdf", short)
}
