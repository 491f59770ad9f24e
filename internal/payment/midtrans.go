package payment

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// referenceSeparator memisahkan ID order dan suffix percobaan bayar.
// Midtrans menolak order_id yang sama dua kali, jadi tiap Snap diberi suffix.
const referenceSeparator = "~"

type SnapRequest struct {
	OrderID  string
	Amount   int64
	ItemName string
}

type SnapResult struct {
	Reference   string `json:"reference"`
	Token       string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

// Gateway payment gateway yang dipakai PaymentService
type Gateway interface {
	CreateSnap(ctx context.Context, req SnapRequest) (*SnapResult, error)
	VerifySignature(reference, statusCode, grossAmount, signature string) bool
}

// Midtrans implementasi Gateway memakai Snap API
type Midtrans struct {
	client    snap.Client
	serverKey string
	now       func() time.Time
}

func NewMidtrans(serverKey string, production bool) *Midtrans {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	m := &Midtrans{serverKey: serverKey, now: time.Now}
	m.client.New(serverKey, env)
	return m
}

func (m *Midtrans) CreateSnap(ctx context.Context, req SnapRequest) (*SnapResult, error) {
	reference := NewReference(req.OrderID, m.now())

	resp, mErr := m.client.CreateTransaction(&snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  reference,
			GrossAmt: req.Amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.OrderID,
				Name:  req.ItemName,
				Price: req.Amount,
				Qty:   1,
			},
		},
	})
	if mErr != nil {
		return nil, errors.New(mErr.GetMessage())
	}

	return &SnapResult{
		Reference:   reference,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// VerifySignature cek signature_key notifikasi Midtrans:
// sha512(order_id + status_code + gross_amount + server_key)
func (m *Midtrans) VerifySignature(reference, statusCode, grossAmount, signature string) bool {
	return VerifySignature(m.serverKey, reference, statusCode, grossAmount, signature)
}

func VerifySignature(serverKey, reference, statusCode, grossAmount, signature string) bool {
	sum := sha512.Sum512([]byte(reference + statusCode + grossAmount + serverKey))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(signature))) == 1
}

// NewReference membuat order_id Midtrans dari ID order + waktu (base36)
func NewReference(orderID string, at time.Time) string {
	return orderID + referenceSeparator + strconv.FormatInt(at.Unix(), 36)
}

// OrderIDFromReference kebalikan NewReference
func OrderIDFromReference(reference string) string {
	orderID, _, _ := strings.Cut(reference, referenceSeparator)
	return orderID
}
