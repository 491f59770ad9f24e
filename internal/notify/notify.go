package notify

import (
	"context"
	"fmt"
	"time"

	"clinic-backend/pkg/logger"

	"go.uber.org/zap"
)

const sendTimeout = 5 * time.Second

// Message notifikasi ke satu topic FCM
type Message struct {
	Topic string
	Title string
	Body  string
	Data  map[string]string
}

type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// BusinessAreaTopic topic yang di-subscribe dashboard satu klinik
func BusinessAreaTopic(businessAreaID uint64) string {
	return fmt.Sprintf("business-area-%d", businessAreaID)
}

// Send mengirim notifikasi tanpa menggagalkan request: pembatalan request
// tidak ikut membatalkan pengiriman, dan error cukup dicatat.
func Send(ctx context.Context, n Notifier, msg Message) {
	if n == nil {
		return
	}
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	if err := n.Notify(sendCtx, msg); err != nil {
		logger.FromContext(ctx).Warn("Gagal kirim notifikasi",
			zap.String("topic", msg.Topic),
			zap.String("title", msg.Title),
			zap.Error(err),
		)
	}
}

// Noop dipakai kalau FCM tidak dikonfigurasi
type Noop struct{}

func (Noop) Notify(context.Context, Message) error { return nil }
