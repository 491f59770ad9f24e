package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	cleanupInterval = time.Minute
	visitorTTL      = 3 * time.Minute
)

// IPRateLimiter menyimpan daftar limiter untuk setiap IP
type IPRateLimiter struct {
	ips map[string]*visitor
	mu  sync.Mutex
	r   rate.Limit // Rate: berapa request per detik
	b   int        // Burst: toleransi lonjakan sesaat

	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter membuat limiter dan menjalankan pembersih IP lama di
// background sampai Stop dipanggil.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		ips:  make(map[string]*visitor),
		r:    r,
		b:    b,
		stop: make(chan struct{}),
		now:  time.Now,
	}
	go i.cleanupLoop()
	return i
}

// GetLimiter mengambil/membuat limiter untuk IP tertentu
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	v, exists := i.ips[ip]
	if !exists {
		limiter := rate.NewLimiter(i.r, i.b)
		i.ips[ip] = &visitor{limiter: limiter, lastSeen: i.now()}
		return limiter
	}

	v.lastSeen = i.now()
	return v.limiter
}

// Stop menghentikan goroutine pembersih
func (i *IPRateLimiter) Stop() {
	i.stopOnce.Do(func() { close(i.stop) })
}

func (i *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-i.stop:
			return
		case <-ticker.C:
			i.cleanup()
		}
	}
}

// cleanup menghapus IP yang sudah 3 menit tidak aktif
func (i *IPRateLimiter) cleanup() {
	i.mu.Lock()
	defer i.mu.Unlock()
	for ip, v := range i.ips {
		if i.now().Sub(v.lastSeen) > visitorTTL {
			delete(i.ips, ip)
		}
	}
}

func (i *IPRateLimiter) size() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// RateLimitMiddleware membatasi request per IP
func RateLimitMiddleware(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Terlalu banyak request! Santai dulu kawan.",
			})
			return
		}
		c.Next()
	}
}
