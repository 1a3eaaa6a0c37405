package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"aratrack/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ventana counts requests of one client IP in a fixed window.
type ventana struct {
	count int
	fin   time.Time
}

// limitador is a per-IP fixed-window counter. Expired windows are purged
// lazily whenever the map is scanned.
type limitador struct {
	mu        sync.Mutex
	limite    int
	duracion  time.Duration
	ips       map[string]*ventana
	proxPurga time.Time
	now       func() time.Time
}

func nuevoLimitador(limite int, duracion time.Duration) *limitador {
	return &limitador{limite: limite, duracion: duracion, ips: make(map[string]*ventana), now: time.Now}
}

// permitir registers one hit for ip and reports whether it is within the
// limit, plus the time the current window ends.
func (l *limitador) permitir(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.proxPurga) {
		purgados := 0
		for k, v := range l.ips {
			if now.After(v.fin) {
				delete(l.ips, k)
				purgados++
			}
		}
		if purgados > 0 {
			log.Debug().Int("purged", purgados).Int("remaining", len(l.ips)).Msg("rate limiter purged")
		}
		l.proxPurga = now.Add(5 * time.Minute)
	}

	v, ok := l.ips[ip]
	if !ok || now.After(v.fin) {
		v = &ventana{fin: now.Add(l.duracion)}
		l.ips[ip] = v
	}
	v.count++
	return v.count <= l.limite, v.fin
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	l := nuevoLimitador(20, time.Minute)
	return func(c *gin.Context) {
		if ok, _ := l.permitir(c.ClientIP()); !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter caps every client IP at limit requests per window.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := nuevoLimitador(limit, window)
	return func(c *gin.Context) {
		ok, fin := l.permitir(c.ClientIP())
		if !ok {
			segundos := int(time.Until(fin).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(segundos))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
