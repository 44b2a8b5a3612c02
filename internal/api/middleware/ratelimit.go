package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-VisitService/internal/api/handlers"
)

const msgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter token bucket на каждый IP клиента.
// PIN из 4 цифр перебирается за 10000 попыток, поэтому поиск ограничивается по IP.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	trusted  []netip.Prefix
	now      func() time.Time
	logger   Logger
}

// NewIPRateLimiter создает лимитер: perMinute запросов в минуту с запасом burst.
// Неактивные IP забываются через ttl. Заголовкам X-Forwarded-For и X-Real-IP
// верим только от адресов из trusted; при пустом trusted ключом служит RemoteAddr.
func NewIPRateLimiter(perMinute, burst int, ttl time.Duration, trusted []netip.Prefix, logger Logger) *IPRateLimiter {
	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
		ttl:      ttl,
		trusted:  trusted,
		now:      time.Now,
		logger:   logger,
	}
}

// Allow проверяет, можно ли пропустить запрос с этого IP
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// Cleanup удаляет IP, не появлявшиеся дольше ttl
func (l *IPRateLimiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.ttl)
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
		}
	}
}

// RunCleanup периодически вызывает Cleanup до закрытия stopCh
func (l *IPRateLimiter) RunCleanup(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Cleanup()
		case <-stopCh:
			return
		}
	}
}

// Middleware отвечает 429, если IP превысил лимит
func (l *IPRateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, l.trusted)
			if !l.Allow(ip) {
				l.logger.Warn("%s %s - Rate limit exceeded: ip=%s request_id=%s",
					r.Method, r.URL.Path, ip, RequestIDFromContext(r.Context()))
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP адрес клиента без порта.
// Если соединение пришло от доверенного прокси, берется самый правый
// недоверенный адрес из X-Forwarded-For, затем X-Real-IP.
func clientIP(r *http.Request, trusted []netip.Prefix) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	remote, err := netip.ParseAddr(host)
	if err != nil || !isTrusted(remote, trusted) {
		return host
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		client := remote
		for i := len(hops) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil {
				break
			}
			client = addr
			if !isTrusted(addr, trusted) {
				break
			}
		}
		return client.String()
	}

	if addr, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return addr.String()
	}

	return host
}

func isTrusted(addr netip.Addr, trusted []netip.Prefix) bool {
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
