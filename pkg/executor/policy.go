package executor

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shu-assistant/shu/pkg/limiter"
	"github.com/shu-assistant/shu/pkg/plugin"
)

// Policy denial and validation error codes. Denials surface as HTTP-style
// errors with rate-limit headers; everything else materializes into a
// plugin.Result and never leaves the executor as an error.
const (
	CodeRateLimited                = "rate_limited"
	CodeProviderRateLimited        = "provider_rate_limited"
	CodeProviderConcurrencyLimited = "provider_concurrency_limited"
	CodeQuotaExceeded              = "quota_exceeded"
	CodeValidationError            = "validation_error"
)

// PolicyError is a policy denial (429) or input validation failure (422).
// It carries enough to render standard rate-limit response headers.
type PolicyError struct {
	Status   int
	Code     string
	Message  string
	Details  map[string]any
	Decision limiter.Decision
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Headers renders the standard rate-limit response headers for the denial.
// Validation errors carry none.
func (e *PolicyError) Headers() map[string]string {
	if e.Status != 429 {
		return nil
	}
	h := map[string]string{
		"RateLimit-Limit":     strconv.Itoa(e.Decision.Limit),
		"RateLimit-Remaining": strconv.Itoa(e.Decision.Remaining),
	}
	if e.Decision.RetryAfter > 0 {
		h["Retry-After"] = strconv.Itoa(int(math.Ceil(e.Decision.RetryAfter.Seconds())))
	}
	if !e.Decision.ResetAt.IsZero() {
		h["RateLimit-Reset"] = strconv.FormatInt(e.Decision.ResetAt.Unix(), 10)
	}
	return h
}

func denied(code, message string, d limiter.Decision, details map[string]any) *PolicyError {
	return &PolicyError{Status: 429, Code: code, Message: message, Details: details, Decision: d}
}

func invalid(message string) *PolicyError {
	return &PolicyError{Status: 422, Code: CodeValidationError, Message: message}
}

// effectiveLimits is the merge of per-plugin limits over global defaults.
type effectiveLimits struct {
	userRequests        int
	userPeriod          time.Duration
	quotaDaily          int
	quotaMonthly        int
	providerName        string
	providerRPM         int
	providerWindow      time.Duration
	providerConcurrency int
}

func (e *Executor) resolveLimits(l *plugin.Limits) effectiveLimits {
	eff := effectiveLimits{
		userRequests: e.cfg.RateLimitUserRequests,
		userPeriod:   e.cfg.RateLimitUserPeriod,
		quotaDaily:   e.cfg.QuotaDailyDefault,
		quotaMonthly: e.cfg.QuotaMonthlyDefault,
	}
	if l == nil {
		return eff
	}
	if l.RateLimitUserRequests > 0 {
		eff.userRequests = l.RateLimitUserRequests
	}
	if l.RateLimitUserPeriod > 0 {
		eff.userPeriod = time.Duration(l.RateLimitUserPeriod) * time.Second
	}
	if l.QuotaDailyRequests > 0 {
		eff.quotaDaily = l.QuotaDailyRequests
	}
	if l.QuotaMonthlyRequests > 0 {
		eff.quotaMonthly = l.QuotaMonthlyRequests
	}
	eff.providerName = l.ProviderName
	eff.providerRPM = l.ProviderRPM
	eff.providerWindow = time.Duration(l.ProviderWindowSeconds) * time.Second
	if eff.providerWindow <= 0 {
		eff.providerWindow = time.Minute
	}
	eff.providerConcurrency = l.ProviderConcurrency
	return eff
}
