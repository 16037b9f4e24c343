package ratelimit

import (
	"testing"
	"time"
)

func newTestLimiter(start time.Time) (*Limiter, *time.Time) {
	clock := start
	l := New()
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestLimiter_AllowsUpToMax(t *testing.T) {
	l, _ := newTestLimiter(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	for i := 0; i < 5; i++ {
		res := l.Check("contact", "1.2.3.4", time.Hour, 5)
		if !res.Allowed {
			t.Fatalf("attempt %d: expected allowed", i+1)
		}
		if want := 5 - (i + 1); res.Remaining != want {
			t.Errorf("attempt %d: expected remaining=%d, got %d", i+1, want, res.Remaining)
		}
	}
}

func TestLimiter_DeniesOverMax(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l, clock := newTestLimiter(start)

	for i := 0; i < 3; i++ {
		l.Check("testimonial", "1.2.3.4", 24*time.Hour, 3)
		*clock = clock.Add(time.Minute)
	}

	res := l.Check("testimonial", "1.2.3.4", 24*time.Hour, 3)
	if res.Allowed {
		t.Fatal("expected fourth attempt to be denied")
	}
	if res.Remaining != 0 {
		t.Errorf("expected remaining=0, got %d", res.Remaining)
	}
	// Oldest attempt was at start; window expires 24h after it.
	want := start.Add(24 * time.Hour).Sub(*clock)
	if res.RetryAfter != want {
		t.Errorf("expected retryAfter=%v, got %v", want, res.RetryAfter)
	}
}

func TestLimiter_AllowsAfterWindowExpires(t *testing.T) {
	l, clock := newTestLimiter(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	for i := 0; i < 5; i++ {
		l.Check("contact", "1.2.3.4", time.Hour, 5)
	}
	if res := l.Check("contact", "1.2.3.4", time.Hour, 5); res.Allowed {
		t.Fatal("expected denial within the window")
	}

	*clock = clock.Add(time.Hour + time.Second)
	res := l.Check("contact", "1.2.3.4", time.Hour, 5)
	if !res.Allowed {
		t.Fatal("expected allowance after the window expired")
	}
	if res.Remaining != 4 {
		t.Errorf("expected remaining=4, got %d", res.Remaining)
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	for i := 0; i < 5; i++ {
		l.Check("contact", "1.2.3.4", time.Hour, 5)
	}

	if res := l.Check("contact", "5.6.7.8", time.Hour, 5); !res.Allowed {
		t.Error("different identifier should not share the limit")
	}
	if res := l.Check("testimonial", "1.2.3.4", time.Hour, 5); !res.Allowed {
		t.Error("different action should not share the limit")
	}
}

func TestLimiter_DeniedAttemptNotRecorded(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l, clock := newTestLimiter(start)

	l.Check("contact", "1.2.3.4", time.Hour, 1)
	*clock = clock.Add(30 * time.Minute)
	l.Check("contact", "1.2.3.4", time.Hour, 1) // denied

	// The denied attempt must not extend the window past the first one.
	*clock = start.Add(time.Hour + time.Second)
	if res := l.Check("contact", "1.2.3.4", time.Hour, 1); !res.Allowed {
		t.Error("denied attempts should not count against the window")
	}
}
