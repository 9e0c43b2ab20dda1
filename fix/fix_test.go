package fix

import (
	"testing"
)

func TestS17SAdd(t *testing.T) {
	for _, c := range []struct {
		a, b S17
		out  S17
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, -1, -1},
		{1, -1, 0},
		{-10, 15, 5},
		{125, 10, 127},
		{-126, 10, -116},
		{-125, -10, -128},
	} {
		got := c.a.SAdd(c.b)
		if got != c.out {
			t.Errorf("%s SAdd %s = %s, want: %s", c.a, c.b, got, c.out)
		}
		got = c.b.SAdd(c.a)
		if got != c.out {
			t.Errorf("%s SAdd %s = %s, want: %s", c.b, c.a, got, c.out)
		}
	}
}

func TestS17SMul(t *testing.T) {
	s17 := func(f float64) S17 {
		return S17FromFloat(f)
	}
	for _, c := range []struct {
		a, b S17
		out  S17
	}{
		{0, s17(1), 0},
		{0, s17(-1), 0},
		{s17(0.5), s17(0.5), s17(0.25)},
		{s17(0.5), s17(-0.5), s17(-0.25)},
		{s17(1.0), s17(0.5), s17(0.4921875)}, // 1.0 is slightly truncated
	} {
		got := c.a.SMul(c.b)
		if got != c.out {
			t.Errorf("%s SMul %s = %s, want: %s", c.a, c.b, got, c.out)
		}
		got = c.b.SMul(c.a)
		if got != c.out {
			t.Errorf("%s SMul %s = %s, want: %s", c.b, c.a, got, c.out)
		}
	}
}

func TestS17FromFloat(t *testing.T) {
	for _, c := range []struct {
		in  float64
		out S17
	}{
		{1.0, MaxS17},
		{2.0, MaxS17},
		{-1.0, MinS17},
		{-2.0, MinS17},
	} {
		got := S17FromFloat(c.in)
		if got != c.out {
			t.Errorf("S17FromFloat(%f): %s: want: %s", c.in, got, c.out)
		}
	}
}

func TestS17Float32RoundTrip(t *testing.T) {
	for i := int(MinS17); i <= int(MaxS17); i++ {
		s := S17(i)
		got := S17FromFloat(S17ToFloat[float32](s))
		if s != got {
			t.Errorf("%x: S17ToFloat: %f, S17FromFloat: %x", s, S17ToFloat[float64](s), got)
		}
	}
}

func TestU1616FromFloat(t *testing.T) {
	for _, c := range []struct {
		in  float64
		out U1616
	}{
		{0, 0},
		{-1, MinU1616},
		{1, 1 << 16},
		{1.5, 3 << 15},
		{256, 256 << 16},
		{1e9, MaxU1616},
	} {
		got := U1616FromFloat(c.in)
		if got != c.out {
			t.Errorf("U1616FromFloat(%f) = %s (%#x), want: %s (%#x)",
				c.in, got, uint32(got), c.out, uint32(c.out))
		}
	}
}

func TestU1616Float64RoundTrip(t *testing.T) {
	for _, u := range []U1616{0, 1, 0x8000, 1 << 16, 0x12345678, MaxU1616} {
		got := U1616FromFloat(U1616ToFloat[float64](u))
		if got != u {
			t.Errorf("%#x: U1616ToFloat: %f, U1616FromFloat: %#x",
				uint32(u), U1616ToFloat[float64](u), uint32(got))
		}
	}
}

func TestU248FromFloat(t *testing.T) {
	for _, c := range []struct {
		in  float64
		out U248
	}{
		{0, 0},
		{-2, MinU248},
		{1.5, 384},
		{440, 440 << 8},
		{1e12, MaxU248},
	} {
		got := U248FromFloat(c.in)
		if got != c.out {
			t.Errorf("U248FromFloat(%f) = %s (%#x), want: %s (%#x)",
				c.in, got, uint32(got), c.out, uint32(c.out))
		}
	}
}

func TestS1516FromFloat(t *testing.T) {
	for _, c := range []struct {
		in  float64
		out S1516
	}{
		{0, 0},
		{0.5, 1 << 15},
		{-0.5, -(1 << 15)},
		{1, 1 << 16},
		{-1, -(1 << 16)},
		{1e9, MaxS1516},
		{-1e9, MinS1516},
	} {
		got := S1516FromFloat(c.in)
		if got != c.out {
			t.Errorf("S1516FromFloat(%f) = %s (%#x), want: %s (%#x)",
				c.in, got, int32(got), c.out, int32(c.out))
		}
	}
}

func TestS1516Float64RoundTrip(t *testing.T) {
	for _, s := range []S1516{MinS1516, -(1 << 16), -1, 0, 1, 1 << 16, MaxS1516} {
		got := S1516FromFloat(S1516ToFloat[float64](s))
		if got != s {
			t.Errorf("%#x: S1516ToFloat: %f, S1516FromFloat: %#x",
				int32(s), S1516ToFloat[float64](s), int32(got))
		}
	}
}
