package audio

import (
	"math"
	"testing"
	"time"
)

func TestToneLength(t *testing.T) {
	s := Tone(SampleRate, 440, 10*time.Millisecond)
	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := SampleRate.N(10 * time.Millisecond); total != want {
		t.Errorf("expected %v samples, got %v", want, total)
	}
}

func TestToneDecays(t *testing.T) {
	s := Tone(SampleRate, 440, 100*time.Millisecond)
	buf := make([][2]float64, SampleRate.N(100*time.Millisecond))
	n, _ := s.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, v := range buf[from:to] {
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}
	quarter := n / 4
	if first, last := peak(0, quarter), peak(n-quarter, n); last >= first {
		t.Errorf("tone does not decay: first %v, last %v", first, last)
	}
	if peak(0, n) > cueVolume {
		t.Errorf("tone louder than %v", cueVolume)
	}
	for i := range buf[:n] {
		if buf[i][0] != buf[i][1] {
			t.Fatalf("channels differ at %v", i)
		}
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play(MenuToggle)
	p.Close()
}
